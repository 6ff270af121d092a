package summary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a summary file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFor picks the decoder for a filename by extension. Anything that is
// not YAML is read as JSON.
func FormatFor(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads a summary file produced by the extraction step.
func Load(path string) ([]Section, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("open summary %s: %w", path, err)
	}
	defer f.Close()

	sections, err := Decode(f, FormatFor(path))
	if err != nil {
		return nil, fmt.Errorf("decode summary %s: %w", path, err)
	}
	return sections, nil
}

// Decode reads a list of sections from r. An empty document yields no sections.
func Decode(r io.Reader, format Format) ([]Section, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(src)) == 0 {
		return []Section{}, nil
	}

	var sections []Section
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(src, &sections)
	case FormatJSON:
		err = json.Unmarshal(src, &sections)
	default:
		return nil, fmt.Errorf("unsupported summary format: %s", format)
	}
	if err != nil {
		return nil, err
	}
	if sections == nil {
		sections = []Section{}
	}
	return sections, nil
}
