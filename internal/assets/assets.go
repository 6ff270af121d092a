// Package assets bundles the site's static files and writes them to disk.
package assets

import (
	"crypto/sha256"
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed design/style.css design/script.js design/Uiua386.ttf
var design embed.FS

// Names of the bundled assets, in publish order.
const (
	StyleSheet = "style.css"
	Script     = "script.js"
	Font       = "Uiua386.ttf"
)

// Asset is a named payload copied verbatim into the output directory.
type Asset struct {
	Name string
	Data []byte
}

// Static returns the bundled stylesheet, script and font.
func Static() []Asset {
	names := []string{StyleSheet, Script, Font}
	out := make([]Asset, 0, len(names))
	for _, name := range names {
		data, err := design.ReadFile("design/" + name)
		if err != nil {
			// Embedded at compile time; a miss means the embed pattern is wrong.
			panic(fmt.Sprintf("assets: missing embedded %s: %v", name, err))
		}
		out = append(out, Asset{Name: name, Data: data})
	}
	return out
}

// Publish writes data to dir/name, replacing any existing file.
func Publish(dir, name string, data []byte) error {
	dest := filepath.Join(dir, name)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

// Digest returns the hex SHA-256 of data.
func Digest(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
