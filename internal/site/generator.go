// Package site turns a documentation summary into a static site on disk.
package site

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dgallion1/docsite/internal/assets"
	"github.com/dgallion1/docsite/internal/render"
	"github.com/dgallion1/docsite/internal/sanitize"
	"github.com/dgallion1/docsite/internal/summary"
)

const (
	// OutputDirName is created under the base directory on every run.
	OutputDirName = "doc-site"

	IndexFile = "index.html"
)

// Generator runs the render, sanitize and publish pipeline.
// It is not safe to run two generations against the same directory at once.
type Generator struct {
	log    *slog.Logger
	opts   render.Options
	assets []assets.Asset
}

// Option configures a Generator.
type Option func(*Generator)

// WithRenderOptions sets the page title, heading and intro.
func WithRenderOptions(opts render.Options) Option {
	return func(g *Generator) { g.opts = opts }
}

// WithAssets replaces the bundled static assets.
func WithAssets(a []assets.Asset) Option {
	return func(g *Generator) { g.assets = a }
}

// New creates a Generator. A nil logger discards output.
func New(log *slog.Logger, opts ...Option) *Generator {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g := &Generator{
		log:    log,
		assets: assets.Static(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// OutputDir returns where Generate writes for the given base directory.
func OutputDir(directory string) string {
	return filepath.Join(directory, OutputDirName)
}

// Generate resets directory/doc-site and writes the static assets and
// index.html into it.
func (g *Generator) Generate(directory string, sections []summary.Section) error {
	output := OutputDir(directory)
	log := g.log.With("dir", output)

	// A missing directory is the common case on a first run.
	if err := os.RemoveAll(output); err != nil {
		log.Debug("remove output directory", "error", err)
	}
	if err := os.MkdirAll(output, 0o755); err != nil {
		return &GenerationError{Kind: KindDirectoryCreate, Path: output, Err: err}
	}

	raw, err := render.Render(sections, g.opts)
	if err != nil {
		return &GenerationError{Kind: KindRender, Err: err}
	}
	page, err := sanitize.Sanitize(raw)
	if err != nil {
		return &GenerationError{Kind: KindSanitize, Err: err}
	}

	files := append(append([]assets.Asset(nil), g.assets...), assets.Asset{Name: IndexFile, Data: []byte(page)})
	for _, a := range files {
		if err := assets.Publish(output, a.Name, a.Data); err != nil {
			return &GenerationError{Kind: KindAssetWrite, Path: filepath.Join(output, a.Name), Err: err}
		}
		log.Debug("published asset", "asset", a.Name, "bytes", len(a.Data), "sha256", assets.Digest(a.Data))
	}

	log.Info("site generated", "sections", len(sections), "files", len(files))
	return nil
}
