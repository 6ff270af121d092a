package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/dgallion1/docsite/internal/view"
)

// Content renders the content pane. Without an intro it is the placeholder.
func Content(intro string) (view.Node, error) {
	if strings.TrimSpace(intro) == "" {
		return view.Component("content", view.Text(Placeholder)), nil
	}

	// goldmark's default renderer omits raw HTML, so the intro stays inert
	// even when it comes from an untrusted source tree.
	var buf bytes.Buffer
	if err := goldmark.New().Convert([]byte(intro), &buf); err != nil {
		return view.Node{}, fmt.Errorf("convert intro markdown: %w", err)
	}

	raw, err := view.Raw(buf.String())
	if err != nil {
		return view.Node{}, fmt.Errorf("intro: %w", err)
	}
	return view.Component("content", raw), nil
}
