// Package sanitize strips generation artifacts from rendered markup.
package sanitize

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/dgallion1/docsite/internal/view"
)

// HydrationAttr is the attribute removed from every element.
const HydrationAttr = view.HydrationAttr

// Sanitize parses raw, drops every comment node and every hydration key, and
// serializes the result. Nothing else in the document changes.
func Sanitize(raw string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	root := doc.Nodes[0]

	for _, c := range Comments(root) {
		c.Parent.RemoveChild(c)
	}

	doc.Find("[" + HydrationAttr + "]").RemoveAttr(HydrationAttr)

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

// Comments returns every comment node in n and its descendants, in document
// order. Detaching is left to the caller so the walk is not disturbed.
func Comments(n *html.Node) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.CommentNode {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}
