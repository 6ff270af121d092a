package view

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

type options struct {
	hydrate bool
}

// Option configures Render.
type Option func(*options)

// WithHydration gives every element a sequential hydration key and wraps
// each component in boundary comments.
func WithHydration() Option {
	return func(o *options) { o.hydrate = true }
}

// Render serializes root to w.
func Render(w io.Writer, root Node, opts ...Option) error {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	b := &builder{hydrate: o.hydrate}
	doc := &html.Node{Type: html.DocumentNode}
	b.append(doc, root)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// RenderString is Render into a string.
func RenderString(root Node, opts ...Option) (string, error) {
	var buf bytes.Buffer
	if err := Render(&buf, root, opts...); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type builder struct {
	hydrate bool
	nextKey int
}

func (b *builder) append(parent *html.Node, n Node) {
	switch n.kind {
	case elementNode:
		el := &html.Node{
			Type:     html.ElementNode,
			Data:     n.data,
			DataAtom: atom.Lookup([]byte(n.data)),
			Attr:     append([]html.Attribute(nil), n.attrs...),
		}
		if b.hydrate {
			el.Attr = append(el.Attr, html.Attribute{Key: HydrationAttr, Val: fmt.Sprintf("0-%d", b.nextKey)})
			b.nextKey++
		}
		parent.AppendChild(el)
		for _, c := range n.children {
			b.append(el, c)
		}

	case textNode:
		parent.AppendChild(&html.Node{Type: html.TextNode, Data: n.data})

	case commentNode:
		parent.AppendChild(&html.Node{Type: html.CommentNode, Data: n.data})

	case doctypeNode:
		parent.AppendChild(&html.Node{Type: html.DoctypeNode, Data: n.data})

	case groupNode:
		for _, c := range n.children {
			b.append(parent, c)
		}

	case componentNode:
		if b.hydrate {
			parent.AppendChild(&html.Node{Type: html.CommentNode, Data: "view:" + n.data})
		}
		for _, c := range n.children {
			b.append(parent, c)
		}
		if b.hydrate {
			parent.AppendChild(&html.Node{Type: html.CommentNode, Data: "/view:" + n.data})
		}

	case rawNode:
		for _, r := range n.raw {
			parent.AppendChild(clone(r))
		}
	}
}

// clone deep-copies a detached html node so raw fragments can be rendered
// more than once.
func clone(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(clone(child))
	}
	return c
}
