// Package view builds HTML documents from a small tree of immutable nodes.
//
// A tree is assembled with the constructors in this package and serialized
// with Render, which goes through golang.org/x/net/html so every text and
// attribute value is escaped. Rendering with WithHydration annotates the
// output with hydration keys and component boundary comments.
package view

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// HydrationAttr is the attribute carrying an element's hydration key.
const HydrationAttr = "data-hk"

type kind int

const (
	emptyNode kind = iota
	elementNode
	textNode
	commentNode
	doctypeNode
	groupNode
	componentNode
	rawNode
)

// Node is one value in a view tree. The zero Node renders nothing.
type Node struct {
	kind     kind
	data     string
	attrs    []html.Attribute
	children []Node
	raw      []*html.Node
}

// Doctype returns the HTML5 doctype declaration.
func Doctype() Node {
	return Node{kind: doctypeNode, data: "html"}
}

// El returns an element with the given tag, attributes and children.
func El(tag string, attrs []html.Attribute, children ...Node) Node {
	return Node{
		kind:     elementNode,
		data:     tag,
		attrs:    append([]html.Attribute(nil), attrs...),
		children: append([]Node(nil), children...),
	}
}

// Text returns a text node. The content is escaped on render.
func Text(s string) Node {
	return Node{kind: textNode, data: s}
}

// Comment returns an HTML comment.
func Comment(s string) Node {
	return Node{kind: commentNode, data: s}
}

// Group renders its children in place without a wrapping element.
func Group(children ...Node) Node {
	return Node{kind: groupNode, children: append([]Node(nil), children...)}
}

// Map builds one node per item, in order.
func Map[T any](items []T, fn func(T) Node) Node {
	children := make([]Node, 0, len(items))
	for _, item := range items {
		children = append(children, fn(item))
	}
	return Node{kind: groupNode, children: children}
}

// Component marks a named subtree. Boundaries are only visible in hydrated output.
func Component(name string, child Node) Node {
	return Node{kind: componentNode, data: name, children: []Node{child}}
}

// Raw parses trusted, pre-rendered markup as the children of a <div>.
func Raw(markup string) (Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return Node{}, fmt.Errorf("parse fragment: %w", err)
	}
	return Node{kind: rawNode, raw: nodes}, nil
}

// Attrs builds an attribute list from key/value pairs. A trailing key without
// a value gets an empty value.
func Attrs(kv ...string) []html.Attribute {
	attrs := make([]html.Attribute, 0, (len(kv)+1)/2)
	for i := 0; i < len(kv); i += 2 {
		a := html.Attribute{Key: kv[i]}
		if i+1 < len(kv) {
			a.Val = kv[i+1]
		}
		attrs = append(attrs, a)
	}
	return attrs
}

// Class is shorthand for a single class attribute.
func Class(name string) []html.Attribute {
	return Attrs("class", name)
}
