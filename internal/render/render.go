// Package render composes the documentation page from a summary.
package render

import (
	"github.com/dgallion1/docsite/internal/summary"
	"github.com/dgallion1/docsite/internal/view"
)

const (
	DefaultTitle   = "Hello world"
	DefaultHeading = "uiua-essentials"

	// Placeholder is shown in the content pane when no intro is configured.
	Placeholder = "TODO"
)

// Options controls the page chrome. Zero values fall back to the defaults.
type Options struct {
	Title   string // <title> text
	Heading string // mobile navigation heading
	Intro   string // Markdown for the content pane
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Heading == "" {
		o.Heading = DefaultHeading
	}
	return o
}

// Render produces the hydratable markup of the page. The output still
// carries hydration keys and component comments.
func Render(sections []summary.Section, opts Options) (string, error) {
	page, err := Page(sections, opts)
	if err != nil {
		return "", err
	}
	return view.RenderString(page, view.WithHydration())
}

// Page builds the view tree for the whole document.
func Page(sections []summary.Section, opts Options) (view.Node, error) {
	opts = opts.withDefaults()

	content, err := Content(opts.Intro)
	if err != nil {
		return view.Node{}, err
	}

	return view.Group(
		view.Doctype(),
		view.El("html", view.Attrs("lang", "en"),
			view.El("head", nil,
				view.El("title", nil, view.Text(opts.Title)),
				view.El("meta", view.Attrs("charset", "utf-8")),
				view.El("meta", view.Attrs("name", "viewport", "content", "width=device-width, initial-scale=1.0")),
				view.El("link", view.Attrs("rel", "stylesheet", "href", "style.css")),
				view.El("script", view.Attrs("src", "script.js")),
			),
			view.El("body", nil,
				view.El("div", view.Class("mobile-container"),
					MobileNav(opts.Heading),
					view.El("div", view.Class("container"),
						view.El("div", view.Class("sidebar"), Sidebar(sections)),
						view.El("div", view.Class("content"), content),
					),
				),
			),
		),
	), nil
}

// MobileNav is the collapsed navigation bar shown on narrow screens.
func MobileNav(heading string) view.Node {
	line := view.El("div", view.Class("line"))
	return view.Component("mobile-nav",
		view.El("div", view.Class("mobile-nav"),
			view.El("div", view.Class("hamburger"), line, line, line),
			view.El("h1", nil, view.Text(heading)),
		),
	)
}

// Sidebar renders one block per section, in input order.
func Sidebar(sections []summary.Section) view.Node {
	return view.Component("sidebar", view.Map(sections, SidebarSection))
}

// SidebarSection renders the section title and its flattened link list.
func SidebarSection(s summary.Section) view.Node {
	return view.Component("sidebar-section",
		view.El("div", view.Class("sidebar-section"),
			view.El("div", view.Class("section-name"), view.Text(s.Title)),
			view.El("ul", nil, view.Map(s.Links(), LinkItem)),
		),
	)
}

// LinkItem renders a single sidebar entry.
func LinkItem(l summary.Link) view.Node {
	return view.El("li", nil,
		view.El("a", view.Attrs("href", l.URL), view.Text(l.Title)),
	)
}
