package summary

// Section is one navigational group in the sidebar.
type Section struct {
	Title   string `json:"title" yaml:"title"`
	Content []Item `json:"content" yaml:"content"`
}

// Item is a unit of documentation content. Only Links is used by the generator.
type Item struct {
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Text  string `json:"text,omitempty" yaml:"text,omitempty"`
	Links []Link `json:"links" yaml:"links"`
}

// Link is a navigable (url, title) pair rendered as an anchor.
type Link struct {
	URL   string `json:"url" yaml:"url"`
	Title string `json:"title" yaml:"title"`
}

// Links flattens the links of every item in content order.
// Duplicates are kept and nothing is reordered.
func (s Section) Links() []Link {
	var out []Link
	for _, item := range s.Content {
		out = append(out, item.Links...)
	}
	return out
}
