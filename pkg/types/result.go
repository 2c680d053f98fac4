package types

// Item is a single search result as returned by the Custom Search API.
// All upstream fields are carried through untouched; the accessors read the
// handful the tool cares about.
type Item map[string]any

// StringField returns the named field when it is present and a string, or "".
func (it Item) StringField(key string) string {
	if v, ok := it[key].(string); ok {
		return v
	}
	return ""
}

// Title returns the result title, or "" when absent.
func (it Item) Title() string { return it.StringField("title") }

// Link returns the result URL, or "" when absent.
func (it Item) Link() string { return it.StringField("link") }
