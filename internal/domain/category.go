package domain

// Category is one entry of the read-only category reference store. Value is
// the code used in feed URLs, Label the human-readable form. Field and
// Description are only populated for arXiv subject taxonomies.
type Category struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Field       string `json:"field,omitempty"`
	Description string `json:"description,omitempty"`
}

// CategoryList is the envelope returned by the category listing endpoints.
type CategoryList struct {
	Categories []Category `json:"categories"`
	Errors     []string   `json:"errors"`
}
