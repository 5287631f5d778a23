package menu

import "encoding/json"

// Dietary labels recognized by the filter engine.
const (
	LabelVegetarian    = "Vegetarian"
	LabelVegan         = "Vegan"
	LabelNonVegetarian = "Non-Vegetarian"
	LabelEggetarian    = "Eggetarian"
)

// Merchandising labels.
const (
	LabelChefsRecommended = "Chef's Recommended"
	LabelSpicy            = "Spicy"
)

// Item is one purchasable menu entry. Name is unique across the whole
// catalog and acts as the identity key everywhere (cart lines, filters).
type Item struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int      `json:"price"`
	// OriginalPrice is the pre-discount reference price. Zero means the
	// item is not discounted; when set it must be greater than Price.
	OriginalPrice int      `json:"originalPrice,omitempty"`
	Labels        []string `json:"labels,omitempty"`
}

// Discounted reports whether the item carries a promotional discount.
func (i Item) Discounted() bool {
	return i.OriginalPrice > 0
}

// HasLabel reports whether the item carries the given label.
func (i Item) HasLabel(label string) bool {
	for _, l := range i.Labels {
		if l == label {
			return true
		}
	}
	return false
}

// SubCategory is a named grouping of items inside one category.
type SubCategory struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Items       []Item `json:"items"`
}

// Category is a top-level menu section. After parsing, at most one of
// Items and Subcategories is populated; consumers never shape-sniff.
type Category struct {
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Items         []Item        `json:"items,omitempty"`
	Subcategories []SubCategory `json:"subcategories,omitempty"`
}

// UnmarshalJSON accepts the three legacy encodings of a category:
//
//	["..."]                          bare item array (oldest shape)
//	{"name": ..., "items": [...]}
//	{"name": ..., "subcategories": [...]}
//
// When both items and subcategories are present, items wins; the
// subcategories are dropped so the one-populated invariant holds.
func (c *Category) UnmarshalJSON(data []byte) error {
	var items []Item
	if err := json.Unmarshal(data, &items); err == nil {
		*c = Category{Items: items}
		return nil
	}

	type categoryJSON Category
	var raw categoryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*c = Category(raw)
	if c.Items != nil {
		c.Subcategories = nil
	}
	return nil
}

// AllItems returns every item reachable from the category, whether it
// holds a flat item list or subcategories.
func (c Category) AllItems() []Item {
	if c.Items != nil {
		return c.Items
	}
	var items []Item
	for _, sub := range c.Subcategories {
		items = append(items, sub.Items...)
	}
	return items
}
