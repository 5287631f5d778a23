package menu

import (
	"encoding/json"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Catalog is the static, read-only menu. Loaded once at startup and
// immutable for the process lifetime.
type Catalog struct {
	categories []Category
	byName     map[string]Item
}

type catalogJSON struct {
	Categories []Category `json:"categories"`
}

// Parse decodes and validates a catalog document. Validation problems
// are aggregated so a broken menu file reports everything at once.
func Parse(data []byte) (*Catalog, error) {
	var doc catalogJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	c := &Catalog{
		categories: doc.Categories,
		byName:     make(map[string]Item),
	}

	var errs *multierror.Error
	for _, cat := range c.categories {
		for _, item := range cat.AllItems() {
			if item.Name == "" {
				errs = multierror.Append(errs, fmt.Errorf("category %q: item with empty name", cat.Name))
				continue
			}
			if _, dup := c.byName[item.Name]; dup {
				errs = multierror.Append(errs, fmt.Errorf("duplicate item name %q", item.Name))
				continue
			}
			if item.Price <= 0 {
				errs = multierror.Append(errs, fmt.Errorf("item %q: non-positive price %d", item.Name, item.Price))
			}
			if item.OriginalPrice != 0 && item.OriginalPrice <= item.Price {
				errs = multierror.Append(errs, fmt.Errorf("item %q: originalPrice %d must exceed price %d", item.Name, item.OriginalPrice, item.Price))
			}
			c.byName[item.Name] = item
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return c, nil
}

// Load builds the catalog from the menu document embedded in the binary.
func Load() (*Catalog, error) {
	return Parse(menuData)
}

// Categories returns the ordered menu sections.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Category looks up a section by name. A miss returns an empty category
// view so callers never crash on unknown names.
func (c *Catalog) Category(name string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{Name: name}, false
}

// Item looks up an item anywhere in the catalog by its name.
func (c *Catalog) Item(name string) (Item, bool) {
	item, ok := c.byName[name]
	return item, ok
}
