package filter

import (
	"sort"

	"chhaon/internal/menu"
)

// Discount is the synthetic facet value for promotionally priced items.
// It is not a stored label; it is derived from Item.OriginalPrice.
const Discount = "Discount"

// Option is one selectable facet with the number of catalog items that
// currently carry it. Recomputed from the catalog, never persisted.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

var dietary = map[string]bool{
	menu.LabelVegetarian:    true,
	menu.LabelVegan:         true,
	menu.LabelNonVegetarian: true,
	menu.LabelEggetarian:    true,
}

// IsDietary reports whether the value is one of the dietary labels.
func IsDietary(value string) bool {
	return dietary[value]
}

func displayLabel(value string) string {
	switch value {
	case menu.LabelChefsRecommended:
		return "Chef's Pick"
	case Discount:
		return "On Discount"
	default:
		return value
	}
}

// ExtractUniqueFilters derives the facet options for the given
// categories: one option per distinct label plus a synthetic Discount
// option when any item is discounted. Options are sorted by count
// descending; ties keep first-encountered order.
func ExtractUniqueFilters(categories []menu.Category) []Option {
	counts := make(map[string]int)
	var order []string
	discounted := 0

	for _, cat := range categories {
		for _, item := range cat.AllItems() {
			for _, label := range item.Labels {
				if counts[label] == 0 {
					order = append(order, label)
				}
				counts[label]++
			}
			if item.Discounted() {
				discounted++
			}
		}
	}

	if discounted > 0 {
		counts[Discount] = discounted
		order = append(order, Discount)
	}

	options := make([]Option, 0, len(order))
	for _, value := range order {
		options = append(options, Option{
			Label: displayLabel(value),
			Value: value,
			Count: counts[value],
		})
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Count > options[j].Count
	})
	return options
}

// FilterItems applies a selection to items, preserving relative order.
// An empty selection returns the input unchanged.
//
// Dietary values (Vegetarian, Vegan, Non-Vegetarian, Eggetarian) form a
// hard AND-gate: when any is selected, an item must carry one of the
// selected dietary labels. The remaining values, including Discount,
// form an OR-gate on top: when any is selected, the item must also be
// discounted (if Discount is selected) or carry one of the selected
// non-dietary labels. A dietary-only selection admits on dietary match
// alone.
func FilterItems(items []menu.Item, selected []string) []menu.Item {
	if len(selected) == 0 {
		return items
	}

	var dietaryWanted, otherWanted []string
	wantDiscount := false
	for _, v := range selected {
		switch {
		case dietary[v]:
			dietaryWanted = append(dietaryWanted, v)
		case v == Discount:
			wantDiscount = true
			otherWanted = append(otherWanted, v)
		default:
			otherWanted = append(otherWanted, v)
		}
	}

	kept := make([]menu.Item, 0, len(items))
	for _, item := range items {
		if len(dietaryWanted) > 0 && !hasAny(item, dietaryWanted) {
			continue
		}
		if len(otherWanted) > 0 {
			matchesOther := wantDiscount && item.Discounted()
			for _, v := range otherWanted {
				if v != Discount && item.HasLabel(v) {
					matchesOther = true
					break
				}
			}
			if !matchesOther {
				continue
			}
		}
		kept = append(kept, item)
	}
	return kept
}

func hasAny(item menu.Item, labels []string) bool {
	for _, l := range labels {
		if item.HasLabel(l) {
			return true
		}
	}
	return false
}

// FilterSubcategories applies the selection to each subcategory's items
// and drops subcategories whose filtered item list becomes empty.
// Subcategories are never matched by name, only by item content.
func FilterSubcategories(subs []menu.SubCategory, selected []string) []menu.SubCategory {
	if len(selected) == 0 {
		return subs
	}

	kept := make([]menu.SubCategory, 0, len(subs))
	for _, sub := range subs {
		items := FilterItems(sub.Items, selected)
		if len(items) == 0 {
			continue
		}
		sub.Items = items
		kept = append(kept, sub)
	}
	return kept
}

// FilterCategory applies the selection to a category regardless of
// whether it holds flat items or subcategories.
func FilterCategory(cat menu.Category, selected []string) menu.Category {
	if cat.Items != nil {
		cat.Items = FilterItems(cat.Items, selected)
		return cat
	}
	cat.Subcategories = FilterSubcategories(cat.Subcategories, selected)
	return cat
}
