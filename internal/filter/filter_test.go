package filter

import (
	"reflect"
	"testing"

	"chhaon/internal/menu"
)

func item(name string, labels ...string) menu.Item {
	return menu.Item{Name: name, Price: 100, Labels: labels}
}

func discounted(name string, labels ...string) menu.Item {
	return menu.Item{Name: name, Price: 100, OriginalPrice: 130, Labels: labels}
}

func names(items []menu.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestFilterItemsEmptySelectionIsIdentity(t *testing.T) {
	items := []menu.Item{item("A", "Spicy"), item("B"), discounted("C")}

	got := FilterItems(items, nil)
	if !reflect.DeepEqual(names(got), []string{"A", "B", "C"}) {
		t.Errorf("empty selection must return all items in order, got %v", names(got))
	}
}

func TestFilterItemsDietaryGate(t *testing.T) {
	items := []menu.Item{
		item("Veg", menu.LabelVegetarian),
		item("Vgn", menu.LabelVegan),
		item("Hot", menu.LabelSpicy),
	}

	got := FilterItems(items, []string{menu.LabelVegetarian})
	if !reflect.DeepEqual(names(got), []string{"Veg"}) {
		t.Errorf("expected only the Vegetarian item, got %v", names(got))
	}
}

func TestFilterItemsDietaryOnlyNeedsNoOtherMatch(t *testing.T) {
	// the common "show only Vegetarian" case: no discount or other
	// label may be required on top
	items := []menu.Item{item("Plain Veg", menu.LabelVegetarian)}

	got := FilterItems(items, []string{menu.LabelVegetarian})
	if len(got) != 1 {
		t.Fatalf("dietary-only selection must admit on dietary match alone")
	}
}

func TestFilterItemsDietaryAndOtherCombine(t *testing.T) {
	items := []menu.Item{
		item("VegSpicy", menu.LabelVegetarian, menu.LabelSpicy),
		item("VegPlain", menu.LabelVegetarian),
		item("NonVegSpicy", menu.LabelNonVegetarian, menu.LabelSpicy),
	}

	got := FilterItems(items, []string{menu.LabelVegetarian, menu.LabelSpicy})
	if !reflect.DeepEqual(names(got), []string{"VegSpicy"}) {
		t.Errorf("dietary AND-gate with label OR-gate failed, got %v", names(got))
	}
}

func TestFilterItemsDiscountSelection(t *testing.T) {
	items := []menu.Item{discounted("Deal"), item("Full")}

	got := FilterItems(items, []string{Discount})
	if !reflect.DeepEqual(names(got), []string{"Deal"}) {
		t.Errorf("Discount selection should keep only discounted items, got %v", names(got))
	}
}

func TestFilterItemsDiscountWithDietary(t *testing.T) {
	items := []menu.Item{
		discounted("VegDeal", menu.LabelVegetarian),
		item("VegFull", menu.LabelVegetarian),
		discounted("NonVegDeal", menu.LabelNonVegetarian),
	}

	got := FilterItems(items, []string{menu.LabelVegetarian, Discount})
	if !reflect.DeepEqual(names(got), []string{"VegDeal"}) {
		t.Errorf("expected discounted vegetarian items only, got %v", names(got))
	}
}

func TestExtractUniqueFiltersCountsAndDiscountFacet(t *testing.T) {
	categories := []menu.Category{
		{Name: "Drinks", Items: []menu.Item{
			{Name: "Shake", Price: 100, OriginalPrice: 130, Labels: []string{menu.LabelVegetarian}},
			item("Tea", menu.LabelVegan),
		}},
		{Name: "Main", Subcategories: []menu.SubCategory{
			{Name: "Curries", Items: []menu.Item{
				item("Dal", menu.LabelVegetarian),
			}},
		}},
	}

	options := ExtractUniqueFilters(categories)

	byValue := make(map[string]Option)
	for _, o := range options {
		byValue[o.Value] = o
	}

	if o := byValue[menu.LabelVegetarian]; o.Count != 2 {
		t.Errorf("Vegetarian count = %d, want 2", o.Count)
	}
	if o, ok := byValue[Discount]; !ok || o.Count != 1 {
		t.Errorf("Discount facet = %+v, want count 1", o)
	}
	if byValue[Discount].Label != "On Discount" {
		t.Errorf("Discount label = %q, want %q", byValue[Discount].Label, "On Discount")
	}
}

func TestExtractUniqueFiltersLabelRewrite(t *testing.T) {
	categories := []menu.Category{
		{Name: "Main", Items: []menu.Item{item("Tikka", menu.LabelChefsRecommended)}},
	}

	options := ExtractUniqueFilters(categories)
	if len(options) != 1 {
		t.Fatalf("expected 1 option, got %d", len(options))
	}
	if options[0].Label != "Chef's Pick" || options[0].Value != menu.LabelChefsRecommended {
		t.Errorf("unexpected option: %+v", options[0])
	}
}

func TestExtractUniqueFiltersStableSort(t *testing.T) {
	// Spicy and Vegan tie at 1; Spicy is encountered first and must
	// stay first. Vegetarian leads with 2.
	categories := []menu.Category{
		{Name: "A", Items: []menu.Item{
			item("One", menu.LabelSpicy, menu.LabelVegetarian),
			item("Two", menu.LabelVegan, menu.LabelVegetarian),
		}},
	}

	options := ExtractUniqueFilters(categories)
	got := make([]string, len(options))
	for i, o := range options {
		got[i] = o.Value
	}

	want := []string{menu.LabelVegetarian, menu.LabelSpicy, menu.LabelVegan}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestExtractUniqueFiltersNoDiscountFacetWithoutDiscounts(t *testing.T) {
	categories := []menu.Category{
		{Name: "A", Items: []menu.Item{item("Plain", menu.LabelVegan)}},
	}

	for _, o := range ExtractUniqueFilters(categories) {
		if o.Value == Discount {
			t.Error("Discount facet must not appear when nothing is discounted")
		}
	}
}

func TestFilterSubcategoriesDropsEmptied(t *testing.T) {
	subs := []menu.SubCategory{
		{Name: "Veg", Items: []menu.Item{item("Paneer", menu.LabelVegetarian)}},
		{Name: "Non-Veg", Items: []menu.Item{item("Chicken", menu.LabelNonVegetarian)}},
	}

	got := FilterSubcategories(subs, []string{menu.LabelVegetarian})
	if len(got) != 1 || got[0].Name != "Veg" {
		t.Fatalf("expected only the Veg subcategory, got %+v", got)
	}
	if len(got[0].Items) != 1 {
		t.Errorf("filtered subcategory should keep its matching items")
	}
}

func TestFilterSubcategoriesEmptySelection(t *testing.T) {
	subs := []menu.SubCategory{
		{Name: "Veg", Items: []menu.Item{item("Paneer")}},
	}

	got := FilterSubcategories(subs, nil)
	if len(got) != 1 || len(got[0].Items) != 1 {
		t.Errorf("empty selection must keep everything, got %+v", got)
	}
}

func TestSelectionEffectiveForIsUnion(t *testing.T) {
	sel := Selection{
		Global: []string{menu.LabelVegetarian, Discount},
		Local: map[string][]string{
			"Chinese": {menu.LabelSpicy, menu.LabelVegetarian},
		},
	}

	got := sel.EffectiveFor("Chinese")
	want := []string{menu.LabelVegetarian, Discount, menu.LabelSpicy}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("union = %v, want %v", got, want)
	}

	// a category with no local selection sees the global set only
	if got := sel.EffectiveFor("Drinks"); !reflect.DeepEqual(got, []string{menu.LabelVegetarian, Discount}) {
		t.Errorf("global-only union = %v", got)
	}
}
