package filter

// Selection holds the patron's chosen facet values in two scopes: a
// global set applied menu-wide and a local set per category. The
// effective selection for any one category is the union of the two.
//
// When a value is active globally and toggled again locally, this
// implementation keeps plain union semantics, so the local entry is
// redundant rather than an override. The override interpretation is
// pending product clarification.
type Selection struct {
	Global []string
	Local  map[string][]string
}

// EffectiveFor returns the union of the global selection and the named
// category's local selection, global values first, without duplicates.
func (s Selection) EffectiveFor(category string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, v := range s.Global {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, v := range s.Local[category] {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
