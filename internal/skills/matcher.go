package skills

import "strings"

// Related decides whether two skill strings denote the same underlying
// capability. The checks run in order, short-circuiting on the first match:
// case-insensitive exact equality, substring containment in either direction,
// then shared synonym-group membership. The function is pure and total;
// reflexivity and symmetry hold for all inputs, and an empty string is only
// related to another empty string.
func Related(a, b string) bool {
	x := strings.ToLower(strings.TrimSpace(a))
	y := strings.ToLower(strings.TrimSpace(b))

	if x == y {
		return true
	}
	// strings.Contains treats "" as a substring of everything; an empty
	// skill must only match another empty skill.
	if x == "" || y == "" {
		return false
	}
	if strings.Contains(x, y) || strings.Contains(y, x) {
		return true
	}

	for _, group := range synonymGroups {
		if group.contains(x) && group.contains(y) {
			return true
		}
	}

	return false
}

// contains reports whether a lowercased skill belongs to the group, either
// through the base term or one of the listed variants.
func (g synonymGroup) contains(skill string) bool {
	if strings.Contains(skill, g.base) || strings.Contains(g.base, skill) {
		return true
	}
	for _, variant := range g.variants {
		if strings.Contains(skill, variant) {
			return true
		}
	}
	return false
}
