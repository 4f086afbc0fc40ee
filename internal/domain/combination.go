package domain

import (
	"sort"
	"strings"
)

// combinationKeySep joins role names inside a CombinationKey. Role names
// are trimmed single-cell values, so a unit separator cannot occur in one.
const combinationKeySep = "\x1f"

// CombinationKey is the canonical identity of a role set: the sorted,
// deduplicated role names. Two users with the same roles in any order
// produce equal keys.
type CombinationKey string

// KeyFor returns the canonical key for a set of role names.
func KeyFor(roles map[string]struct{}) CombinationKey {
	return CombinationKey(strings.Join(sortedNames(roles), combinationKeySep))
}

// sortedNames returns the set's names as a sorted slice.
func sortedNames(roles map[string]struct{}) []string {
	names := make([]string, 0, len(roles))
	for name := range roles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RoleCombination groups all users sharing an identical role set.
type RoleCombination struct {
	Roles     []string // sorted, deduplicated
	Count     int      // number of member users, >= 1
	FirstSeen int      // position of the first member in extraction order
	Licenses  LicenseSet
}

// NewRoleCombination creates a combination for a role set first seen at
// the given extraction position.
func NewRoleCombination(roles map[string]struct{}, firstSeen int) *RoleCombination {
	return &RoleCombination{
		Roles:     sortedNames(roles),
		Count:     1,
		FirstSeen: firstSeen,
	}
}

// Label returns the display form of the role set, e.g. "Accountant + Buyer".
func (c *RoleCombination) Label() string {
	return strings.Join(c.Roles, " + ")
}
