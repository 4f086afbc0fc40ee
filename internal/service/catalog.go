// Package service implements the license summary pipeline: catalog load,
// user-role extraction, combination aggregation, license resolution, and
// report building.
package service

import (
	"strings"

	"licsum/internal/domain"
)

// RoleCatalog holds the role -> license mapping and answers which license
// categories a role requires. Immutable once loaded.
type RoleCatalog struct {
	licenses map[string]domain.LicenseSet
	order    []string // insertion order, for stable verbose dumps
}

// LoadCatalog validates raw role-mapping rows into a catalog.
// A blank role name or a flag cell outside {"", "0", "1"} is a
// MalformedRoleRow. The same name appearing twice is tolerated when the
// flags are identical and a DuplicateRole otherwise.
func LoadCatalog(rows []domain.RoleRow) (*RoleCatalog, error) {
	cat := &RoleCatalog{licenses: make(map[string]domain.LicenseSet, len(rows))}
	for _, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return nil, domain.ErrMalformedRoleRow("roles row %d: blank role name", row.Row)
		}
		flags, err := parseFlags(row)
		if err != nil {
			return nil, err
		}
		if existing, ok := cat.licenses[name]; ok {
			if existing != flags {
				return nil, domain.ErrDuplicateRole(
					"roles row %d: role %q already defined with different license flags", row.Row, name)
			}
			continue
		}
		cat.licenses[name] = flags
		cat.order = append(cat.order, name)
	}
	return cat, nil
}

// parseFlags validates the row's flag cells into a LicenseSet. Missing
// trailing cells count as "not required", matching short rows in real
// mapping sheets.
func parseFlags(row domain.RoleRow) (domain.LicenseSet, error) {
	var set domain.LicenseSet
	for i := range set {
		if i >= len(row.Flags) {
			break
		}
		switch strings.TrimSpace(row.Flags[i]) {
		case "", "0":
		case "1":
			set[i] = true
		default:
			return set, domain.ErrMalformedRoleRow(
				"roles row %d: %s flag for role %q must be 0 or 1, got %q",
				row.Row, domain.LicenseCategories[i], strings.TrimSpace(row.Name), row.Flags[i])
		}
	}
	return set, nil
}

// LicensesFor returns the license vector for a known role name.
func (c *RoleCatalog) LicensesFor(name string) (domain.LicenseSet, error) {
	set, ok := c.licenses[name]
	if !ok {
		return domain.LicenseSet{}, domain.ErrUnknownRole(name)
	}
	return set, nil
}

// Len returns the number of distinct roles in the catalog.
func (c *RoleCatalog) Len() int { return len(c.licenses) }

// Roles returns the catalog entries in insertion order.
func (c *RoleCatalog) Roles() []domain.Role {
	roles := make([]domain.Role, 0, len(c.order))
	for _, name := range c.order {
		roles = append(roles, domain.Role{Name: name, Licenses: c.licenses[name]})
	}
	return roles
}
