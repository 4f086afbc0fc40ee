package service

import "licsum/internal/domain"

// Resolve computes each combination's license vector as the OR across its
// roles' vectors. A role missing from the catalog aborts resolution with
// UnknownRole; a partial vector would understate license requirements.
func Resolve(combos []*domain.RoleCombination, catalog *RoleCatalog) error {
	for _, combo := range combos {
		var set domain.LicenseSet
		for _, role := range combo.Roles {
			licenses, err := catalog.LicensesFor(role)
			if err != nil {
				return err
			}
			set = set.Union(licenses)
		}
		combo.Licenses = set
	}
	return nil
}
