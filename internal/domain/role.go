// Package domain defines core types and errors for the license summary tool.
package domain

import "strings"

// License category names, in report column order.
const (
	LicenseFinance  = "Finance"
	LicenseSCM      = "SCM"
	LicenseCommerce = "Commerce"
	LicenseProject  = "Project"
	LicenseHR       = "HR"
)

// LicenseCategories lists the five categories in canonical column order.
// LicenseSet is indexed in this order.
var LicenseCategories = [5]string{
	LicenseFinance,
	LicenseSCM,
	LicenseCommerce,
	LicenseProject,
	LicenseHR,
}

// LicenseSet is a per-category requirement vector.
type LicenseSet [5]bool

// Union returns the element-wise OR of s and other.
func (s LicenseSet) Union(other LicenseSet) LicenseSet {
	var out LicenseSet
	for i := range s {
		out[i] = s[i] || other[i]
	}
	return out
}

// Any reports whether at least one category is required.
func (s LicenseSet) Any() bool {
	for _, v := range s {
		if v {
			return true
		}
	}
	return false
}

// Label returns the comma-joined names of the required categories,
// e.g. "Finance, SCM". Empty when no category is required.
func (s LicenseSet) Label() string {
	var names []string
	for i, v := range s {
		if v {
			names = append(names, LicenseCategories[i])
		}
	}
	return strings.Join(names, ", ")
}

// Role is one catalog entry: a security role and the licenses it requires.
type Role struct {
	Name     string
	Licenses LicenseSet
}

// RoleRow is one raw row from the roles workbook: a role name cell and up
// to five 0/1 flag cells in category order. Values are unvalidated cell text.
type RoleRow struct {
	Row   int // 1-based sheet row, for error messages
	Name  string
	Flags []string
}

// AssignmentRow is one flattened row of the license report: a user
// identifier and the raw role cell attributed to that user. The role cell
// may hold several delimiter-joined role names.
type AssignmentRow struct {
	Row      int
	User     string
	RoleCell string
}

// UserRoles is the set of role names held by one user.
type UserRoles struct {
	User  string
	Roles map[string]struct{}
}
