package service

import (
	"strings"

	"licsum/internal/domain"
)

// Extractor turns raw assignment rows into per-user role sets.
type Extractor struct {
	delimiter string
}

// NewExtractor creates an Extractor that splits multi-role cells on the
// given delimiter. Cells are additionally split on newlines, which wrapped
// report cells use regardless of the configured delimiter.
func NewExtractor(delimiter string) *Extractor {
	return &Extractor{delimiter: delimiter}
}

// Extract builds the user -> role-set mapping. Users are returned in
// first-seen order; a user appearing on multiple rows accumulates roles
// into one set. Rows with a blank user identifier are skipped and tallied
// in diag, as are users whose rows yield no role names at all.
func (e *Extractor) Extract(rows []domain.AssignmentRow, diag *domain.Diagnostics) []domain.UserRoles {
	byUser := make(map[string]int) // user -> index into users
	var users []domain.UserRoles

	for _, row := range rows {
		user := strings.TrimSpace(row.User)
		if user == "" {
			diag.SkippedRows++
			continue
		}
		idx, ok := byUser[user]
		if !ok {
			idx = len(users)
			byUser[user] = idx
			users = append(users, domain.UserRoles{User: user, Roles: map[string]struct{}{}})
		}
		for _, role := range e.splitRoles(row.RoleCell) {
			users[idx].Roles[role] = struct{}{}
		}
	}

	// Drop users that never produced a role name; they cannot belong to
	// any combination and would skew the member-count invariant.
	out := users[:0]
	for _, u := range users {
		if len(u.Roles) == 0 {
			diag.RolelessUsers++
			continue
		}
		out = append(out, u)
	}
	return out
}

// splitRoles splits a raw role cell into trimmed role names, discarding
// empty tokens.
func (e *Extractor) splitRoles(cell string) []string {
	var roles []string
	for _, line := range strings.Split(cell, "\n") {
		for _, token := range strings.Split(line, e.delimiter) {
			token = strings.TrimSpace(token)
			if token != "" {
				roles = append(roles, token)
			}
		}
	}
	return roles
}
