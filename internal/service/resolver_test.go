package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licsum/internal/domain"
)

func TestResolve(t *testing.T) {
	cat, err := LoadCatalog([]domain.RoleRow{
		{Row: 2, Name: "Accountant", Flags: []string{"1", "", "", "", ""}},
		{Row: 3, Name: "Buyer", Flags: []string{"", "1", "", "", ""}},
	})
	require.NoError(t, err)

	t.Run("or_across_member_roles", func(t *testing.T) {
		combo := domain.NewRoleCombination(rolesOf("Accountant", "Buyer"), 0)

		require.NoError(t, Resolve([]*domain.RoleCombination{combo}, cat))
		assert.Equal(t, domain.LicenseSet{true, true, false, false, false}, combo.Licenses)
	})

	t.Run("unknown_role_aborts", func(t *testing.T) {
		known := domain.NewRoleCombination(rolesOf("Accountant"), 0)
		bad := domain.NewRoleCombination(rolesOf("Accountant", "Ghost"), 1)

		err := Resolve([]*domain.RoleCombination{known, bad}, cat)

		var unknown *domain.UnknownRoleError
		require.True(t, errors.As(err, &unknown))
		assert.Equal(t, "Ghost", unknown.Role)
		// No partial vector on the failed combination.
		assert.False(t, bad.Licenses.Any())
	})
}
