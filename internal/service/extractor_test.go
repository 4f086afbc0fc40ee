package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"licsum/internal/domain"
)

func TestExtractor_Extract(t *testing.T) {
	t.Run("one_row_per_role", func(t *testing.T) {
		var diag domain.Diagnostics
		users := NewExtractor(",").Extract([]domain.AssignmentRow{
			{Row: 21, User: "alice", RoleCell: "Accountant"},
			{Row: 22, User: "alice", RoleCell: "Buyer"},
			{Row: 30, User: "bob", RoleCell: "Buyer"},
		}, &diag)

		require.Len(t, users, 2)
		assert.Equal(t, "alice", users[0].User)
		assert.Len(t, users[0].Roles, 2)
		assert.Contains(t, users[0].Roles, "Buyer")
		assert.Len(t, users[1].Roles, 1)
		assert.True(t, diag.Empty())
	})

	t.Run("delimited_multi_role_cell", func(t *testing.T) {
		var diag domain.Diagnostics
		users := NewExtractor(";").Extract([]domain.AssignmentRow{
			{Row: 21, User: "alice", RoleCell: " Accountant ;Buyer; ;"},
		}, &diag)

		require.Len(t, users, 1)
		assert.Equal(t, map[string]struct{}{"Accountant": {}, "Buyer": {}}, users[0].Roles)
	})

	t.Run("newlines_always_split", func(t *testing.T) {
		var diag domain.Diagnostics
		users := NewExtractor(",").Extract([]domain.AssignmentRow{
			{Row: 21, User: "alice", RoleCell: "Accountant\nBuyer, Clerk"},
		}, &diag)

		require.Len(t, users, 1)
		assert.Len(t, users[0].Roles, 3)
	})

	t.Run("duplicate_pairs_are_idempotent", func(t *testing.T) {
		var diag domain.Diagnostics
		users := NewExtractor(",").Extract([]domain.AssignmentRow{
			{Row: 21, User: "alice", RoleCell: "Buyer, Buyer"},
			{Row: 22, User: "alice", RoleCell: "Buyer"},
		}, &diag)

		require.Len(t, users, 1)
		assert.Len(t, users[0].Roles, 1)
	})

	t.Run("blank_user_is_skipped_and_tallied", func(t *testing.T) {
		var diag domain.Diagnostics
		users := NewExtractor(",").Extract([]domain.AssignmentRow{
			{Row: 21, User: "  ", RoleCell: "Buyer"},
			{Row: 22, User: "bob", RoleCell: "Buyer"},
		}, &diag)

		require.Len(t, users, 1)
		assert.Equal(t, "bob", users[0].User)
		assert.Equal(t, 1, diag.SkippedRows)
	})

	t.Run("roleless_user_is_dropped_and_tallied", func(t *testing.T) {
		var diag domain.Diagnostics
		users := NewExtractor(",").Extract([]domain.AssignmentRow{
			{Row: 21, User: "alice", RoleCell: " , ,"},
			{Row: 22, User: "bob", RoleCell: "Buyer"},
		}, &diag)

		require.Len(t, users, 1)
		assert.Equal(t, "bob", users[0].User)
		assert.Equal(t, 1, diag.RolelessUsers)
	})
}
