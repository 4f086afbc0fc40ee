package service

import "licsum/internal/domain"

// Aggregate groups users by their exact role set. The grouping key is the
// canonical sorted role-name sequence, so membership is independent of the
// order roles were encountered in. Combinations are returned in first-seen
// order.
func Aggregate(users []domain.UserRoles) []*domain.RoleCombination {
	byKey := make(map[domain.CombinationKey]*domain.RoleCombination)
	var combos []*domain.RoleCombination

	for i, u := range users {
		key := domain.KeyFor(u.Roles)
		if combo, ok := byKey[key]; ok {
			combo.Count++
			continue
		}
		combo := domain.NewRoleCombination(u.Roles, i)
		byKey[key] = combo
		combos = append(combos, combo)
	}
	return combos
}
