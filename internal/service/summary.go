package service

import (
	"sort"

	"licsum/internal/domain"
)

// BuildSummary orders combinations by descending member count (ties broken
// by first-seen order) and computes the totals row: the grand user count
// and, per license category, the number of distinct combinations requiring
// it. totalUsers is the extracted user count; a mismatch with the summed
// member counts means the pipeline lost or double-counted users and is
// reported as an internal error.
func BuildSummary(combos []*domain.RoleCombination, totalUsers int) (*domain.SummaryReport, error) {
	ordered := make([]*domain.RoleCombination, len(combos))
	copy(ordered, combos)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Count != ordered[j].Count {
			return ordered[i].Count > ordered[j].Count
		}
		return ordered[i].FirstSeen < ordered[j].FirstSeen
	})

	report := &domain.SummaryReport{Combinations: ordered}
	for _, combo := range ordered {
		report.TotalUsers += combo.Count
		for i, required := range combo.Licenses {
			if required {
				report.LicenseTotals[i]++
			}
		}
	}

	if report.TotalUsers != totalUsers {
		return nil, domain.ErrInternal(
			"combination member counts sum to %d but %d users were extracted",
			report.TotalUsers, totalUsers)
	}
	return report, nil
}
