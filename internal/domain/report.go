package domain

import "sort"

// SummaryReport is the finished report: combinations ordered by descending
// member count (ties broken by first-seen order) plus totals.
type SummaryReport struct {
	Combinations  []*RoleCombination
	TotalUsers    int    // sum of member counts across all combinations
	LicenseTotals [5]int // distinct combinations requiring each category
}

// LicenseSetLabels returns the sorted distinct license-set labels across
// all combinations. Combinations requiring no license are excluded.
func (r *SummaryReport) LicenseSetLabels() []string {
	seen := map[string]struct{}{}
	for _, c := range r.Combinations {
		if c.Licenses.Any() {
			seen[c.Licenses.Label()] = struct{}{}
		}
	}
	labels := make([]string, 0, len(seen))
	for l := range seen {
		labels = append(labels, l)
	}
	sort.Strings(labels)
	return labels
}

// Diagnostics accumulates non-fatal issues encountered during a run.
type Diagnostics struct {
	SkippedRows   int // assignment rows dropped for a blank user identifier
	RolelessUsers int // users that yielded no role names after splitting
}

// Empty reports whether the run completed without soft failures.
func (d Diagnostics) Empty() bool {
	return d.SkippedRows == 0 && d.RolelessUsers == 0
}
