package config

import "sort"

// Month is a calendar (year, month) key on the growth curve.
type Month struct {
	Year  int
	Month int
}

func (m Month) index() int { return m.Year*12 + m.Month - 1 }

// Before reports whether m precedes other.
func (m Month) Before(other Month) bool { return m.index() < other.index() }

// AtOrAfter reports whether m is the same month as other or later.
func (m Month) AtOrAfter(other Month) bool { return m.index() >= other.index() }

// PeakARR is the net annual run-rate, in $M, the curve normalizes against.
const PeakARR = 350.0

// monthlyARR maps calendar months to the cumulative net ARR milestone in $M.
// Derived from the quarterly targets: Q3 2023 $3M through Q4 2025 $350M,
// flat at peak through February 2026.
var monthlyARR = map[Month]float64{
	{2023, 7}: 1.0, {2023, 8}: 2.0, {2023, 9}: 3.0,
	{2023, 10}: 5.0, {2023, 11}: 7.5, {2023, 12}: 10.0,
	{2024, 1}: 15.0, {2024, 2}: 20.0, {2024, 3}: 25.0,
	{2024, 4}: 32.0, {2024, 5}: 40.0, {2024, 6}: 50.0,
	{2024, 7}: 60.0, {2024, 8}: 75.0, {2024, 9}: 90.0,
	{2024, 10}: 110.0, {2024, 11}: 130.0, {2024, 12}: 150.0,
	{2025, 1}: 175.0, {2025, 2}: 200.0, {2025, 3}: 230.0,
	{2025, 4}: 255.0, {2025, 5}: 275.0, {2025, 6}: 290.0,
	{2025, 7}: 305.0, {2025, 8}: 318.0, {2025, 9}: 330.0,
	{2025, 10}: 340.0, {2025, 11}: 345.0, {2025, 12}: 350.0,
	{2026, 1}: 350.0, {2026, 2}: 350.0,
}

// MonthlyMultiplier returns the 0-1 ratio of the month's ARR milestone to
// peak. Months outside the curve return 0.
func MonthlyMultiplier(year, month int) float64 {
	return monthlyARR[Month{year, month}] / PeakARR
}

// ActiveMonths returns every month on the growth curve, sorted ascending.
func ActiveMonths() []Month {
	months := make([]Month, 0, len(monthlyARR))
	for m := range monthlyARR {
		months = append(months, m)
	}
	sort.Slice(months, func(i, j int) bool { return months[i].index() < months[j].index() })
	return months
}
