package core

import (
	"math"
	"sort"
)

// ComparisonRow is one category of a year-over-year comparison. Diff and
// Percent measure the change from year A to year B.
type ComparisonRow struct {
	Category string
	TotalA   Money
	TotalB   Money
	Diff     Money
	Percent  int
}

// CompareYears partitions the expenses by exact calendar-year match against
// yearA and yearB (anything else is ignored), aggregates each bucket by
// category and produces one row per category seen in either year. A
// category inactive in one year appears with a zero total for it.
//
// Percent rules: 0 when both totals are zero, 100 when A is zero and B is
// not, otherwise round(diff/A*100). Rows are sorted descending by the year
// B total; the sort is stable so ties keep first-appearance order. Equal
// years are a valid degenerate input and produce zero diffs.
func CompareYears(expenses []Expense, yearA, yearB int) []ComparisonRow {
	sumA := make(map[string]Money)
	sumB := make(map[string]Money)
	order := make([]string, 0)
	seen := make(map[string]bool)

	for _, e := range expenses {
		year := e.Date.Year()
		if year != yearA && year != yearB {
			continue
		}
		if !seen[e.Category] {
			seen[e.Category] = true
			order = append(order, e.Category)
		}
		if year == yearA {
			sumA[e.Category] = sumA[e.Category].Add(e.Amount)
		}
		if year == yearB {
			sumB[e.Category] = sumB[e.Category].Add(e.Amount)
		}
	}

	rows := make([]ComparisonRow, 0, len(order))
	for _, cat := range order {
		a, b := sumA[cat], sumB[cat]
		rows = append(rows, ComparisonRow{
			Category: cat,
			TotalA:   a,
			TotalB:   b,
			Diff:     b.Sub(a),
			Percent:  changePercent(a, b),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalB.Cents > rows[j].TotalB.Cents
	})
	return rows
}

func changePercent(a, b Money) int {
	if a.Cents == 0 {
		if b.Cents > 0 {
			return 100
		}
		return 0
	}
	diff := float64(b.Cents - a.Cents)
	return int(math.Round(diff / float64(a.Cents) * 100))
}
