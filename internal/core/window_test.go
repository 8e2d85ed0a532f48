package core

import (
	"testing"
	"time"
)

func exp(id int64, cents int64, category string, date time.Time) Expense {
	return Expense{ID: id, Amount: Money{Cents: cents}, Category: category, Payer: "Tomi", Date: date}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestFilterByWindow(t *testing.T) {
	expenses := []Expense{
		exp(1, 10000, "Nafta", day(2024, time.March, 1)),
		exp(2, 30000, "Supermercado", day(2024, time.March, 15)),
		exp(3, 5000, "Nafta", day(2025, time.March, 1)),
	}

	tests := []struct {
		name    string
		w       Window
		wantIDs []int64
	}{
		{"monthly match", MonthWindow(2024, time.March), []int64{1, 2}},
		{"monthly no match", MonthWindow(2024, time.April), nil},
		{"yearly", YearWindow(2025), []int64{3}},
		{"all time", AllTimeWindow(), []int64{1, 2, 3}},
		{"year without data", YearWindow(1999), nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterByWindow(expenses, tc.w)
			if len(got) != len(tc.wantIDs) {
				t.Fatalf("got %d expenses, want %d", len(got), len(tc.wantIDs))
			}
			for i, e := range got {
				if e.ID != tc.wantIDs[i] {
					t.Fatalf("position %d: got id %d, want %d", i, e.ID, tc.wantIDs[i])
				}
			}
		})
	}
}

func TestFilterByWindowEmptyInput(t *testing.T) {
	if got := FilterByWindow(nil, MonthWindow(2024, time.March)); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

// The twelve month windows of a year must partition exactly the yearly
// window: no overlaps, union equal to the yearly set.
func TestMonthWindowsPartitionYear(t *testing.T) {
	var expenses []Expense
	id := int64(1)
	for m := time.January; m <= time.December; m++ {
		expenses = append(expenses,
			exp(id, 1000, "Nafta", day(2024, m, 5)),
			exp(id+1, 2000, "Varios", day(2024, m, 20)),
		)
		id += 2
	}
	// Noise outside the year under test.
	expenses = append(expenses, exp(id, 9999, "Salidas", day(2023, time.December, 31)))

	yearly := FilterByWindow(expenses, YearWindow(2024))

	seen := make(map[int64]int)
	total := 0
	for m := time.January; m <= time.December; m++ {
		for _, e := range FilterByWindow(expenses, MonthWindow(2024, m)) {
			seen[e.ID]++
			total++
		}
	}

	if total != len(yearly) {
		t.Fatalf("month windows yielded %d expenses, yearly has %d", total, len(yearly))
	}
	for _, e := range yearly {
		if seen[e.ID] != 1 {
			t.Fatalf("expense %d appeared %d times across month windows", e.ID, seen[e.ID])
		}
	}
}
