package core

import (
	"strings"
	"testing"
	"time"
)

func TestAggregateByCategory(t *testing.T) {
	expenses := []Expense{
		exp(1, 10000, "Nafta", day(2024, time.March, 1)),
		exp(2, 30000, "Supermercado", day(2024, time.March, 15)),
		exp(3, 2500, "Nafta", day(2024, time.March, 20)),
	}
	got := AggregateByCategory(expenses)
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	// First-occurrence order is part of the contract.
	if got[0].Name != "Nafta" || got[0].Amount.Cents != 12500 {
		t.Fatalf("row 0 = %+v, want Nafta/12500", got[0])
	}
	if got[1].Name != "Supermercado" || got[1].Amount.Cents != 30000 {
		t.Fatalf("row 1 = %+v, want Supermercado/30000", got[1])
	}
}

func TestAggregateSumInvariant(t *testing.T) {
	expenses := []Expense{
		exp(1, 100, "A", day(2024, time.January, 1)),
		exp(2, 250, "B", day(2024, time.February, 1)),
		exp(3, 0, "A", day(2024, time.March, 1)),
		exp(4, 999, "C", day(2025, time.April, 1)),
	}
	var sum int64
	for _, ca := range AggregateByCategory(expenses) {
		sum += ca.Amount.Cents
	}
	if total := TotalSpent(expenses).Cents; sum != total {
		t.Fatalf("aggregated sum %d != total spent %d", sum, total)
	}
}

func TestTotalSpentEmpty(t *testing.T) {
	if got := TotalSpent(nil).Cents; got != 0 {
		t.Fatalf("TotalSpent(nil) = %d, want 0", got)
	}
}

func TestTopCategory(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		if _, ok := TopCategory(nil); ok {
			t.Fatalf("expected ok=false on empty aggregation")
		}
	})

	t.Run("maximum", func(t *testing.T) {
		agg := []CategoryAmount{
			{Name: "Nafta", Amount: Money{Cents: 100}},
			{Name: "Supermercado", Amount: Money{Cents: 300}},
		}
		top, ok := TopCategory(agg)
		if !ok || top.Name != "Supermercado" || top.Amount.Cents != 300 {
			t.Fatalf("top = %+v ok=%v, want Supermercado/300", top, ok)
		}
	})

	t.Run("ties keep first occurrence", func(t *testing.T) {
		agg := []CategoryAmount{
			{Name: "Salidas", Amount: Money{Cents: 500}},
			{Name: "Servicios", Amount: Money{Cents: 500}},
		}
		top, _ := TopCategory(agg)
		if top.Name != "Salidas" {
			t.Fatalf("tie broken to %q, want Salidas", top.Name)
		}
	})
}

func TestSharePercent(t *testing.T) {
	cases := []struct {
		part, total int64
		want        int
	}{
		{30000, 40000, 75},
		{1, 3, 33},
		{2, 3, 67},
		{0, 0, 0},
		{5, 0, 0},
	}
	for _, tc := range cases {
		if got := SharePercent(Money{Cents: tc.part}, Money{Cents: tc.total}); got != tc.want {
			t.Fatalf("SharePercent(%d/%d) = %d, want %d", tc.part, tc.total, got, tc.want)
		}
	}
}

func TestSuggestion(t *testing.T) {
	expenses := []Expense{
		exp(1, 10000, "Nafta", day(2024, time.March, 1)),
		exp(2, 30000, "Supermercado", day(2024, time.March, 15)),
	}

	t.Run("no expenses", func(t *testing.T) {
		got := Suggestion(nil, MonthWindow(2024, time.March))
		if got != "No hay gastos registrados en este período." {
			t.Fatalf("unexpected message: %q", got)
		}
	})

	t.Run("monthly scope and percentage", func(t *testing.T) {
		got := Suggestion(expenses, MonthWindow(2024, time.March))
		if !strings.Contains(got, "Supermercado") || !strings.Contains(got, "(75%)") {
			t.Fatalf("message %q should name Supermercado at 75%%", got)
		}
		if !strings.Contains(got, "este mes") {
			t.Fatalf("message %q should be month-scoped", got)
		}
	})

	t.Run("yearly scope", func(t *testing.T) {
		if got := Suggestion(expenses, YearWindow(2024)); !strings.Contains(got, "este año") {
			t.Fatalf("message %q should be year-scoped", got)
		}
	})

	t.Run("all time scope", func(t *testing.T) {
		if got := Suggestion(expenses, AllTimeWindow()); !strings.Contains(got, "históricamente") {
			t.Fatalf("message %q should be all-time-scoped", got)
		}
	})

	t.Run("zero total yields zero percent", func(t *testing.T) {
		zeros := []Expense{exp(1, 0, "Varios", day(2024, time.March, 1))}
		if got := Suggestion(zeros, AllTimeWindow()); !strings.Contains(got, "(0%)") {
			t.Fatalf("message %q should report 0%%", got)
		}
	})
}

// The full dashboard scenario: March 2024 filter, aggregation, total, top
// category and suggestion percentage over the same data set.
func TestMonthlyDashboardScenario(t *testing.T) {
	expenses := []Expense{
		exp(1, 10000, "Nafta", day(2024, time.March, 1)),
		exp(2, 30000, "Supermercado", day(2024, time.March, 15)),
		exp(3, 5000, "Nafta", day(2025, time.March, 1)),
	}

	filtered := FilterByWindow(expenses, MonthWindow(2024, time.March))
	if len(filtered) != 2 {
		t.Fatalf("filtered %d expenses, want 2", len(filtered))
	}

	agg := AggregateByCategory(filtered)
	if len(agg) != 2 || agg[0].Amount.Cents != 10000 || agg[1].Amount.Cents != 30000 {
		t.Fatalf("aggregation = %+v", agg)
	}

	if total := TotalSpent(filtered); total.Cents != 40000 {
		t.Fatalf("total = %d, want 40000", total.Cents)
	}

	top, ok := TopCategory(agg)
	if !ok || top.Name != "Supermercado" || top.Amount.Cents != 30000 {
		t.Fatalf("top = %+v", top)
	}

	if got := Suggestion(filtered, MonthWindow(2024, time.March)); !strings.Contains(got, "(75%)") {
		t.Fatalf("suggestion %q should carry 75%%", got)
	}
}
