package core

import (
	"fmt"
	"math"
)

// CategoryAmount represents an amount aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount Money
}

// AggregateByCategory groups the expenses by category and sums their
// amounts. The result keeps first-occurrence order, which is an explicit
// contract: TopCategory tie-breaking depends on it. Categories with no
// matching expenses are absent rather than present with a zero amount.
func AggregateByCategory(expenses []Expense) []CategoryAmount {
	index := make(map[string]int)
	out := make([]CategoryAmount, 0)
	for _, e := range expenses {
		if i, ok := index[e.Category]; ok {
			out[i].Amount = out[i].Amount.Add(e.Amount)
			continue
		}
		index[e.Category] = len(out)
		out = append(out, CategoryAmount{Name: e.Category, Amount: e.Amount})
	}
	return out
}

// TotalSpent sums every amount; zero for empty input.
func TotalSpent(expenses []Expense) Money {
	var total Money
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// TopCategory returns the aggregated entry with the maximum sum. Ties keep
// the earlier entry, so given AggregateByCategory's first-occurrence order
// the result is deterministic. ok is false when the aggregation is empty.
func TopCategory(aggregated []CategoryAmount) (top CategoryAmount, ok bool) {
	for i, ca := range aggregated {
		if i == 0 || ca.Amount.Cents > top.Amount.Cents {
			top = ca
		}
	}
	return top, len(aggregated) > 0
}

// SharePercent returns the rounded percentage that part represents of
// total, 0 when total is zero.
func SharePercent(part, total Money) int {
	if total.Cents <= 0 {
		return 0
	}
	return int(math.Round(float64(part.Cents) / float64(total.Cents) * 100))
}

// Suggestion derives the human-readable observation shown next to the
// distribution chart. Wording follows the original household app; the
// quantities (top category, its rounded share, the window scope) are the
// contract.
func Suggestion(expenses []Expense, w Window) string {
	if len(expenses) == 0 {
		return "No hay gastos registrados en este período."
	}
	agg := AggregateByCategory(expenses)
	top, ok := TopCategory(agg)
	if !ok {
		return "Comienza a registrar tus gastos para obtener sugerencias."
	}
	percentage := SharePercent(top.Amount, TotalSpent(expenses))
	scope := "este mes"
	switch w.Kind {
	case Yearly:
		scope = "este año"
	case AllTime:
		scope = "históricamente"
	}
	return fmt.Sprintf("Tu mayor gasto %s es en %s (%d%%). Intenta vigilar esta categoría.", scope, top.Name, percentage)
}
