// Package ledger owns the household's expense collection and category
// taxonomy. Both are loaded once from the storage adapter at startup and
// re-serialized on every mutation; collaborators only ever see copies.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"gastos/internal/core"
	"gastos/internal/storage"
)

// TaxonomyChecker is what the ledger needs from the taxonomy at entry time.
type TaxonomyChecker interface {
	Contains(label string) bool
}

// Ledger is the append-only (plus delete) collection of expenses.
type Ledger struct {
	mu       sync.Mutex
	store    storage.Store
	taxonomy TaxonomyChecker
	expenses []core.Expense
	lastID   int64

	now func() time.Time
}

func NewLedger(store storage.Store, taxonomy TaxonomyChecker) *Ledger {
	return &Ledger{
		store:    store,
		taxonomy: taxonomy,
		now:      time.Now,
	}
}

// Load reads the persisted collection. An absent key means an empty ledger;
// so does a corrupt payload, which is logged and never fatal.
func (l *Ledger) Load(ctx context.Context) error {
	raw, ok, err := l.store.Load(ctx, storage.KeyExpenses)
	if err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.expenses = nil
	l.lastID = 0
	if !ok {
		return nil
	}

	var expenses []core.Expense
	if err := json.Unmarshal([]byte(raw), &expenses); err != nil {
		slog.WarnContext(ctx, "Corrupt expense payload, starting empty",
			"error", err, "bytes", len(raw))
		return nil
	}
	l.expenses = expenses
	for _, e := range expenses {
		if e.ID > l.lastID {
			l.lastID = e.ID
		}
	}

	slog.InfoContext(ctx, "Ledger loaded", "expenses", len(expenses))
	return nil
}

// Add validates the input, assigns a fresh id and persists the grown
// collection before returning the new record. A zero date means "now".
// Unknown categories are accepted without being registered in the taxonomy;
// that mirrors the behavior the household app always had, so it is logged
// rather than rejected.
func (l *Ledger) Add(ctx context.Context, amount core.Money, category, payer string, date time.Time) (core.Expense, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if date.IsZero() {
		date = l.now()
	}
	e := core.Expense{
		Amount:   amount,
		Category: category,
		Payer:    payer,
		Date:     date,
	}
	if err := e.Validate(); err != nil {
		return core.Expense{}, err
	}
	e.ID = l.nextID()
	if l.taxonomy != nil && !l.taxonomy.Contains(category) {
		slog.WarnContext(ctx, "Expense category not in taxonomy",
			"category", category, "id", e.ID)
	}

	l.expenses = append(l.expenses, e)
	if err := l.persist(ctx); err != nil {
		l.expenses = l.expenses[:len(l.expenses)-1]
		return core.Expense{}, err
	}

	slog.InfoContext(ctx, "Expense added",
		"id", e.ID,
		"amount_cents", e.Amount.Cents,
		"category", e.Category,
		"payer", e.Payer)
	return e, nil
}

// Delete removes the expense with the given id and persists the reduced
// collection. A missing id is a silent no-op, not an error.
func (l *Ledger) Delete(ctx context.Context, id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i, e := range l.expenses {
		if e.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		slog.DebugContext(ctx, "Delete of absent expense ignored", "id", id)
		return nil
	}

	removed := l.expenses[idx]
	l.expenses = append(l.expenses[:idx:idx], l.expenses[idx+1:]...)
	if err := l.persist(ctx); err != nil {
		rest := l.expenses
		l.expenses = append(append([]core.Expense(nil), rest[:idx]...), removed)
		l.expenses = append(l.expenses, rest[idx:]...)
		return err
	}

	slog.InfoContext(ctx, "Expense deleted", "id", id)
	return nil
}

// List returns a copy of every expense in insertion order, which is not
// guaranteed to be chronological; callers needing that must sort by date.
func (l *Ledger) List() []core.Expense {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]core.Expense(nil), l.expenses...)
}

// nextID hands out unix-millisecond ids, bumped past the last one on
// collision so ids stay unique and strictly ordered by creation.
func (l *Ledger) nextID() int64 {
	id := l.now().UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}

func (l *Ledger) persist(ctx context.Context) error {
	raw, err := json.Marshal(l.expenses)
	if err != nil {
		return fmt.Errorf("marshal expenses: %w", err)
	}
	if err := l.store.Save(ctx, storage.KeyExpenses, string(raw)); err != nil {
		return fmt.Errorf("persist expenses: %w", err)
	}
	return nil
}
