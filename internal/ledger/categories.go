package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"gastos/internal/core"
	"gastos/internal/storage"
)

// Categories wraps the taxonomy with persistence. Only the custom labels
// are stored; the built-ins live in core.BuiltinCategories.
type Categories struct {
	mu    sync.Mutex
	store storage.Store
	tax   *core.Taxonomy
}

func NewCategories(store storage.Store) *Categories {
	return &Categories{store: store, tax: core.NewTaxonomy(nil)}
}

// Load reads the persisted custom labels. Absent or corrupt payloads mean
// no customs, never a fatal error.
func (c *Categories) Load(ctx context.Context) error {
	raw, ok, err := c.store.Load(ctx, storage.KeyCustomCategories)
	if err != nil {
		return fmt.Errorf("load custom categories: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !ok {
		c.tax = core.NewTaxonomy(nil)
		return nil
	}

	var custom []string
	if err := json.Unmarshal([]byte(raw), &custom); err != nil {
		slog.WarnContext(ctx, "Corrupt category payload, starting with built-ins only",
			"error", err, "bytes", len(raw))
		c.tax = core.NewTaxonomy(nil)
		return nil
	}
	c.tax = core.NewTaxonomy(custom)

	slog.InfoContext(ctx, "Taxonomy loaded", "custom_categories", len(c.tax.Custom()))
	return nil
}

// Add appends a custom label and persists. Idempotent: empty labels,
// built-ins and existing customs are a silent no-op and nothing is written.
func (c *Categories) Add(ctx context.Context, label string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.tax.Add(label) {
		slog.DebugContext(ctx, "Category add ignored", "label", label)
		return nil
	}

	custom := c.tax.Custom()
	raw, err := json.Marshal(custom)
	if err != nil {
		return fmt.Errorf("marshal custom categories: %w", err)
	}
	if err := c.store.Save(ctx, storage.KeyCustomCategories, string(raw)); err != nil {
		// Roll back the append so memory matches storage.
		c.tax = core.NewTaxonomy(custom[:len(custom)-1])
		return fmt.Errorf("persist custom categories: %w", err)
	}

	slog.InfoContext(ctx, "Custom category added", "label", label)
	return nil
}

// List returns built-ins first, customs after, as the UI renders them.
func (c *Categories) List() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tax.Categories()
}

// Contains implements TaxonomyChecker for the ledger.
func (c *Categories) Contains(label string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tax.Contains(label)
}
