// Package storage provides the durable key-value adapter the ledger and
// taxonomy read at startup and write on every mutation.
package storage

import "context"

// Keys in use. One holds the serialized expense collection, the other the
// custom category labels.
const (
	KeyExpenses         = "expenses"
	KeyCustomCategories = "custom_categories"
)

// Store is the persistence port. Load reports ok=false when the key was
// never written; Save failures surface to the caller instead of being
// swallowed, so no mutation is silently dropped.
type Store interface {
	Load(ctx context.Context, key string) (value string, ok bool, err error)
	Save(ctx context.Context, key, value string) error
}
