package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "gastos.db")
	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	if _, ok, err := s.Load(ctx, KeyExpenses); err != nil || ok {
		t.Fatalf("fresh db: ok=%v err=%v, want absent", ok, err)
	}

	payload := `[{"id":1,"amount":{"cents":10000},"category":"Nafta","payer":"Tomi","date":"2024-03-01T00:00:00Z"}]`
	if err := s.Save(ctx, KeyExpenses, payload); err != nil {
		t.Fatalf("save: %v", err)
	}
	v, ok, err := s.Load(ctx, KeyExpenses)
	if err != nil || !ok || v != payload {
		t.Fatalf("load: ok=%v err=%v value=%q", ok, err, v)
	}

	// Upsert keeps a single row per key.
	if err := s.Save(ctx, KeyExpenses, `[]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	v, _, _ = s.Load(ctx, KeyExpenses)
	if v != `[]` {
		t.Fatalf("value after overwrite = %q", v)
	}
}

func TestSQLiteStoreReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "gastos.db")
	ctx := context.Background()

	s, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := s.Save(ctx, KeyCustomCategories, `["Viajes"]`); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopen runs migrations again (no-op) and finds the saved value.
	s2, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer s2.Close()
	v, ok, err := s2.Load(ctx, KeyCustomCategories)
	if err != nil || !ok || v != `["Viajes"]` {
		t.Fatalf("load after reopen: ok=%v err=%v value=%q", ok, err, v)
	}
}
