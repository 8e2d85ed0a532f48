package core

import (
	"errors"
	"strings"
	"time"
)

type (
	Money struct {
		Cents int64 `json:"cents"`
	}

	// Expense is a single dated spending event. Category is a free-form
	// label; checking it against the taxonomy happens at the ledger
	// boundary, where unknown labels are still accepted (see ledger.Add).
	Expense struct {
		ID       int64     `json:"id"`
		Amount   Money     `json:"amount"`
		Category string    `json:"category"`
		Payer    string    `json:"payer"`
		Date     time.Time `json:"date"`
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyCategory = errors.New("empty category")
	ErrEmptyPayer    = errors.New("empty payer")
)

// Validate checks the invariants every stored expense must hold. A zero
// amount is allowed, a negative one is rejected rather than clamped.
func (e Expense) Validate() error {
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(e.Payer) == "" {
		return ErrEmptyPayer
	}
	if e.Date.IsZero() {
		return errors.New("date cannot be zero")
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}

// Sub returns m minus other. The result may be negative, which is fine for
// comparison deltas even though stored expenses are never negative.
func (m Money) Sub(other Money) Money {
	return Money{Cents: m.Cents - other.Cents}
}
