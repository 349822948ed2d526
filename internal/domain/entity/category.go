// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryKind identifies which lookup enumeration a category belongs to.
type CategoryKind string

const (
	CategoryKindIncome        CategoryKind = "income"
	CategoryKindExpense       CategoryKind = "expense"
	CategoryKindPaymentMethod CategoryKind = "payment_method"
)

// IsValid reports whether the kind is one of the known enumerations.
func (k CategoryKind) IsValid() bool {
	return k == CategoryKindIncome || k == CategoryKindExpense || k == CategoryKindPaymentMethod
}

// Category is one entry of a small lookup table (income types, expense types, payment methods).
type Category struct {
	ID        uuid.UUID
	Kind      CategoryKind
	Name      string
	CreatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(kind CategoryKind, name string) *Category {
	return &Category{
		ID:        uuid.New(),
		Kind:      kind,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}

// DefaultCategories returns the enumerations seeded on an empty database.
func DefaultCategories() map[CategoryKind][]string {
	return map[CategoryKind][]string{
		CategoryKindIncome:        {SettlementIncomeCategory, "Adiantamento", "Outros"},
		CategoryKindExpense:       {"Combustível", "Manutenção", "Pedágio", "Alimentação", "Pneus", "Outros"},
		CategoryKindPaymentMethod: {"cash", "pix", "debit", PaymentMethodCredit},
	}
}
