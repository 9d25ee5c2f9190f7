package pipeline

import (
	"context"

	"github.com/jpendyala/money-management-expense-tracker/internal/domain"
	"github.com/jpendyala/money-management-expense-tracker/internal/extraction"
)

// Extractor is the capability boundary for the language-model extraction
// service. This interface enables mocking the model in tests.
type Extractor interface {
	// Extract sends one free-text message to the model and returns the
	// structured fields it produced.
	Extract(ctx context.Context, message string) (extraction.Fields, error)
}

// TransactionStore is the capability boundary for the persistence layer: one
// unconditional put and one full enumeration, nothing else.
type TransactionStore interface {
	PutTransaction(ctx context.Context, tx *domain.Transaction) error
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
}
