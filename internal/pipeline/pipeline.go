package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jpendyala/money-management-expense-tracker/internal/domain"
)

// SubmitInput carries one form submission through the pipeline.
type SubmitInput struct {
	Date    time.Time
	Message string

	// Optional overrides, used only when the extracted value is empty.
	StoreOverride  string
	AmountOverride string
}

// Pipeline runs one submission end to end: validate input, call the
// extraction service, reconcile fields against the overrides, validate the
// result and persist it. Strictly sequential; the write is never attempted
// before extraction and reconciliation have completed.
type Pipeline struct {
	extractor Extractor
	store     TransactionStore
	log       zerolog.Logger
}

// New creates a pipeline with explicit dependencies so tests can substitute a
// fake extractor and a fake store.
func New(extractor Extractor, store TransactionStore, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		extractor: extractor,
		store:     store,
		log:       log,
	}
}

// Run processes one submission and returns the persisted record. Every error
// is terminal for this submission; nothing is retried or rolled back.
func (p *Pipeline) Run(ctx context.Context, in SubmitInput) (*domain.Transaction, error) {
	// Input validation happens before any external call.
	if strings.TrimSpace(in.Message) == "" {
		return nil, ErrMissingMessage
	}
	if in.Date.IsZero() {
		return nil, ErrMissingDate
	}

	fields, err := p.extractor.Extract(ctx, in.Message)
	if err != nil {
		return nil, fmt.Errorf("pipeline.Run: extracting fields: %w", err)
	}

	p.log.Debug().
		Str("store", fields.Store).
		Str("amount", fields.Amount).
		Msg("Extraction completed")

	// Reconciliation: the extracted value wins; the override only fills a
	// hole. Applied per field, independently, with no normalization. The
	// extracted date is discarded in favor of the user-supplied one.
	store := fields.Store
	if store == "" {
		store = in.StoreOverride
	}
	amount := fields.Amount
	if amount == "" {
		amount = in.AmountOverride
	}

	if store == "" {
		return nil, ErrMissingStore
	}
	if amount == "" {
		return nil, ErrMissingAmount
	}

	tx := &domain.Transaction{
		ID:              uuid.NewString(),
		Date:            in.Date.Format("2006-01-02"),
		Amount:          amount,
		Store:           store,
		OriginalMessage: in.Message,
	}

	if err := p.store.PutTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("pipeline.Run: saving transaction: %w", err)
	}

	p.log.Info().
		Str("transaction_id", tx.ID).
		Str("date", tx.Date).
		Str("store", tx.Store).
		Msg("Transaction saved")

	return tx, nil
}
