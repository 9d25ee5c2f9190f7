package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/jpendyala/money-management-expense-tracker/internal/api/middleware"
	"github.com/jpendyala/money-management-expense-tracker/internal/domain"
	"github.com/jpendyala/money-management-expense-tracker/internal/extraction"
	"github.com/jpendyala/money-management-expense-tracker/internal/pipeline"
)

// TransactionsHandler handles transaction submission and listing.
type TransactionsHandler struct {
	pipe  *pipeline.Pipeline
	store pipeline.TransactionStore
	log   zerolog.Logger
}

// NewTransactionsHandler creates a new transactions handler.
func NewTransactionsHandler(pipe *pipeline.Pipeline, store pipeline.TransactionStore, log zerolog.Logger) *TransactionsHandler {
	return &TransactionsHandler{
		pipe:  pipe,
		store: store,
		log:   log,
	}
}

type submitRequest struct {
	Date    string `json:"date"`
	Message string `json:"message"`
	Store   string `json:"store"`
	Amount  string `json:"amount"`
}

// Submit handles POST /api/transactions: one form submission, one pipeline run.
func (h *TransactionsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		middleware.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var date time.Time
	if req.Date != "" {
		var err error
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			middleware.WriteError(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
			return
		}
	}

	tx, err := h.pipe.Run(ctx, pipeline.SubmitInput{
		Date:           date,
		Message:        req.Message,
		StoreOverride:  req.Store,
		AmountOverride: req.Amount,
	})
	if err != nil {
		h.writePipelineError(w, err)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, tx)
}

// writePipelineError maps pipeline failures to HTTP responses. Validation
// sentinels become 400s, an undecodable model reply becomes a 422, and
// anything else surfaces verbatim as a 500.
func (h *TransactionsHandler) writePipelineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pipeline.ErrMissingMessage),
		errors.Is(err, pipeline.ErrMissingDate),
		errors.Is(err, pipeline.ErrMissingStore),
		errors.Is(err, pipeline.ErrMissingAmount):
		middleware.WriteError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, extraction.ErrMalformedReply):
		h.log.Warn().Err(err).Msg("Extraction reply did not parse")
		middleware.WriteError(w, http.StatusUnprocessableEntity,
			"Failed to parse the extraction response. Please try again with a different input.")
	default:
		h.log.Error().Err(err).Msg("Transaction submission failed")
		middleware.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}

// List handles GET /api/transactions: a full, unfiltered enumeration.
func (h *TransactionsHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	transactions, err := h.store.ListTransactions(ctx)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list transactions")
		middleware.WriteError(w, http.StatusInternalServerError, "Failed to list transactions")
		return
	}

	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"transactions": transactions,
		"count":        len(transactions),
	})
}
