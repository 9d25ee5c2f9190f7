package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jpendyala/money-management-expense-tracker/internal/api/handlers"
	"github.com/jpendyala/money-management-expense-tracker/internal/domain"
	"github.com/jpendyala/money-management-expense-tracker/internal/extraction"
	"github.com/jpendyala/money-management-expense-tracker/internal/logger"
	"github.com/jpendyala/money-management-expense-tracker/internal/pipeline"
)

type fakeExtractor struct {
	fields extraction.Fields
	err    error
}

func (f *fakeExtractor) Extract(ctx context.Context, message string) (extraction.Fields, error) {
	return f.fields, f.err
}

type fakeStore struct {
	txs     []domain.Transaction
	listErr error
}

func (f *fakeStore) PutTransaction(ctx context.Context, tx *domain.Transaction) error {
	f.txs = append(f.txs, *tx)
	return nil
}

func (f *fakeStore) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.txs, nil
}

func newHandler(extractor *fakeExtractor, store *fakeStore) *handlers.TransactionsHandler {
	log := logger.New("disabled")
	pipe := pipeline.New(extractor, store, log)
	return handlers.NewTransactionsHandler(pipe, store, log)
}

func TestSubmit_Success(t *testing.T) {
	extractor := &fakeExtractor{
		fields: extraction.Fields{Date: "2024-01-01", Amount: "45", Store: "Walmart"},
	}
	store := &fakeStore{}
	h := newHandler(extractor, store)

	body := `{"date":"2024-01-02","message":"Spent $45 at Walmart"}`
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d; body: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var tx domain.Transaction
	if err := json.NewDecoder(rec.Body).Decode(&tx); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if tx.Date != "2024-01-02" {
		t.Errorf("Date = %q, want %q", tx.Date, "2024-01-02")
	}
	if tx.Store != "Walmart" || tx.Amount != "45" {
		t.Errorf("Store/Amount = %q/%q, want Walmart/45", tx.Store, tx.Amount)
	}
	if tx.ID == "" {
		t.Error("Expected a generated id in the response")
	}
	if len(store.txs) != 1 {
		t.Errorf("Store received %d puts, want 1", len(store.txs))
	}
}

func TestSubmit_MissingMessage(t *testing.T) {
	store := &fakeStore{}
	h := newHandler(&fakeExtractor{}, store)

	body := `{"date":"2024-01-02","message":"   "}`
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	if len(store.txs) != 0 {
		t.Errorf("Store received %d puts, want 0", len(store.txs))
	}
}

func TestSubmit_InvalidDate(t *testing.T) {
	h := newHandler(&fakeExtractor{}, &fakeStore{})

	body := `{"date":"01/02/2024","message":"Spent $45 at Walmart"}`
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestSubmit_MalformedReply(t *testing.T) {
	extractor := &fakeExtractor{err: extraction.ErrMalformedReply}
	store := &fakeStore{}
	h := newHandler(extractor, store)

	body := `{"date":"2024-01-02","message":"Spent $45 at Walmart"}`
	req := httptest.NewRequest(http.MethodPost, "/api/transactions", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Submit(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if len(store.txs) != 0 {
		t.Errorf("Store received %d puts, want 0", len(store.txs))
	}
}

func TestList(t *testing.T) {
	store := &fakeStore{
		txs: []domain.Transaction{
			{ID: "a", Date: "2024-01-01", Amount: "45", Store: "Walmart"},
			{ID: "b", Date: "2024-01-02", Amount: "12.50", Store: "Costco"},
		},
	}
	h := newHandler(&fakeExtractor{}, store)

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Transactions []domain.Transaction `json:"transactions"`
		Count        int                  `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 2 || len(resp.Transactions) != 2 {
		t.Errorf("count = %d, len = %d, want 2/2", resp.Count, len(resp.Transactions))
	}
}

func TestList_Empty(t *testing.T) {
	h := newHandler(&fakeExtractor{}, &fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/transactions", nil)
	rec := httptest.NewRecorder()

	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp struct {
		Transactions []domain.Transaction `json:"transactions"`
		Count        int                  `json:"count"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.Count != 0 {
		t.Errorf("count = %d, want 0", resp.Count)
	}
	if resp.Transactions == nil {
		t.Error("Expected an empty array, got null")
	}
}
