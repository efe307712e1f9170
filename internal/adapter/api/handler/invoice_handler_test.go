package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/user/invoicer/internal/adapter/metrics"
	"github.com/user/invoicer/internal/domain"
	"github.com/user/invoicer/internal/domain/mocks"
	"github.com/user/invoicer/internal/usecase"
)

// Registered once for the package; promauto panics on duplicate registration.
var testMetrics = metrics.NewActionMetrics()

func newTestHandler(repo *mocks.MockInvoiceRepository, cache *mocks.MockPageCache) *InvoiceHandler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewInvoiceHandler(
		usecase.NewCreateInvoiceUseCase(repo, cache, logger),
		usecase.NewUpdateInvoiceUseCase(repo, cache, logger),
		usecase.NewDeleteInvoiceUseCase(repo, cache, logger),
		repo,
		&mocks.MockCustomerRepository{},
		&mocks.MockRevenueRepository{},
		cache,
		logger,
		testMetrics,
	)
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestInvoiceHandler_Create(t *testing.T) {
	validForm := url.Values{
		"customerId": {"3958dc9e-712f-4377-85e9-fec4b6a6442a"},
		"amount":     {"250"},
		"status":     {"paid"},
	}

	t.Run("Redirects On Success", func(t *testing.T) {
		repo := &mocks.MockInvoiceRepository{}
		cache := &mocks.MockPageCache{}
		h := newTestHandler(repo, cache)

		rr := httptest.NewRecorder()
		h.Create(rr, postForm("/dashboard/invoices", validForm))

		if rr.Code != http.StatusSeeOther {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
		}
		if loc := rr.Header().Get("Location"); loc != "/dashboard/invoices" {
			t.Errorf("Location = %q", loc)
		}
		if len(repo.Inserted) != 1 {
			t.Errorf("expected 1 insert, got %d", len(repo.Inserted))
		}
		if len(cache.Invalidations) != 1 {
			t.Errorf("expected 1 cache invalidation, got %d", len(cache.Invalidations))
		}
	})

	t.Run("Field Errors On Invalid Form", func(t *testing.T) {
		repo := &mocks.MockInvoiceRepository{}
		h := newTestHandler(repo, &mocks.MockPageCache{})

		form := url.Values{"customerId": {""}, "amount": {"0"}, "status": {"nope"}}
		rr := httptest.NewRecorder()
		h.Create(rr, postForm("/dashboard/invoices", form))

		if rr.Code != http.StatusUnprocessableEntity {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusUnprocessableEntity)
		}

		var res usecase.ActionResult
		if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
			t.Fatalf("response is not JSON: %v", err)
		}
		if res.Message != "Missing Fields. Failed to Create Invoice." {
			t.Errorf("Message = %q", res.Message)
		}
		if len(res.Errors["customerId"]) == 0 || len(res.Errors["amount"]) == 0 || len(res.Errors["status"]) == 0 {
			t.Errorf("expected errors for all three fields, got %v", res.Errors)
		}
		if len(repo.Inserted) != 0 {
			t.Errorf("store must not be touched, got %d inserts", len(repo.Inserted))
		}
	})

	t.Run("Database Error", func(t *testing.T) {
		repo := &mocks.MockInvoiceRepository{InsertErr: errors.New("boom")}
		h := newTestHandler(repo, &mocks.MockPageCache{})

		rr := httptest.NewRecorder()
		h.Create(rr, postForm("/dashboard/invoices", validForm))

		if rr.Code != http.StatusInternalServerError {
			t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
		}
		if !strings.Contains(rr.Body.String(), "Database Error: Failed to Create Invoice.") {
			t.Errorf("unexpected body: %s", rr.Body.String())
		}
	})
}

func TestInvoiceHandler_Update(t *testing.T) {
	repo := &mocks.MockInvoiceRepository{}
	cache := &mocks.MockPageCache{}
	h := newTestHandler(repo, cache)

	form := url.Values{"customerId": {"C2"}, "amount": {"10"}, "status": {"pending"}}
	req := postForm("/dashboard/invoices/abc-123", form)
	req.SetPathValue("id", "abc-123")

	rr := httptest.NewRecorder()
	h.Update(rr, req)

	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if len(repo.Updated) != 1 || repo.Updated[0].ID != "abc-123" || repo.Updated[0].AmountCents != 1000 {
		t.Errorf("unexpected updates: %+v", repo.Updated)
	}
}

func TestInvoiceHandler_Delete(t *testing.T) {
	repo := &mocks.MockInvoiceRepository{}
	cache := &mocks.MockPageCache{}
	h := newTestHandler(repo, cache)

	req := httptest.NewRequest(http.MethodPost, "/dashboard/invoices/abc-123/delete", nil)
	req.SetPathValue("id", "abc-123")

	rr := httptest.NewRecorder()
	h.Delete(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if !strings.Contains(rr.Body.String(), "Deleted Invoice.") {
		t.Errorf("unexpected body: %s", rr.Body.String())
	}
	if len(repo.Deleted) != 1 || repo.Deleted[0] != "abc-123" {
		t.Errorf("Deleted = %v", repo.Deleted)
	}
}

func TestInvoiceHandler_List(t *testing.T) {
	items := []domain.InvoiceListItem{
		{ID: "i1", CustomerID: "c1", Name: "Delba de Oliveira", Amount: 25000, Status: domain.StatusPaid, Date: "2026-08-25"},
	}

	t.Run("Cache Miss Then Hit", func(t *testing.T) {
		repo := &mocks.MockInvoiceRepository{ListResult: items, Pages: 1}
		cache := &mocks.MockPageCache{}
		h := newTestHandler(repo, cache)

		rr := httptest.NewRecorder()
		h.List(rr, httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil))

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d", rr.Code)
		}
		if got := rr.Header().Get("X-Cache"); got != "miss" {
			t.Errorf("X-Cache = %q, want miss", got)
		}
		if _, ok := cache.Entries[usecase.InvoicesPath]; !ok {
			t.Fatal("expected the rendered page to be cached")
		}

		rr = httptest.NewRecorder()
		h.List(rr, httptest.NewRequest(http.MethodGet, "/dashboard/invoices", nil))
		if got := rr.Header().Get("X-Cache"); got != "hit" {
			t.Errorf("X-Cache = %q, want hit", got)
		}

		var page invoiceListPage
		if err := json.Unmarshal(rr.Body.Bytes(), &page); err != nil {
			t.Fatalf("cached payload is not JSON: %v", err)
		}
		if len(page.Invoices) != 1 || page.Invoices[0].Amount != 25000 {
			t.Errorf("unexpected cached page: %+v", page)
		}
	})

	t.Run("Filtered Query Bypasses Cache", func(t *testing.T) {
		repo := &mocks.MockInvoiceRepository{ListResult: items, Pages: 1}
		cache := &mocks.MockPageCache{}
		h := newTestHandler(repo, cache)

		rr := httptest.NewRecorder()
		h.List(rr, httptest.NewRequest(http.MethodGet, "/dashboard/invoices?query=delba", nil))

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d", rr.Code)
		}
		if len(cache.Entries) != 0 {
			t.Errorf("filtered pages must not be cached, got %v", cache.Entries)
		}
	})
}

func TestInvoiceHandler_GetByID(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		repo := &mocks.MockInvoiceRepository{ByIDResult: &domain.Invoice{ID: "i1", Amount: 1000, Status: domain.StatusPending, Date: "2023-06-27"}}
		h := newTestHandler(repo, &mocks.MockPageCache{})

		req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices/i1", nil)
		req.SetPathValue("id", "i1")
		rr := httptest.NewRecorder()
		h.GetByID(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("status = %d", rr.Code)
		}
	})

	t.Run("Not Found", func(t *testing.T) {
		repo := &mocks.MockInvoiceRepository{}
		h := newTestHandler(repo, &mocks.MockPageCache{})

		req := httptest.NewRequest(http.MethodGet, "/dashboard/invoices/missing", nil)
		req.SetPathValue("id", "missing")
		rr := httptest.NewRecorder()
		h.GetByID(rr, req)

		if rr.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rr.Code)
		}
	})
}
