package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"github.com/user/invoicer/internal/domain"
	"github.com/user/invoicer/internal/domain/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateInvoiceUseCase_Create(t *testing.T) {
	logger := discardLogger()

	validForm := url.Values{
		"customerId": {"3958dc9e-712f-4377-85e9-fec4b6a6442a"},
		"amount":     {"250"},
		"status":     {"paid"},
	}

	t.Run("Successful Creation", func(t *testing.T) {
		repo := &mocks.MockInvoiceRepository{}
		cache := &mocks.MockPageCache{}
		uc := NewCreateInvoiceUseCase(repo, cache, logger)
		uc.now = func() time.Time { return time.Date(2026, 8, 25, 15, 4, 5, 0, time.UTC) }

		res := uc.Create(context.Background(), ActionResult{}, validForm)

		if res.RedirectTo != InvoicesPath {
			t.Errorf("RedirectTo = %q, want %q", res.RedirectTo, InvoicesPath)
		}
		if res.Errors != nil || res.Message != "" || res.Failed {
			t.Errorf("unexpected failure fields in result: %+v", res)
		}
		if len(repo.Inserted) != 1 {
			t.Fatalf("expected 1 insert, got %d", len(repo.Inserted))
		}
		ins := repo.Inserted[0]
		if ins.CustomerID != "3958dc9e-712f-4377-85e9-fec4b6a6442a" {
			t.Errorf("CustomerID = %q", ins.CustomerID)
		}
		if ins.AmountCents != 25000 {
			t.Errorf("AmountCents = %d, want 25000", ins.AmountCents)
		}
		if ins.Status != domain.StatusPaid {
			t.Errorf("Status = %q, want paid", ins.Status)
		}
		if ins.Date != "2026-08-25" {
			t.Errorf("Date = %q, want 2026-08-25", ins.Date)
		}
		if len(cache.Invalidations) != 1 || cache.Invalidations[0] != InvoicesPath {
			t.Errorf("expected exactly one invalidation of %q, got %v", InvoicesPath, cache.Invalidations)
		}
	})

	t.Run("Validation Failure Skips Store", func(t *testing.T) {
		repo := &mocks.MockInvoiceRepository{}
		cache := &mocks.MockPageCache{}
		uc := NewCreateInvoiceUseCase(repo, cache, logger)

		form := url.Values{"customerId": {""}, "amount": {"-5"}, "status": {"unknown"}}
		res := uc.Create(context.Background(), ActionResult{}, form)

		if res.Message != "Missing Fields. Failed to Create Invoice." {
			t.Errorf("Message = %q", res.Message)
		}
		for _, field := range []string{"customerId", "amount", "status"} {
			if len(res.Errors[field]) == 0 {
				t.Errorf("expected error for field %q", field)
			}
		}
		if res.RedirectTo != "" {
			t.Errorf("unexpected redirect %q", res.RedirectTo)
		}
		if len(repo.Inserted) != 0 {
			t.Errorf("store must not be touched on validation failure, got %d inserts", len(repo.Inserted))
		}
		if len(cache.Invalidations) != 0 {
			t.Errorf("cache must not be invalidated on validation failure, got %v", cache.Invalidations)
		}
	})

	t.Run("Database Error", func(t *testing.T) {
		repo := &mocks.MockInvoiceRepository{InsertErr: errors.New("connection refused")}
		cache := &mocks.MockPageCache{}
		uc := NewCreateInvoiceUseCase(repo, cache, logger)

		res := uc.Create(context.Background(), ActionResult{}, validForm)

		if res.Message != "Database Error: Failed to Create Invoice." {
			t.Errorf("Message = %q", res.Message)
		}
		if !res.Failed {
			t.Error("expected Failed to be set")
		}
		if res.Errors != nil {
			t.Errorf("expected no field errors, got %v", res.Errors)
		}
		if res.RedirectTo != "" {
			t.Errorf("unexpected redirect %q", res.RedirectTo)
		}
		if len(cache.Invalidations) != 0 {
			t.Errorf("cache must not be invalidated on store failure, got %v", cache.Invalidations)
		}
	})

	t.Run("Cache Failure Still Redirects", func(t *testing.T) {
		repo := &mocks.MockInvoiceRepository{}
		cache := &mocks.MockPageCache{InvalidateErr: errors.New("redis down")}
		uc := NewCreateInvoiceUseCase(repo, cache, logger)

		res := uc.Create(context.Background(), ActionResult{}, validForm)

		if res.RedirectTo != InvoicesPath {
			t.Errorf("RedirectTo = %q, want %q", res.RedirectTo, InvoicesPath)
		}
		if len(repo.Inserted) != 1 {
			t.Errorf("expected the insert to stand, got %d", len(repo.Inserted))
		}
	})
}
