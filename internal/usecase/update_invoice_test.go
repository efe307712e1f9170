package usecase

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"github.com/user/invoicer/internal/domain"
	"github.com/user/invoicer/internal/domain/mocks"
)

func TestUpdateInvoiceUseCase_Update(t *testing.T) {
	logger := discardLogger()
	const invoiceID = "7c3f9e2a-1b4d-4e8f-9a6c-0d5b2e7f1a3c"

	t.Run("Successful Update", func(t *testing.T) {
		repo := &mocks.MockInvoiceRepository{}
		cache := &mocks.MockPageCache{}
		uc := NewUpdateInvoiceUseCase(repo, cache, logger)

		form := url.Values{"customerId": {"C2"}, "amount": {"10"}, "status": {"pending"}}
		res := uc.Update(context.Background(), invoiceID, ActionResult{}, form)

		if res.RedirectTo != InvoicesPath {
			t.Errorf("RedirectTo = %q, want %q", res.RedirectTo, InvoicesPath)
		}
		if len(repo.Updated) != 1 {
			t.Fatalf("expected 1 update, got %d", len(repo.Updated))
		}
		up := repo.Updated[0]
		if up.ID != invoiceID {
			t.Errorf("ID = %q, want %q", up.ID, invoiceID)
		}
		if up.CustomerID != "C2" || up.AmountCents != 1000 || up.Status != domain.StatusPending {
			t.Errorf("unexpected update values: %+v", up)
		}
		if len(cache.Invalidations) != 1 || cache.Invalidations[0] != InvoicesPath {
			t.Errorf("expected exactly one invalidation of %q, got %v", InvoicesPath, cache.Invalidations)
		}
	})

	t.Run("Validation Failure Skips Store", func(t *testing.T) {
		repo := &mocks.MockInvoiceRepository{}
		cache := &mocks.MockPageCache{}
		uc := NewUpdateInvoiceUseCase(repo, cache, logger)

		form := url.Values{"customerId": {"C2"}, "amount": {"0"}, "status": {"pending"}}
		res := uc.Update(context.Background(), invoiceID, ActionResult{}, form)

		if res.Message != "Missing Fields. Failed to Update Invoice." {
			t.Errorf("Message = %q", res.Message)
		}
		if len(res.Errors["amount"]) == 0 {
			t.Error("expected an error for amount")
		}
		if len(repo.Updated) != 0 {
			t.Errorf("store must not be touched on validation failure, got %d updates", len(repo.Updated))
		}
		if len(cache.Invalidations) != 0 {
			t.Errorf("cache must not be invalidated, got %v", cache.Invalidations)
		}
	})

	t.Run("Database Error", func(t *testing.T) {
		repo := &mocks.MockInvoiceRepository{UpdateErr: errors.New("deadlock detected")}
		cache := &mocks.MockPageCache{}
		uc := NewUpdateInvoiceUseCase(repo, cache, logger)

		form := url.Values{"customerId": {"C2"}, "amount": {"10"}, "status": {"pending"}}
		res := uc.Update(context.Background(), invoiceID, ActionResult{}, form)

		if res.Message != "Database Error: Failed to Update Invoice." {
			t.Errorf("Message = %q", res.Message)
		}
		if !res.Failed {
			t.Error("expected Failed to be set")
		}
		if len(cache.Invalidations) != 0 {
			t.Errorf("cache must not be invalidated on store failure, got %v", cache.Invalidations)
		}
	})
}
