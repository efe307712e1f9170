package usecase

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/user/invoicer/internal/domain"
)

// CreateInvoiceUseCase handles the create-invoice form action.
type CreateInvoiceUseCase struct {
	repo   domain.InvoiceRepository
	cache  domain.CacheInvalidator
	logger *slog.Logger
	now    func() time.Time
}

// NewCreateInvoiceUseCase creates a new CreateInvoiceUseCase.
func NewCreateInvoiceUseCase(repo domain.InvoiceRepository, cache domain.CacheInvalidator, logger *slog.Logger) *CreateInvoiceUseCase {
	return &CreateInvoiceUseCase{
		repo:   repo,
		cache:  cache,
		logger: logger,
		now:    time.Now,
	}
}

// Create validates the raw form fields and, on success, persists a new
// invoice dated today, invalidates the invoices-list cache and asks the
// caller to redirect there. The previous action state is part of the calling
// convention and otherwise ignored.
func (uc *CreateInvoiceUseCase) Create(ctx context.Context, prev ActionResult, form url.Values) ActionResult {
	req := domain.CreateInvoiceRequest{
		CustomerID: form.Get("customerId"),
		Amount:     form.Get("amount"),
		Status:     form.Get("status"),
	}

	inv, fieldErrs := req.Validate()
	if fieldErrs != nil {
		return ActionResult{Errors: fieldErrs, Message: "Missing Fields. Failed to Create Invoice."}
	}

	date := uc.now().UTC().Format("2006-01-02")
	if err := uc.repo.Insert(ctx, inv.CustomerID, inv.AmountCents, inv.Status, date); err != nil {
		uc.logger.Error("failed to insert invoice", "error", err, "customer_id", inv.CustomerID)
		return ActionResult{Message: "Database Error: Failed to Create Invoice.", Failed: true}
	}

	if err := uc.cache.Invalidate(ctx, InvoicesPath); err != nil {
		// The row is committed; a stale cache entry expires on its own.
		uc.logger.Warn("failed to invalidate invoices cache", "error", err)
	}

	return ActionResult{RedirectTo: InvoicesPath}
}
