package usecase

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/user/invoicer/internal/domain"
)

// UpdateInvoiceUseCase handles the update-invoice form action.
type UpdateInvoiceUseCase struct {
	repo   domain.InvoiceRepository
	cache  domain.CacheInvalidator
	logger *slog.Logger
}

// NewUpdateInvoiceUseCase creates a new UpdateInvoiceUseCase.
func NewUpdateInvoiceUseCase(repo domain.InvoiceRepository, cache domain.CacheInvalidator, logger *slog.Logger) *UpdateInvoiceUseCase {
	return &UpdateInvoiceUseCase{repo: repo, cache: cache, logger: logger}
}

// Update validates the raw form fields and, on success, rewrites customer,
// amount and status on the row matching id. The invoice date is never
// modified.
func (uc *UpdateInvoiceUseCase) Update(ctx context.Context, id string, prev ActionResult, form url.Values) ActionResult {
	req := domain.UpdateInvoiceRequest{
		CustomerID: form.Get("customerId"),
		Amount:     form.Get("amount"),
		Status:     form.Get("status"),
	}

	inv, fieldErrs := req.Validate()
	if fieldErrs != nil {
		return ActionResult{Errors: fieldErrs, Message: "Missing Fields. Failed to Update Invoice."}
	}

	if err := uc.repo.Update(ctx, id, inv.CustomerID, inv.AmountCents, inv.Status); err != nil {
		uc.logger.Error("failed to update invoice", "error", err, "invoice_id", id)
		return ActionResult{Message: "Database Error: Failed to Update Invoice.", Failed: true}
	}

	if err := uc.cache.Invalidate(ctx, InvoicesPath); err != nil {
		uc.logger.Warn("failed to invalidate invoices cache", "error", err)
	}

	return ActionResult{RedirectTo: InvoicesPath}
}
