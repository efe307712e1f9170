package usecase

import (
	"context"
	"log/slog"

	"github.com/user/invoicer/internal/domain"
)

// DeleteInvoiceUseCase handles the inline delete-invoice action.
type DeleteInvoiceUseCase struct {
	repo   domain.InvoiceRepository
	cache  domain.CacheInvalidator
	logger *slog.Logger
}

// NewDeleteInvoiceUseCase creates a new DeleteInvoiceUseCase.
func NewDeleteInvoiceUseCase(repo domain.InvoiceRepository, cache domain.CacheInvalidator, logger *slog.Logger) *DeleteInvoiceUseCase {
	return &DeleteInvoiceUseCase{repo: repo, cache: cache, logger: logger}
}

// Delete removes the invoice matching id. It is invoked inline rather than as
// a full-page submission, so a successful outcome is a message, not a
// redirect. Deleting an id that no longer exists simply affects zero rows.
func (uc *DeleteInvoiceUseCase) Delete(ctx context.Context, id string) ActionResult {
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Error("failed to delete invoice", "error", err, "invoice_id", id)
		return ActionResult{Message: "Database Error: Failed to Delete Invoice.", Failed: true}
	}

	if err := uc.cache.Invalidate(ctx, InvoicesPath); err != nil {
		uc.logger.Warn("failed to invalidate invoices cache", "error", err)
	}

	return ActionResult{Message: "Deleted Invoice."}
}
