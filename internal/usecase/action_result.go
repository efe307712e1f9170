package usecase

import "github.com/user/invoicer/internal/domain"

// InvoicesPath is the dashboard page whose cached output every invoice
// mutation invalidates, and the target of post-mutation redirects.
const InvoicesPath = "/dashboard/invoices"

// ActionResult is the explicit outcome of a form action, replacing
// throw-to-redirect control flow. A non-empty RedirectTo instructs the caller
// to navigate instead of rendering; Errors carries field-level validation
// failures; Failed marks a caught persistence error.
type ActionResult struct {
	Errors     domain.FieldErrors `json:"errors,omitempty"`
	Message    string             `json:"message,omitempty"`
	RedirectTo string             `json:"-"`
	Failed     bool               `json:"-"`
}
