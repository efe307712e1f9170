package domain

import (
	"context"
	"net/url"
)

// InvoiceRepository defines the store contract for invoice rows. Each write
// method issues a single parameterized statement; the store's own consistency
// model governs concurrent writes.
type InvoiceRepository interface {
	// Insert persists a new invoice. The id is generated by the store.
	Insert(ctx context.Context, customerID string, amountCents int64, status InvoiceStatus, date string) error

	// Update sets customer, amount and status on the row matching id.
	// The date column is not modified.
	Update(ctx context.Context, id, customerID string, amountCents int64, status InvoiceStatus) error

	// Delete removes the row matching id. Deleting an already-deleted id is
	// not an error; the statement simply affects zero rows.
	Delete(ctx context.Context, id string) error

	// FetchFiltered returns a page of invoices joined with their customers,
	// filtered by a free-text query.
	FetchFiltered(ctx context.Context, query string, page int) ([]InvoiceListItem, error)

	// FetchByID returns a single invoice, or ErrNotFound.
	FetchByID(ctx context.Context, id string) (*Invoice, error)

	// CountPages returns the number of list pages matching the query.
	CountPages(ctx context.Context, query string) (int, error)

	// CardData returns the dashboard overview aggregates.
	CardData(ctx context.Context) (*CardData, error)
}

// CustomerRepository reads the customer reference fixtures.
type CustomerRepository interface {
	List(ctx context.Context) ([]Customer, error)
}

// RevenueRepository reads the monthly revenue fixtures.
type RevenueRepository interface {
	List(ctx context.Context) ([]Revenue, error)
}

// UserRepository looks up users for credential sign-in.
type UserRepository interface {
	// FindByEmail returns the user with the given email, or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*User, error)
}

// CacheInvalidator marks the cached rendered output for a path as stale so
// the next read recomputes it. Mutating use cases call it exactly once per
// successful write.
type CacheInvalidator interface {
	Invalidate(ctx context.Context, path string) error
}

// PageCache stores rendered page payloads keyed by path.
type PageCache interface {
	CacheInvalidator

	// Get returns the cached payload for a path and whether it was present.
	Get(ctx context.Context, path string) ([]byte, bool, error)

	// Set stores the payload for a path.
	Set(ctx context.Context, path string, payload []byte) error
}

// CredentialSigner verifies a raw credential form submission. On success it
// returns a session token. Classified failures are *AuthError values; any
// other error is a signal the caller must not swallow.
type CredentialSigner interface {
	SignIn(ctx context.Context, strategy string, form url.Values) (string, error)
}
