package domain

// InvoiceStatus enumerates the lifecycle states of an invoice.
type InvoiceStatus string

const (
	StatusPending InvoiceStatus = "pending"
	StatusPaid    InvoiceStatus = "paid"
)

// Invoice represents a persisted invoice row. Amount is stored in minor
// currency units (cents); Date is an ISO calendar date (YYYY-MM-DD) fixed at
// creation time.
type Invoice struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	Date       string        `json:"date"`
}

// InvoiceListItem is an invoice row joined with its customer, as shown on the
// dashboard invoices page.
type InvoiceListItem struct {
	ID         string        `json:"id"`
	CustomerID string        `json:"customer_id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	ImageURL   string        `json:"image_url"`
	Amount     int64         `json:"amount"`
	Status     InvoiceStatus `json:"status"`
	Date       string        `json:"date"`
}

// Customer is a read-only reference fixture.
type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// User is a read-only reference fixture used for credential sign-in.
// Password holds a bcrypt hash, never plaintext.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Revenue is a read-only monthly revenue fixture.
type Revenue struct {
	Month   string `json:"month"`
	Revenue int64  `json:"revenue"`
}

// CardData aggregates the dashboard overview card numbers.
type CardData struct {
	InvoiceCount  int   `json:"invoice_count"`
	CustomerCount int   `json:"customer_count"`
	PaidTotal     int64 `json:"paid_total"`
	PendingTotal  int64 `json:"pending_total"`
}
