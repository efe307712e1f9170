package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/user/invoicer/internal/domain"
)

const invoicesPerPage = 6

// InvoiceRepository implements domain.InvoiceRepository for PostgreSQL.
type InvoiceRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewInvoiceRepository creates a new PostgreSQL invoice repository.
func NewInvoiceRepository(db *sql.DB, logger *slog.Logger) *InvoiceRepository {
	return &InvoiceRepository{db: db, logger: logger}
}

// Insert persists a new invoice row. The id is generated by the database
// default.
func (r *InvoiceRepository) Insert(ctx context.Context, customerID string, amountCents int64, status domain.InvoiceStatus, date string) error {
	query := `
		INSERT INTO invoices (customer_id, amount, status, date)
		VALUES ($1, $2, $3, $4)
	`
	if _, err := r.db.ExecContext(ctx, query, customerID, amountCents, status, date); err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// Update rewrites customer, amount and status on the row matching id. The
// date column is left untouched.
func (r *InvoiceRepository) Update(ctx context.Context, id, customerID string, amountCents int64, status domain.InvoiceStatus) error {
	query := `
		UPDATE invoices
		SET customer_id = $1, amount = $2, status = $3
		WHERE id = $4
	`
	if _, err := r.db.ExecContext(ctx, query, customerID, amountCents, status, id); err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete removes the row matching id. A statement affecting zero rows is not
// an error.
func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM invoices WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// FetchFiltered returns one page of invoices joined with their customers,
// matching a free-text query against name, email, amount, date and status.
func (r *InvoiceRepository) FetchFiltered(ctx context.Context, query string, page int) ([]domain.InvoiceListItem, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * invoicesPerPage

	stmt := `
		SELECT invoices.id, invoices.customer_id, customers.name, customers.email, customers.image_url,
		       invoices.amount, invoices.status, to_char(invoices.date, 'YYYY-MM-DD')
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE customers.name ILIKE $1
		   OR customers.email ILIKE $1
		   OR invoices.amount::text ILIKE $1
		   OR invoices.date::text ILIKE $1
		   OR invoices.status ILIKE $1
		ORDER BY invoices.date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, stmt, "%"+query+"%", invoicesPerPage, offset)
	if err != nil {
		return nil, fmt.Errorf("fetch filtered invoices: %w", err)
	}
	defer rows.Close()

	var items []domain.InvoiceListItem
	for rows.Next() {
		var item domain.InvoiceListItem
		if err := rows.Scan(&item.ID, &item.CustomerID, &item.Name, &item.Email, &item.ImageURL, &item.Amount, &item.Status, &item.Date); err != nil {
			return nil, fmt.Errorf("scan invoice row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate invoice rows: %w", err)
	}
	return items, nil
}

// FetchByID returns a single invoice, or domain.ErrNotFound.
func (r *InvoiceRepository) FetchByID(ctx context.Context, id string) (*domain.Invoice, error) {
	query := `
		SELECT id, customer_id, amount, status, to_char(date, 'YYYY-MM-DD')
		FROM invoices
		WHERE id = $1
	`

	var inv domain.Invoice
	err := r.db.QueryRowContext(ctx, query, id).Scan(&inv.ID, &inv.CustomerID, &inv.Amount, &inv.Status, &inv.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("fetch invoice by id: %w", err)
	}
	return &inv, nil
}

// CountPages returns the number of list pages matching the query.
func (r *InvoiceRepository) CountPages(ctx context.Context, query string) (int, error) {
	stmt := `
		SELECT COUNT(*)
		FROM invoices
		JOIN customers ON invoices.customer_id = customers.id
		WHERE customers.name ILIKE $1
		   OR customers.email ILIKE $1
		   OR invoices.amount::text ILIKE $1
		   OR invoices.date::text ILIKE $1
		   OR invoices.status ILIKE $1
	`

	var count int
	if err := r.db.QueryRowContext(ctx, stmt, "%"+query+"%").Scan(&count); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return (count + invoicesPerPage - 1) / invoicesPerPage, nil
}

// CardData returns the dashboard overview aggregates in a single round trip.
func (r *InvoiceRepository) CardData(ctx context.Context) (*domain.CardData, error) {
	query := `
		SELECT (SELECT COUNT(*) FROM invoices),
		       (SELECT COUNT(*) FROM customers),
		       COALESCE(SUM(CASE WHEN status = 'paid' THEN amount ELSE 0 END), 0),
		       COALESCE(SUM(CASE WHEN status = 'pending' THEN amount ELSE 0 END), 0)
		FROM invoices
	`

	var card domain.CardData
	err := r.db.QueryRowContext(ctx, query).Scan(&card.InvoiceCount, &card.CustomerCount, &card.PaidTotal, &card.PendingTotal)
	if err != nil {
		return nil, fmt.Errorf("fetch card data: %w", err)
	}
	return &card, nil
}
