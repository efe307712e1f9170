package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/user/invoicer/internal/domain"
)

// CustomerRepository implements domain.CustomerRepository for PostgreSQL.
type CustomerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new PostgreSQL customer repository.
func NewCustomerRepository(db *sql.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// List returns all customers ordered by name.
func (r *CustomerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `
		SELECT id, name, email, image_url
		FROM customers
		ORDER BY name ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.ImageURL); err != nil {
			return nil, fmt.Errorf("scan customer row: %w", err)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate customer rows: %w", err)
	}
	return customers, nil
}
