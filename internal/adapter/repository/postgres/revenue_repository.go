package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/user/invoicer/internal/domain"
)

// RevenueRepository implements domain.RevenueRepository for PostgreSQL.
type RevenueRepository struct {
	db *sql.DB
}

// NewRevenueRepository creates a new PostgreSQL revenue repository.
func NewRevenueRepository(db *sql.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// List returns the monthly revenue fixtures.
func (r *RevenueRepository) List(ctx context.Context) ([]domain.Revenue, error) {
	query := `SELECT month, revenue FROM revenue`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list revenue: %w", err)
	}
	defer rows.Close()

	var revenue []domain.Revenue
	for rows.Next() {
		var rev domain.Revenue
		if err := rows.Scan(&rev.Month, &rev.Revenue); err != nil {
			return nil, fmt.Errorf("scan revenue row: %w", err)
		}
		revenue = append(revenue, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate revenue rows: %w", err)
	}
	return revenue, nil
}
