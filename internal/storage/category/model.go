package category

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/finance"
)

const tableName = "categories"

var columns = []string{"id", "name", "type", "limit_enabled", "monthly_limit", "color", "created_at"}

// row is the categories table as scanned by bob.
type row struct {
	ID           uuid.UUID           `db:"id"`
	Name         string              `db:"name"`
	Type         string              `db:"type"`
	LimitEnabled bool                `db:"limit_enabled"`
	MonthlyLimit decimal.NullDecimal `db:"monthly_limit"`
	Color        string              `db:"color"`
	CreatedAt    time.Time           `db:"created_at"`
}

type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (finance.Category, error)
	List(ctx context.Context) ([]finance.Category, error)
}

// ITable defines the category storage operations available inside a write transaction.
type ITable interface {
	IReader
	Insert(ctx context.Context, category finance.Category) (finance.Category, error)
	Update(ctx context.Context, category finance.Category) (finance.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

func rowToCategory(r row) finance.Category {
	return finance.Category{
		ID:           r.ID,
		Name:         r.Name,
		Type:         finance.TransactionType(r.Type),
		LimitEnabled: r.LimitEnabled,
		MonthlyLimit: r.MonthlyLimit,
		Color:        r.Color,
		CreatedAt:    r.CreatedAt,
	}
}
