package alert

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/finance"
)

const tableName = "alerts"

var columns = []string{
	"id", "category_id", "message", "amount_spent", "limit_amount", "percentage", "date", "is_read", "created_at",
}

type row struct {
	ID          uuid.UUID       `db:"id"`
	CategoryID  uuid.UUID       `db:"category_id"`
	Message     string          `db:"message"`
	AmountSpent decimal.Decimal `db:"amount_spent"`
	LimitAmount decimal.Decimal `db:"limit_amount"`
	Percentage  decimal.Decimal `db:"percentage"`
	Date        time.Time       `db:"date"`
	IsRead      bool            `db:"is_read"`
	CreatedAt   time.Time       `db:"created_at"`
}

type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (finance.Alert, error)
	List(ctx context.Context, limit int) ([]finance.Alert, error)
}

// ITable defines the alert storage operations available inside a write transaction.
// Alerts are never edited beyond the read flag and never deleted.
type ITable interface {
	IReader
	Insert(ctx context.Context, alert finance.Alert) (finance.Alert, error)
	MarkRead(ctx context.Context, id uuid.UUID) (finance.Alert, error)
}

func rowToAlert(r row) finance.Alert {
	return finance.Alert{
		ID:          r.ID,
		CategoryID:  r.CategoryID,
		Message:     r.Message,
		AmountSpent: r.AmountSpent,
		LimitAmount: r.LimitAmount,
		Percentage:  r.Percentage,
		Date:        finance.DateOf(r.Date),
		IsRead:      r.IsRead,
		CreatedAt:   r.CreatedAt,
	}
}
