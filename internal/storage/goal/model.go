package goal

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/finance"
)

const tableName = "goals"

var columns = []string{"id", "title", "description", "target_amount", "current_amount", "target_date", "created_at"}

type row struct {
	ID            uuid.UUID       `db:"id"`
	Title         string          `db:"title"`
	Description   sql.NullString  `db:"description"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	TargetDate    sql.NullTime    `db:"target_date"`
	CreatedAt     time.Time       `db:"created_at"`
}

type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (finance.Goal, error)
	List(ctx context.Context) ([]finance.Goal, error)
}

type ITable interface {
	IReader
	Insert(ctx context.Context, goal finance.Goal) (finance.Goal, error)
	Update(ctx context.Context, goal finance.Goal) (finance.Goal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

func rowToGoal(r row) finance.Goal {
	g := finance.Goal{
		ID:            r.ID,
		Title:         r.Title,
		TargetAmount:  r.TargetAmount,
		CurrentAmount: r.CurrentAmount,
		CreatedAt:     r.CreatedAt,
	}
	if r.Description.Valid {
		description := r.Description.String
		g.Description = &description
	}
	if r.TargetDate.Valid {
		date := finance.DateOf(r.TargetDate.Time)
		g.TargetDate = &date
	}
	return g
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
