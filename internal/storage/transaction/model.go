package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/finance"
)

const tableName = "transactions"

var columns = []string{"id", "description", "amount", "type", "category_id", "date", "created_at"}

type row struct {
	ID          uuid.UUID       `db:"id"`
	Description string          `db:"description"`
	Amount      decimal.Decimal `db:"amount"`
	Type        string          `db:"type"`
	CategoryID  uuid.UUID       `db:"category_id"`
	Date        time.Time       `db:"date"`
	CreatedAt   time.Time       `db:"created_at"`
}

// IReader is the read side of the transactions table.
//
// ExpenseAmounts is the month-to-date query behind limit alerts: it returns the
// amounts of expenses in categoryID dated within window.
type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (finance.Transaction, error)
	List(ctx context.Context) ([]finance.Transaction, error)
	ExpenseAmounts(ctx context.Context, categoryID uuid.UUID, window finance.DateRange) ([]decimal.Decimal, error)
}

// ITable defines the transaction storage operations available inside a write transaction.
type ITable interface {
	IReader
	Insert(ctx context.Context, transaction finance.Transaction) (finance.Transaction, error)
	Update(ctx context.Context, transaction finance.Transaction) (finance.Transaction, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

func rowToTransaction(r row) finance.Transaction {
	return finance.Transaction{
		ID:          r.ID,
		Description: r.Description,
		Amount:      r.Amount,
		Type:        finance.TransactionType(r.Type),
		CategoryID:  r.CategoryID,
		Date:        finance.DateOf(r.Date),
		CreatedAt:   r.CreatedAt,
	}
}
