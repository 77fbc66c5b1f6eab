package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

var _ IReader = (*Reader)(nil)

type Reader struct {
	exec bob.Executor
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{exec: exec}
}

// FindByID retrieves a transaction by primary key.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (finance.Transaction, error) {
	q := psql.Select(
		sm.Columns(sqlconfig.Columns(columns...)...),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	found, err := bob.One(ctx, r.exec, q, scan.StructMapper[row]())
	if err != nil {
		return finance.Transaction{}, sqlconfig.TranslateError(err)
	}
	return rowToTransaction(found), nil
}

// List returns every transaction, newest date first.
func (r *Reader) List(ctx context.Context) ([]finance.Transaction, error) {
	q := psql.Select(
		sm.Columns(sqlconfig.Columns(columns...)...),
		sm.From(tableName),
		sm.OrderBy(psql.Quote("date")).Desc(),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[row]())
	if err != nil {
		return nil, err
	}

	result := make([]finance.Transaction, len(rows))
	for i, found := range rows {
		result[i] = rowToTransaction(found)
	}
	return result, nil
}

func (r *Reader) ExpenseAmounts(ctx context.Context, categoryID uuid.UUID, window finance.DateRange) ([]decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns(psql.Quote("amount")),
		sm.From(tableName),
		sm.Where(psql.Quote("category_id").EQ(psql.Arg(categoryID))),
		sm.Where(psql.Quote("type").EQ(psql.Arg(string(finance.TransactionTypeExpense)))),
		sm.Where(psql.Quote("date").GTE(psql.Arg(sqlconfig.DateArg(window.Start)))),
		sm.Where(psql.Quote("date").LT(psql.Arg(sqlconfig.DateArg(window.End)))),
	)
	return bob.All(ctx, r.exec, q, scan.SingleColumnMapper[decimal.Decimal])
}
