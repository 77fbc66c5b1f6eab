package transaction

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

var _ ITable = (*Writer)(nil)

type Writer struct {
	Reader
}

func NewWriter(exec bob.Executor) *Writer {
	return &Writer{
		Reader: Reader{
			exec: exec,
		},
	}
}

// Insert stores the transaction as given; the caller assigns ID and CreatedAt.
func (w *Writer) Insert(ctx context.Context, t finance.Transaction) (finance.Transaction, error) {
	q := psql.Insert(
		im.Into(tableName, columns...),
		im.Values(sqlconfig.Values(
			t.ID, t.Description, t.Amount, string(t.Type), t.CategoryID, sqlconfig.DateArg(t.Date), t.CreatedAt,
		)...),
		im.Returning(sqlconfig.Columns(columns...)...),
	)
	inserted, err := bob.One(ctx, w.exec, q, scan.StructMapper[row]())
	if err != nil {
		return finance.Transaction{}, err
	}
	return rowToTransaction(inserted), nil
}

func (w *Writer) Update(ctx context.Context, t finance.Transaction) (finance.Transaction, error) {
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("description").ToArg(t.Description),
		um.SetCol("amount").ToArg(t.Amount),
		um.SetCol("type").ToArg(string(t.Type)),
		um.SetCol("category_id").ToArg(t.CategoryID),
		um.SetCol("date").ToArg(sqlconfig.DateArg(t.Date)),
		um.Where(psql.Quote("id").EQ(psql.Arg(t.ID))),
		um.Returning(sqlconfig.Columns(columns...)...),
	)
	updated, err := bob.One(ctx, w.exec, q, scan.StructMapper[row]())
	if err != nil {
		return finance.Transaction{}, sqlconfig.TranslateError(err)
	}
	return rowToTransaction(updated), nil
}

func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return sqlconfig.CheckAffected(bob.Exec(ctx, w.exec, q))
}
