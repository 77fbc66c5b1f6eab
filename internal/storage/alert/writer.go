package alert

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
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

func (w *Writer) Insert(ctx context.Context, a finance.Alert) (finance.Alert, error) {
	q := psql.Insert(
		im.Into(tableName, columns...),
		im.Values(sqlconfig.Values(
			a.ID, a.CategoryID, a.Message, a.AmountSpent, a.LimitAmount, a.Percentage,
			sqlconfig.DateArg(a.Date), a.IsRead, a.CreatedAt,
		)...),
		im.Returning(sqlconfig.Columns(columns...)...),
	)
	inserted, err := bob.One(ctx, w.exec, q, scan.StructMapper[row]())
	if err != nil {
		return finance.Alert{}, err
	}
	return rowToAlert(inserted), nil
}

// MarkRead sets is_read on the alert and returns it. Marking an already read
// alert is not an error.
func (w *Writer) MarkRead(ctx context.Context, id uuid.UUID) (finance.Alert, error) {
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("is_read").ToArg(true),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(sqlconfig.Columns(columns...)...),
	)
	updated, err := bob.One(ctx, w.exec, q, scan.StructMapper[row]())
	if err != nil {
		return finance.Alert{}, sqlconfig.TranslateError(err)
	}
	return rowToAlert(updated), nil
}
