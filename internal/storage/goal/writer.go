package goal

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

func (w *Writer) Insert(ctx context.Context, g finance.Goal) (finance.Goal, error) {
	q := psql.Insert(
		im.Into(tableName, columns...),
		im.Values(sqlconfig.Values(
			g.ID, g.Title, nullableString(g.Description), g.TargetAmount, g.CurrentAmount,
			sqlconfig.NullableDateArg(g.TargetDate), g.CreatedAt,
		)...),
		im.Returning(sqlconfig.Columns(columns...)...),
	)
	inserted, err := bob.One(ctx, w.exec, q, scan.StructMapper[row]())
	if err != nil {
		return finance.Goal{}, err
	}
	return rowToGoal(inserted), nil
}

// Update writes every mutable field, current_amount included.
func (w *Writer) Update(ctx context.Context, g finance.Goal) (finance.Goal, error) {
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("title").ToArg(g.Title),
		um.SetCol("description").ToArg(nullableString(g.Description)),
		um.SetCol("target_amount").ToArg(g.TargetAmount),
		um.SetCol("current_amount").ToArg(g.CurrentAmount),
		um.SetCol("target_date").ToArg(sqlconfig.NullableDateArg(g.TargetDate)),
		um.Where(psql.Quote("id").EQ(psql.Arg(g.ID))),
		um.Returning(sqlconfig.Columns(columns...)...),
	)
	updated, err := bob.One(ctx, w.exec, q, scan.StructMapper[row]())
	if err != nil {
		return finance.Goal{}, sqlconfig.TranslateError(err)
	}
	return rowToGoal(updated), nil
}

func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return sqlconfig.CheckAffected(bob.Exec(ctx, w.exec, q))
}
