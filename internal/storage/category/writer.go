package category

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

func (w *Writer) Insert(ctx context.Context, c finance.Category) (finance.Category, error) {
	q := psql.Insert(
		im.Into(tableName, columns...),
		im.Values(sqlconfig.Values(
			c.ID, c.Name, string(c.Type), c.LimitEnabled, c.MonthlyLimit, c.Color, c.CreatedAt,
		)...),
		im.Returning(sqlconfig.Columns(columns...)...),
	)
	inserted, err := bob.One(ctx, w.exec, q, scan.StructMapper[row]())
	if err != nil {
		return finance.Category{}, err
	}
	return rowToCategory(inserted), nil
}

// Update replaces every mutable field of the category identified by c.ID.
func (w *Writer) Update(ctx context.Context, c finance.Category) (finance.Category, error) {
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("name").ToArg(c.Name),
		um.SetCol("type").ToArg(string(c.Type)),
		um.SetCol("limit_enabled").ToArg(c.LimitEnabled),
		um.SetCol("monthly_limit").ToArg(c.MonthlyLimit),
		um.SetCol("color").ToArg(c.Color),
		um.Where(psql.Quote("id").EQ(psql.Arg(c.ID))),
		um.Returning(sqlconfig.Columns(columns...)...),
	)
	updated, err := bob.One(ctx, w.exec, q, scan.StructMapper[row]())
	if err != nil {
		return finance.Category{}, sqlconfig.TranslateError(err)
	}
	return rowToCategory(updated), nil
}

func (w *Writer) Delete(ctx context.Context, id uuid.UUID) error {
	q := psql.Delete(
		dm.From(tableName),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	return sqlconfig.CheckAffected(bob.Exec(ctx, w.exec, q))
}
