package category

import (
	"context"

	"github.com/gofrs/uuid/v5"
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

// FindByID returns sqlconfig.ErrNotFound when the category does not exist.
func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (finance.Category, error) {
	q := psql.Select(
		sm.Columns(sqlconfig.Columns(columns...)...),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	found, err := bob.One(ctx, r.exec, q, scan.StructMapper[row]())
	if err != nil {
		return finance.Category{}, sqlconfig.TranslateError(err)
	}
	return rowToCategory(found), nil
}

func (r *Reader) List(ctx context.Context) ([]finance.Category, error) {
	q := psql.Select(
		sm.Columns(sqlconfig.Columns(columns...)...),
		sm.From(tableName),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[row]())
	if err != nil {
		return nil, err
	}

	result := make([]finance.Category, len(rows))
	for i, found := range rows {
		result[i] = rowToCategory(found)
	}
	return result, nil
}
