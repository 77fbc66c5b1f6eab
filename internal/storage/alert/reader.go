package alert

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

func (r *Reader) FindByID(ctx context.Context, id uuid.UUID) (finance.Alert, error) {
	q := psql.Select(
		sm.Columns(sqlconfig.Columns(columns...)...),
		sm.From(tableName),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	found, err := bob.One(ctx, r.exec, q, scan.StructMapper[row]())
	if err != nil {
		return finance.Alert{}, sqlconfig.TranslateError(err)
	}
	return rowToAlert(found), nil
}

// List returns at most limit alerts, newest first.
func (r *Reader) List(ctx context.Context, limit int) ([]finance.Alert, error) {
	q := psql.Select(
		sm.Columns(sqlconfig.Columns(columns...)...),
		sm.From(tableName),
		sm.OrderBy(psql.Quote("created_at")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
		sm.Limit(limit),
	)
	rows, err := bob.All(ctx, r.exec, q, scan.StructMapper[row]())
	if err != nil {
		return nil, err
	}

	result := make([]finance.Alert, len(rows))
	for i, found := range rows {
		result[i] = rowToAlert(found)
	}
	return result, nil
}
