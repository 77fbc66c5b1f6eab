// Package sqlconfig holds the SQL plumbing shared by the table packages.
package sqlconfig

import (
	"database/sql"
	"errors"
	"time"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
)

// ErrNotFound is returned when a lookup, update or delete matches no row.
var ErrNotFound = errors.New("record not found")

const dateLayout = "2006-01-02"

// TranslateError maps driver level "no rows" errors onto ErrNotFound.
func TranslateError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// CheckAffected returns ErrNotFound when result reports no affected rows.
func CheckAffected(result sql.Result, err error) error {
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Columns quotes each column name for use in select and returning clauses.
func Columns(names ...string) []any {
	columns := make([]any, len(names))
	for i, name := range names {
		columns[i] = psql.Quote(name)
	}
	return columns
}

// Values binds each value as its own placeholder.
func Values(values ...any) []bob.Expression {
	exprs := make([]bob.Expression, len(values))
	for i, v := range values {
		exprs[i] = psql.Arg(v)
	}
	return exprs
}

// DateArg renders a calendar date the way Postgres DATE columns expect it.
func DateArg(t time.Time) string {
	return t.Format(dateLayout)
}

// NullableDateArg is DateArg for optional dates.
func NullableDateArg(t *time.Time) any {
	if t == nil {
		return nil
	}
	return DateArg(*t)
}
