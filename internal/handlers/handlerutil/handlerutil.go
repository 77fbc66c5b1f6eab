// Package handlerutil holds the parsing and error mapping shared by the v1 handlers.
package handlerutil

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage"
)

// ParseID parses a path or body UUID, answering 400 on failure.
func ParseID(field, value string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return id, nil
}

// Money columns are NUMERIC(14, 2).
const amountScale = 2

var maxAmount = decimal.New(1, 12)

var (
	errAmountScale = errors.New("at most 2 decimal places are allowed")
	errAmountRange = errors.New("must be less than 1000000000000 in magnitude")
)

// ParseAmount parses a decimal string that fits the money columns, answering
// 400 on failure.
func ParseAmount(field, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	if !amount.Equal(amount.Truncate(amountScale)) {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid "+field, errAmountScale)
	}
	if amount.Abs().GreaterThanOrEqual(maxAmount) {
		return decimal.Decimal{}, huma.NewError(http.StatusBadRequest, "invalid "+field, errAmountRange)
	}
	return amount, nil
}

// ParseDate parses a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(field, value string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return date, nil
}

func FormatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatAmount renders money with two decimal places.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// ServiceError maps a service failure onto an HTTP error: missing records
// become 404, everything else 500.
func ServiceError(err error, resource, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return huma.Error404NotFound(resource + " not found")
	}
	return huma.NewError(http.StatusInternalServerError, "failed to "+operation, err)
}
