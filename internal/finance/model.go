package finance

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// DefaultCategoryColor is used when a category is created without a color.
const DefaultCategoryColor = "#3B82F6"

// TransactionType classifies both categories and transactions.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is one of the known transaction types.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Category is a named bucket for transactions, optionally capped by a monthly limit.
type Category struct {
	ID           uuid.UUID
	Name         string
	Type         TransactionType
	LimitEnabled bool
	MonthlyLimit decimal.NullDecimal
	Color        string
	CreatedAt    time.Time
}

// LimitUsable reports whether the monthly limit can be evaluated.
// A disabled, absent, zero or negative limit is treated the same way.
func (c Category) LimitUsable() bool {
	return c.LimitEnabled && c.MonthlyLimit.Valid && c.MonthlyLimit.Decimal.IsPositive()
}

// Transaction is a single dated income or expense record.
type Transaction struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	CategoryID  uuid.UUID
	Date        time.Time
	CreatedAt   time.Time
}

// Goal is a savings target. CurrentAmount is only changed by explicit updates.
type Goal struct {
	ID            uuid.UUID
	Title         string
	Description   *string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	TargetDate    *time.Time
	CreatedAt     time.Time
}

// Alert is raised when a category's month-to-date spend crosses a threshold.
type Alert struct {
	ID          uuid.UUID
	CategoryID  uuid.UUID
	Message     string
	AmountSpent decimal.Decimal
	LimitAmount decimal.Decimal
	Percentage  decimal.Decimal
	Date        time.Time
	IsRead      bool
	CreatedAt   time.Time
}

// DateRange is the half-open interval [Start, End).
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether d falls inside the range.
func (r DateRange) Contains(d time.Time) bool {
	return !d.Before(r.Start) && d.Before(r.End)
}

// DateOf strips the time of day, keeping the calendar date as seen in t's location.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the first day of t's month.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthToDate returns the calendar month containing date.
func MonthToDate(date time.Time) DateRange {
	start := MonthStart(date)
	return DateRange{
		Start: start,
		End:   start.AddDate(0, 1, 0),
	}
}
