package finance

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const defaultCurrencySymbol = "R$"

var (
	hundred          = decimal.NewFromInt(100)
	warningThreshold = decimal.NewFromInt(80)
	exceedThreshold  = decimal.NewFromInt(100)
)

// LimitMonitor decides whether a category's month-to-date spend warrants an alert.
// It performs no I/O; callers fetch the amounts and persist the result.
type LimitMonitor struct {
	currencySymbol string
}

// NewLimitMonitor creates a LimitMonitor that formats money with currencySymbol.
func NewLimitMonitor(currencySymbol string) *LimitMonitor {
	if currencySymbol == "" {
		currencySymbol = defaultCurrencySymbol
	}
	return &LimitMonitor{currencySymbol: currencySymbol}
}

// Evaluate sums the month-to-date expense amounts for category and returns an
// alert when the spend reaches 80% (warning) or 100% (exceeded) of the limit.
// The returned alert carries no ID or creation time.
func (m *LimitMonitor) Evaluate(category Category, date time.Time, amounts []decimal.Decimal) (Alert, bool) {
	if !category.LimitUsable() {
		return Alert{}, false
	}
	limit := category.MonthlyLimit.Decimal

	totalSpent := decimal.Sum(decimal.Zero, amounts...)
	percentage := totalSpent.Div(limit).Mul(hundred)

	var message string
	switch {
	case percentage.GreaterThanOrEqual(exceedThreshold):
		message = fmt.Sprintf("Limit exceeded! You have spent %s of the %s limit for category %s",
			m.formatMoney(totalSpent), m.formatMoney(limit), category.Name)
	case percentage.GreaterThanOrEqual(warningThreshold):
		message = fmt.Sprintf("Warning! You have spent %s%% of the limit for category %s",
			percentage.StringFixed(1), category.Name)
	default:
		return Alert{}, false
	}

	return Alert{
		CategoryID:  category.ID,
		Message:     message,
		AmountSpent: totalSpent,
		LimitAmount: limit,
		Percentage:  percentage,
		Date:        DateOf(date),
		IsRead:      false,
	}, true
}

func (m *LimitMonitor) formatMoney(amount decimal.Decimal) string {
	return m.currencySymbol + " " + humanize.FormatFloat("#,###.##", amount.Round(2).InexactFloat64())
}
