package actions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/storage"
)

// CreateTransaction records a transaction and, for expenses, evaluates the
// category's monthly limit against the month-to-date spend including the new
// transaction. A raised alert is stored in the same database transaction.
type CreateTransaction struct {
	Transaction finance.Transaction
	Monitor     *finance.LimitMonitor
	Clock       Clock

	Result finance.Transaction
	Alert  *finance.Alert
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	id, createdAt, err := stamp(c.Clock)
	if err != nil {
		return err
	}

	t := c.Transaction
	t.ID = id
	t.CreatedAt = createdAt
	t.Date = finance.DateOf(t.Date)

	c.Result, err = writer.Transactions.Insert(ctx, t)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	if c.Result.Type != finance.TransactionTypeExpense {
		return nil
	}
	return c.checkLimit(ctx, writer, createdAt)
}

func (c *CreateTransaction) checkLimit(ctx context.Context, writer *storage.Writer, now time.Time) error {
	category, err := writer.Categories.FindByID(ctx, c.Result.CategoryID)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("find category: %w", err)
	}
	if !category.LimitUsable() {
		return nil
	}

	amounts, err := writer.Transactions.ExpenseAmounts(ctx, category.ID, finance.MonthToDate(c.Result.Date))
	if err != nil {
		return fmt.Errorf("expense amounts: %w", err)
	}

	monitor := c.Monitor
	if monitor == nil {
		monitor = finance.NewLimitMonitor("")
	}
	alert, ok := monitor.Evaluate(category, c.Result.Date, amounts)
	if !ok {
		return nil
	}

	alertID, _, err := stamp(c.Clock)
	if err != nil {
		return err
	}
	alert.ID = alertID
	alert.CreatedAt = now

	stored, err := writer.Alerts.Insert(ctx, alert)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	c.Alert = &stored
	return nil
}
