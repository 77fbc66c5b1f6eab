package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/storage/alert"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/goal"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// Transactor ends a database transaction.
type Transactor interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer groups the table writers that share one database transaction.
type Writer struct {
	Tx           Transactor
	Categories   category.ITable
	Transactions transaction.ITable
	Goals        goal.ITable
	Alerts       alert.ITable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		Tx:           tx,
		Categories:   category.NewWriter(tx),
		Transactions: transaction.NewWriter(tx),
		Goals:        goal.NewWriter(tx),
		Alerts:       alert.NewWriter(tx),
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.Tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.Tx.Rollback(ctx)
}
