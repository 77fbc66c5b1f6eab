package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/storage/alert"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/goal"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

type Reader struct {
	Categories   category.IReader
	Transactions transaction.IReader
	Goals        goal.IReader
	Alerts       alert.IReader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Categories:   category.NewReader(exec),
		Transactions: transaction.NewReader(exec),
		Goals:        goal.NewReader(exec),
		Alerts:       alert.NewReader(exec),
	}
}
