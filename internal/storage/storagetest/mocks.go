// Package storagetest provides testify mocks of the storage tables for
// packages that sit above storage.
package storagetest

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/alert"
	"github.com/carson-networks/finance-server/internal/storage/category"
	"github.com/carson-networks/finance-server/internal/storage/goal"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

var (
	_ category.ITable    = (*CategoryTable)(nil)
	_ transaction.ITable = (*TransactionTable)(nil)
	_ goal.ITable        = (*GoalTable)(nil)
	_ alert.ITable       = (*AlertTable)(nil)
	_ storage.Transactor = (*Transactor)(nil)
)

// Tables bundles one mock per table and the transaction they share.
type Tables struct {
	Categories   *CategoryTable
	Transactions *TransactionTable
	Goals        *GoalTable
	Alerts       *AlertTable
	Tx           *Transactor
}

// NewTables creates mocks whose expectations are asserted when t finishes.
func NewTables(t *testing.T) *Tables {
	t.Helper()
	tables := &Tables{
		Categories:   &CategoryTable{},
		Transactions: &TransactionTable{},
		Goals:        &GoalTable{},
		Alerts:       &AlertTable{},
		Tx:           &Transactor{},
	}
	for _, m := range []*mock.Mock{
		&tables.Categories.Mock,
		&tables.Transactions.Mock,
		&tables.Goals.Mock,
		&tables.Alerts.Mock,
		&tables.Tx.Mock,
	} {
		m.Test(t)
		t.Cleanup(func() { m.AssertExpectations(t) })
	}
	return tables
}

func (tables *Tables) Writer() *storage.Writer {
	return &storage.Writer{
		Tx:           tables.Tx,
		Categories:   tables.Categories,
		Transactions: tables.Transactions,
		Goals:        tables.Goals,
		Alerts:       tables.Alerts,
	}
}

func (tables *Tables) Reader() *storage.Reader {
	return &storage.Reader{
		Categories:   tables.Categories,
		Transactions: tables.Transactions,
		Goals:        tables.Goals,
		Alerts:       tables.Alerts,
	}
}

type CategoryTable struct {
	mock.Mock
}

func (m *CategoryTable) FindByID(ctx context.Context, id uuid.UUID) (finance.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(finance.Category), args.Error(1)
}

func (m *CategoryTable) List(ctx context.Context) ([]finance.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Category), args.Error(1)
}

func (m *CategoryTable) Insert(ctx context.Context, c finance.Category) (finance.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(finance.Category), args.Error(1)
}

func (m *CategoryTable) Update(ctx context.Context, c finance.Category) (finance.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(finance.Category), args.Error(1)
}

func (m *CategoryTable) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type TransactionTable struct {
	mock.Mock
}

func (m *TransactionTable) FindByID(ctx context.Context, id uuid.UUID) (finance.Transaction, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(finance.Transaction), args.Error(1)
}

func (m *TransactionTable) List(ctx context.Context) ([]finance.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Transaction), args.Error(1)
}

func (m *TransactionTable) ExpenseAmounts(ctx context.Context, categoryID uuid.UUID, window finance.DateRange) ([]decimal.Decimal, error) {
	args := m.Called(ctx, categoryID, window)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]decimal.Decimal), args.Error(1)
}

func (m *TransactionTable) Insert(ctx context.Context, t finance.Transaction) (finance.Transaction, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(finance.Transaction), args.Error(1)
}

func (m *TransactionTable) Update(ctx context.Context, t finance.Transaction) (finance.Transaction, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(finance.Transaction), args.Error(1)
}

func (m *TransactionTable) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type GoalTable struct {
	mock.Mock
}

func (m *GoalTable) FindByID(ctx context.Context, id uuid.UUID) (finance.Goal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(finance.Goal), args.Error(1)
}

func (m *GoalTable) List(ctx context.Context) ([]finance.Goal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Goal), args.Error(1)
}

func (m *GoalTable) Insert(ctx context.Context, g finance.Goal) (finance.Goal, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(finance.Goal), args.Error(1)
}

func (m *GoalTable) Update(ctx context.Context, g finance.Goal) (finance.Goal, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(finance.Goal), args.Error(1)
}

func (m *GoalTable) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type AlertTable struct {
	mock.Mock
}

func (m *AlertTable) FindByID(ctx context.Context, id uuid.UUID) (finance.Alert, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(finance.Alert), args.Error(1)
}

func (m *AlertTable) List(ctx context.Context, limit int) ([]finance.Alert, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Alert), args.Error(1)
}

func (m *AlertTable) Insert(ctx context.Context, a finance.Alert) (finance.Alert, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(finance.Alert), args.Error(1)
}

func (m *AlertTable) MarkRead(ctx context.Context, id uuid.UUID) (finance.Alert, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(finance.Alert), args.Error(1)
}

type Transactor struct {
	mock.Mock
}

func (m *Transactor) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *Transactor) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
