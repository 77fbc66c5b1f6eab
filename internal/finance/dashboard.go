package finance

import (
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// RecentTransactionsLimit caps Summary.RecentTransactions.
const RecentTransactionsLimit = 10

// Summary is the read-only dashboard view of the ledger.
type Summary struct {
	TotalBalance       decimal.Decimal
	TotalIncome        decimal.Decimal
	TotalExpenses      decimal.Decimal
	MonthlyBalance     decimal.Decimal
	MonthlyIncome      decimal.Decimal
	MonthlyExpenses    decimal.Decimal
	CategorySpending   []CategorySpend
	RecentTransactions []RecentTransaction
}

// CategorySpend is the current month's expense total for one category.
type CategorySpend struct {
	CategoryID uuid.UUID
	Category   string
	Amount     decimal.Decimal
	Color      string
}

// RecentTransaction is a transaction enriched with its category name,
// which is nil once the category has been deleted.
type RecentTransaction struct {
	Transaction
	CategoryName *string
}

// Summarize computes dashboard totals from the given snapshots.
//
// Monthly figures include every transaction dated on or after the first day
// of now's month, future-dated entries included. Neither input slice is modified.
func Summarize(transactions []Transaction, categories []Category, now time.Time) Summary {
	monthStart := MonthStart(now)

	byID := make(map[uuid.UUID]Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	var summary Summary
	spendByCategory := make(map[uuid.UUID]decimal.Decimal)
	var spendOrder []uuid.UUID

	for _, t := range transactions {
		inMonth := !DateOf(t.Date).Before(monthStart)

		switch t.Type {
		case TransactionTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(t.Amount)
			if inMonth {
				summary.MonthlyIncome = summary.MonthlyIncome.Add(t.Amount)
			}
		case TransactionTypeExpense:
			summary.TotalExpenses = summary.TotalExpenses.Add(t.Amount)
			if inMonth {
				summary.MonthlyExpenses = summary.MonthlyExpenses.Add(t.Amount)
				if _, seen := spendByCategory[t.CategoryID]; !seen {
					spendOrder = append(spendOrder, t.CategoryID)
				}
				spendByCategory[t.CategoryID] = spendByCategory[t.CategoryID].Add(t.Amount)
			}
		}
	}

	summary.TotalBalance = summary.TotalIncome.Sub(summary.TotalExpenses)
	summary.MonthlyBalance = summary.MonthlyIncome.Sub(summary.MonthlyExpenses)

	summary.CategorySpending = make([]CategorySpend, 0, len(spendOrder))
	for _, id := range spendOrder {
		amount := spendByCategory[id]
		category, ok := byID[id]
		if !ok || amount.IsZero() {
			continue
		}
		summary.CategorySpending = append(summary.CategorySpending, CategorySpend{
			CategoryID: id,
			Category:   category.Name,
			Amount:     amount,
			Color:      category.Color,
		})
	}

	summary.RecentTransactions = recentTransactions(transactions, byID)

	return summary
}

func recentTransactions(transactions []Transaction, categories map[uuid.UUID]Category) []RecentTransaction {
	sorted := make([]Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return DateOf(sorted[i].Date).After(DateOf(sorted[j].Date))
	})

	if len(sorted) > RecentTransactionsLimit {
		sorted = sorted[:RecentTransactionsLimit]
	}

	recent := make([]RecentTransaction, len(sorted))
	for i, t := range sorted {
		recent[i] = RecentTransaction{Transaction: t}
		if category, ok := categories[t.CategoryID]; ok {
			name := category.Name
			recent[i].CategoryName = &name
		}
	}
	return recent
}
