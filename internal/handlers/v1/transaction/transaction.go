package transaction

import (
	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/handlers/handlerutil"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction UUID"`
	Description string `json:"description" doc:"What the money was for"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Type        string `json:"type" enum:"income,expense" doc:"income or expense"`
	CategoryID  string `json:"categoryID" doc:"Category UUID"`
	Date        string `json:"date" doc:"Calendar date, YYYY-MM-DD"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

// TransactionBody is the request body for creating or replacing a transaction.
type TransactionBody struct {
	Description string `json:"description" required:"true" minLength:"1" doc:"What the money was for"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount"`
	Type        string `json:"type" required:"true" enum:"income,expense" doc:"income or expense"`
	CategoryID  string `json:"categoryID" required:"true" format:"uuid" doc:"Category UUID"`
	Date        string `json:"date" required:"true" format:"date" doc:"Calendar date, YYYY-MM-DD"`
}

func toTransaction(t finance.Transaction) Transaction {
	return Transaction{
		ID:          t.ID.String(),
		Description: t.Description,
		Amount:      handlerutil.FormatAmount(t.Amount),
		Type:        string(t.Type),
		CategoryID:  t.CategoryID.String(),
		Date:        handlerutil.FormatDate(t.Date),
		CreatedAt:   handlerutil.FormatTimestamp(t.CreatedAt),
	}
}

func parseTransactionBody(body TransactionBody) (finance.Transaction, error) {
	categoryID, err := handlerutil.ParseID("categoryID", body.CategoryID)
	if err != nil {
		return finance.Transaction{}, err
	}
	amount, err := handlerutil.ParseAmount("amount", body.Amount)
	if err != nil {
		return finance.Transaction{}, err
	}
	date, err := handlerutil.ParseDate("date", body.Date)
	if err != nil {
		return finance.Transaction{}, err
	}

	return finance.Transaction{
		Description: body.Description,
		Amount:      amount,
		Type:        finance.TransactionType(body.Type),
		CategoryID:  categoryID,
		Date:        date,
	}, nil
}
