package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/handlers/handlerutil"
	"github.com/carson-networks/finance-server/internal/logging"
)

type CreateTransactionInput struct {
	Body TransactionBody
}

// RaisedAlert summarizes the limit alert a new expense triggered.
type RaisedAlert struct {
	ID         string `json:"id" doc:"Alert UUID"`
	Message    string `json:"message" doc:"Human readable alert"`
	Percentage string `json:"percentage" doc:"Share of the monthly limit spent"`
}

type CreateTransactionResponse struct {
	Transaction Transaction  `json:"transaction"`
	Alert       *RaisedAlert `json:"alert,omitempty" doc:"Present when the expense crossed a limit threshold"`
}

type CreateTransactionOutput struct {
	Body CreateTransactionResponse
}

type transactionCreator interface {
	CreateTransaction(ctx context.Context, transaction finance.Transaction) (finance.Transaction, *finance.Alert, error)
}

// CreateTransactionHandler handles POST /api/transactions.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/api/transactions",
		DefaultStatus: http.StatusCreated,
		Summary:       "Create transaction",
		Description:   "Records a transaction. Expenses are checked against their category's monthly limit.",
		Tags:          []string{"Transactions"},
	}, h.handle)
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	transaction, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}

	created, alert, err := h.TransactionService.CreateTransaction(ctx, transaction)
	if err != nil {
		return nil, handlerutil.ServiceError(err, "transaction", "create transaction")
	}

	resp := CreateTransactionResponse{Transaction: toTransaction(created)}
	if alert != nil {
		resp.Alert = &RaisedAlert{
			ID:         alert.ID.String(),
			Message:    alert.Message,
			Percentage: alert.Percentage.StringFixed(1),
		}
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.AddData("alertID", resp.Alert.ID)
		}
	}

	return &CreateTransactionOutput{Body: resp}, nil
}
