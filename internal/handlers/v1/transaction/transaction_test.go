package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/storage"
)

type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, t finance.Transaction) (finance.Transaction, *finance.Alert, error) {
	args := m.Called(ctx, t)
	alert, _ := args.Get(1).(*finance.Alert)
	return args.Get(0).(finance.Transaction), alert, args.Error(2)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context) ([]finance.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Transaction), args.Error(1)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, t finance.Transaction) (finance.Transaction, error) {
	args := m.Called(ctx, t)
	return args.Get(0).(finance.Transaction), args.Error(1)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func newTestAPI(t *testing.T, svc transactionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	Register(api, svc)
	return api
}

func validBody(categoryID uuid.UUID) TransactionBody {
	return TransactionBody{
		Description: "Groceries",
		Amount:      "35.90",
		Type:        "expense",
		CategoryID:  categoryID.String(),
		Date:        "2025-03-14",
	}
}

// -- parseTransactionBody unit tests --

func TestParseTransactionBody_Valid(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())

	parsed, err := parseTransactionBody(validBody(categoryID))

	require.NoError(t, err)
	assert.Equal(t, categoryID, parsed.CategoryID)
	assert.True(t, parsed.Amount.Equal(decimal.RequireFromString("35.9")))
	assert.Equal(t, finance.TransactionTypeExpense, parsed.Type)
	assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), parsed.Date)
	assert.Equal(t, "Groceries", parsed.Description)
}

func TestParseTransactionBody_InvalidAmount(t *testing.T) {
	body := validBody(uuid.Must(uuid.NewV4()))
	body.Amount = "12,50"

	_, err := parseTransactionBody(body)
	assert.Error(t, err)
}

// -- HTTP tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())
	stored := finance.Transaction{
		ID:          uuid.Must(uuid.NewV4()),
		Description: "Groceries",
		Amount:      decimal.RequireFromString("35.90"),
		Type:        finance.TransactionTypeExpense,
		CategoryID:  categoryID,
		Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		CreatedAt:   time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC),
	}

	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(tx finance.Transaction) bool {
		return tx.CategoryID == categoryID && tx.Amount.Equal(decimal.RequireFromString("35.90"))
	})).Return(stored, nil, nil)

	resp := newTestAPI(t, mockSvc).Post("/api/transactions", validBody(categoryID))

	require.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, stored.ID.String(), body.Transaction.ID)
	assert.Equal(t, "35.90", body.Transaction.Amount)
	assert.Equal(t, "2025-03-14", body.Transaction.Date)
	assert.Nil(t, body.Alert)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_WithAlert(t *testing.T) {
	alert := &finance.Alert{
		ID:         uuid.Must(uuid.NewV4()),
		Message:    "Warning! You have spent 85.0% of the limit for category Food",
		Percentage: decimal.NewFromInt(85),
	}
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).Return(finance.Transaction{}, alert, nil)

	resp := newTestAPI(t, mockSvc).Post("/api/transactions", validBody(uuid.Must(uuid.NewV4())))

	require.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.Alert)
	assert.Equal(t, alert.Message, body.Alert.Message)
	assert.Equal(t, "85.0", body.Alert.Percentage)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newTestAPI(t, mockSvc).Post("/api/transactions", map[string]any{
		"description": "Groceries",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidType(t *testing.T) {
	mockSvc := new(mockTransactionService)
	body := validBody(uuid.Must(uuid.NewV4()))
	body.Type = "refund"

	resp := newTestAPI(t, mockSvc).Post("/api/transactions", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidDate(t *testing.T) {
	mockSvc := new(mockTransactionService)
	body := validBody(uuid.Must(uuid.NewV4()))
	body.Date = "14/03/2025"

	// format:"date" is enforced by the schema.
	resp := newTestAPI(t, mockSvc).Post("/api/transactions", body)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidAmount(t *testing.T) {
	mockSvc := new(mockTransactionService)
	body := validBody(uuid.Must(uuid.NewV4()))
	body.Amount = "not-a-decimal"

	// Amount is a plain string, so the handler rejects it with 400.
	resp := newTestAPI(t, mockSvc).Post("/api/transactions", body)

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_AmountOutsideColumn(t *testing.T) {
	for _, amount := range []string{"1e13", "10.005"} {
		t.Run(amount, func(t *testing.T) {
			mockSvc := new(mockTransactionService)
			body := validBody(uuid.Must(uuid.NewV4()))
			body.Amount = amount

			resp := newTestAPI(t, mockSvc).Post("/api/transactions", body)

			assert.Equal(t, http.StatusBadRequest, resp.Code)
			mockSvc.AssertNotCalled(t, "CreateTransaction")
		})
	}
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(finance.Transaction{}, nil, errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Post("/api/transactions", validBody(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything).Return([]finance.Transaction{
		{ID: uuid.Must(uuid.NewV4()), Amount: decimal.NewFromInt(5), Date: time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC)},
		{ID: uuid.Must(uuid.NewV4()), Amount: decimal.NewFromInt(7), Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/transactions")

	require.Equal(t, http.StatusOK, resp.Code)
	var body []Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "2025-03-02", body[0].Date)
	assert.Equal(t, "7.00", body[1].Amount)
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("ListTransactions", mock.Anything).Return(nil, errors.New("timeout"))

	resp := newTestAPI(t, mockSvc).Get("/api/transactions")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_UpdateTransaction(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, mock.MatchedBy(func(tx finance.Transaction) bool {
		return tx.ID == id && tx.CategoryID == categoryID
	})).Return(finance.Transaction{ID: id, CategoryID: categoryID}, nil)

	resp := newTestAPI(t, mockSvc).Put("/api/transactions/"+id.String(), validBody(categoryID))

	require.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id.String(), body.ID)
}

func TestHTTP_UpdateTransaction_NotFound(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("UpdateTransaction", mock.Anything, mock.Anything).Return(finance.Transaction{}, storage.ErrNotFound)

	resp := newTestAPI(t, mockSvc).Put("/api/transactions/"+uuid.Must(uuid.NewV4()).String(), validBody(uuid.Must(uuid.NewV4())))

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_DeleteTransaction_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionService)
	mockSvc.On("DeleteTransaction", mock.Anything, id).Return(storage.ErrNotFound)

	resp := newTestAPI(t, mockSvc).Delete("/api/transactions/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}
