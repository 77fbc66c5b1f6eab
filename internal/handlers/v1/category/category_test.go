package category

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

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) CreateCategory(ctx context.Context, c finance.Category) (finance.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(finance.Category), args.Error(1)
}

func (m *mockCategoryService) ListCategories(ctx context.Context) ([]finance.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Category), args.Error(1)
}

func (m *mockCategoryService) UpdateCategory(ctx context.Context, c finance.Category) (finance.Category, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(finance.Category), args.Error(1)
}

func (m *mockCategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func newTestAPI(t *testing.T, svc categoryService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	Register(api, svc)
	return api
}

func strPtr(s string) *string { return &s }

func storedCategory() finance.Category {
	return finance.Category{
		ID:           uuid.Must(uuid.NewV4()),
		Name:         "Food",
		Type:         finance.TransactionTypeExpense,
		LimitEnabled: true,
		MonthlyLimit: decimal.NewNullDecimal(decimal.NewFromInt(800)),
		Color:        finance.DefaultCategoryColor,
		CreatedAt:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestHTTP_CreateCategory_Success(t *testing.T) {
	stored := storedCategory()
	mockSvc := new(mockCategoryService)
	mockSvc.On("CreateCategory", mock.Anything, mock.MatchedBy(func(c finance.Category) bool {
		return c.Name == "Food" &&
			c.Type == finance.TransactionTypeExpense &&
			c.LimitEnabled &&
			c.MonthlyLimit.Valid && c.MonthlyLimit.Decimal.Equal(decimal.NewFromInt(800))
	})).Return(stored, nil)

	resp := newTestAPI(t, mockSvc).Post("/api/categories", CategoryBody{
		Name:         "Food",
		Type:         "expense",
		LimitEnabled: true,
		MonthlyLimit: strPtr("800"),
	})

	require.Equal(t, http.StatusCreated, resp.Code)
	var body Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, stored.ID.String(), body.ID)
	require.NotNil(t, body.MonthlyLimit)
	assert.Equal(t, "800.00", *body.MonthlyLimit)
	assert.Equal(t, "#3B82F6", body.Color)
	assert.Equal(t, "2025-01-02T03:04:05Z", body.CreatedAt)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateCategory_InvalidType(t *testing.T) {
	mockSvc := new(mockCategoryService)

	resp := newTestAPI(t, mockSvc).Post("/api/categories", CategoryBody{Name: "Food", Type: "transfer"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateCategory")
}

func TestHTTP_CreateCategory_InvalidColor(t *testing.T) {
	mockSvc := new(mockCategoryService)

	resp := newTestAPI(t, mockSvc).Post("/api/categories", CategoryBody{Name: "Food", Type: "expense", Color: "blue"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateCategory")
}

func TestHTTP_CreateCategory_InvalidLimit(t *testing.T) {
	mockSvc := new(mockCategoryService)

	resp := newTestAPI(t, mockSvc).Post("/api/categories", CategoryBody{
		Name:         "Food",
		Type:         "expense",
		MonthlyLimit: strPtr("lots"),
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateCategory")
}

func TestHTTP_ListCategories(t *testing.T) {
	noLimit := storedCategory()
	noLimit.MonthlyLimit = decimal.NullDecimal{}
	mockSvc := new(mockCategoryService)
	mockSvc.On("ListCategories", mock.Anything).Return([]finance.Category{storedCategory(), noLimit}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/categories")

	require.Equal(t, http.StatusOK, resp.Code)
	var body []Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.NotNil(t, body[0].MonthlyLimit)
	assert.Nil(t, body[1].MonthlyLimit)
}

func TestHTTP_ListCategories_Empty(t *testing.T) {
	mockSvc := new(mockCategoryService)
	mockSvc.On("ListCategories", mock.Anything).Return([]finance.Category{}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/categories")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestHTTP_UpdateCategory_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockCategoryService)
	mockSvc.On("UpdateCategory", mock.Anything, mock.MatchedBy(func(c finance.Category) bool {
		return c.ID == id
	})).Return(finance.Category{}, storage.ErrNotFound)

	resp := newTestAPI(t, mockSvc).Put("/api/categories/"+id.String(), CategoryBody{Name: "Rent", Type: "expense"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateCategory_InvalidID(t *testing.T) {
	mockSvc := new(mockCategoryService)

	resp := newTestAPI(t, mockSvc).Put("/api/categories/not-a-uuid", CategoryBody{Name: "Rent", Type: "expense"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "UpdateCategory")
}

func TestHTTP_DeleteCategory(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockCategoryService)
	mockSvc.On("DeleteCategory", mock.Anything, id).Return(nil)

	resp := newTestAPI(t, mockSvc).Delete("/api/categories/" + id.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteCategory_ServiceError(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockCategoryService)
	mockSvc.On("DeleteCategory", mock.Anything, id).Return(errors.New("database unavailable"))

	resp := newTestAPI(t, mockSvc).Delete("/api/categories/" + id.String())

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
