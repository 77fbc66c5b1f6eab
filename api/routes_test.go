package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/storagetest"
)

type processorFunc func(ctx context.Context, action actions.IAction) error

func (f processorFunc) Process(ctx context.Context, action actions.IAction) error {
	return f(ctx, action)
}

func newTestRouter(t *testing.T, tables *storagetest.Tables, processor service.Processor) http.Handler {
	t.Helper()
	logger := logrus.New()
	logger.Out = io.Discard

	rest := &Rest{
		Logger:      logger,
		CORSOrigins: []string{"http://localhost:3000"},
		Service: service.NewService(service.Dependencies{
			Reader:   tables.Reader(),
			Operator: processor,
			Log:      logger,
		}),
	}
	return rest.Router()
}

func TestRouter_Status(t *testing.T) {
	router := newTestRouter(t, storagetest.NewTables(t), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ListCategories(t *testing.T) {
	tables := storagetest.NewTables(t)
	tables.Categories.On("List", mock.Anything).Return([]finance.Category{
		{ID: uuid.Must(uuid.NewV4()), Name: "Salary", Type: finance.TransactionTypeIncome, Color: "#10B981"},
	}, nil).Once()
	router := newTestRouter(t, tables, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/categories", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body []map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "Salary", body[0]["name"])
}

func TestRouter_MarkAlertReadGoesThroughOperator(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	var processed actions.IAction
	router := newTestRouter(t, storagetest.NewTables(t), processorFunc(func(_ context.Context, action actions.IAction) error {
		processed = action
		action.(*actions.MarkAlertRead).Result = finance.Alert{ID: id, IsRead: true}
		return nil
	}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/alerts/"+id.String()+"/read", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.IsType(t, &actions.MarkAlertRead{}, processed)
	assert.Equal(t, id, processed.(*actions.MarkAlertRead).ID)
}

func TestRouter_CORSPreflight(t *testing.T) {
	router := newTestRouter(t, storagetest.NewTables(t), nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/transactions", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_UnknownRoute(t *testing.T) {
	router := newTestRouter(t, storagetest.NewTables(t), nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
