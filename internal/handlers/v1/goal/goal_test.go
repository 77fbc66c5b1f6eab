package goal

import (
	"context"
	"encoding/json"
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

type mockGoalService struct {
	mock.Mock
}

func (m *mockGoalService) CreateGoal(ctx context.Context, g finance.Goal) (finance.Goal, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(finance.Goal), args.Error(1)
}

func (m *mockGoalService) ListGoals(ctx context.Context) ([]finance.Goal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]finance.Goal), args.Error(1)
}

func (m *mockGoalService) UpdateGoal(ctx context.Context, g finance.Goal, currentAmount *decimal.Decimal) (finance.Goal, error) {
	args := m.Called(ctx, g, currentAmount)
	return args.Get(0).(finance.Goal), args.Error(1)
}

func (m *mockGoalService) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func newTestAPI(t *testing.T, svc goalService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	Register(api, svc)
	return api
}

func strPtr(s string) *string { return &s }

func TestHTTP_CreateGoal(t *testing.T) {
	targetDate := time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
	stored := finance.Goal{
		ID:            uuid.Must(uuid.NewV4()),
		Title:         "Emergency fund",
		TargetAmount:  decimal.NewFromInt(10000),
		CurrentAmount: decimal.Zero,
		TargetDate:    &targetDate,
	}
	mockSvc := new(mockGoalService)
	mockSvc.On("CreateGoal", mock.Anything, mock.MatchedBy(func(g finance.Goal) bool {
		return g.Title == "Emergency fund" &&
			g.TargetAmount.Equal(decimal.NewFromInt(10000)) &&
			g.TargetDate != nil && g.TargetDate.Equal(targetDate) &&
			g.Description == nil
	})).Return(stored, nil)

	resp := newTestAPI(t, mockSvc).Post("/api/goals", GoalBody{
		Title:        "Emergency fund",
		TargetAmount: "10000",
		TargetDate:   strPtr("2025-12-31"),
	})

	require.Equal(t, http.StatusCreated, resp.Code)
	var body Goal
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "10000.00", body.TargetAmount)
	assert.Equal(t, "0.00", body.CurrentAmount)
	require.NotNil(t, body.TargetDate)
	assert.Equal(t, "2025-12-31", *body.TargetDate)
	assert.Nil(t, body.Description)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateGoal_MissingTitle(t *testing.T) {
	mockSvc := new(mockGoalService)

	resp := newTestAPI(t, mockSvc).Post("/api/goals", map[string]any{"targetAmount": "100"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateGoal")
}

func TestHTTP_UpdateGoal_WithProgress(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockGoalService)
	mockSvc.On("UpdateGoal", mock.Anything,
		mock.MatchedBy(func(g finance.Goal) bool { return g.ID == id && g.Title == "Car" }),
		mock.MatchedBy(func(amount *decimal.Decimal) bool {
			return amount != nil && amount.Equal(decimal.NewFromInt(2500))
		}),
	).Return(finance.Goal{ID: id, Title: "Car", CurrentAmount: decimal.NewFromInt(2500)}, nil)

	resp := newTestAPI(t, mockSvc).Put("/api/goals/"+id.String(), UpdateGoalBody{
		GoalBody:      GoalBody{Title: "Car", TargetAmount: "20000"},
		CurrentAmount: strPtr("2500"),
	})

	require.Equal(t, http.StatusOK, resp.Code)
	var body Goal
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "2500.00", body.CurrentAmount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateGoal_WithoutProgress(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockGoalService)
	mockSvc.On("UpdateGoal", mock.Anything, mock.Anything, (*decimal.Decimal)(nil)).
		Return(finance.Goal{ID: id}, nil)

	resp := newTestAPI(t, mockSvc).Put("/api/goals/"+id.String(), UpdateGoalBody{
		GoalBody: GoalBody{Title: "Car", TargetAmount: "20000"},
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_UpdateGoal_NotFound(t *testing.T) {
	mockSvc := new(mockGoalService)
	mockSvc.On("UpdateGoal", mock.Anything, mock.Anything, mock.Anything).Return(finance.Goal{}, storage.ErrNotFound)

	resp := newTestAPI(t, mockSvc).Put("/api/goals/"+uuid.Must(uuid.NewV4()).String(), UpdateGoalBody{
		GoalBody: GoalBody{Title: "Car", TargetAmount: "20000"},
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_ListGoals(t *testing.T) {
	mockSvc := new(mockGoalService)
	mockSvc.On("ListGoals", mock.Anything).Return([]finance.Goal{
		{ID: uuid.Must(uuid.NewV4()), Title: "Trip", Description: strPtr("Japan")},
	}, nil)

	resp := newTestAPI(t, mockSvc).Get("/api/goals")

	require.Equal(t, http.StatusOK, resp.Code)
	var body []Goal
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	require.NotNil(t, body[0].Description)
	assert.Equal(t, "Japan", *body[0].Description)
	assert.Nil(t, body[0].TargetDate)
}

func TestHTTP_DeleteGoal(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockGoalService)
	mockSvc.On("DeleteGoal", mock.Anything, id).Return(nil)

	resp := newTestAPI(t, mockSvc).Delete("/api/goals/" + id.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}
