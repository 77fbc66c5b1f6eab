package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/handlers/handlerutil"
)

// UpdateGoalBody replaces the goal fields and optionally records progress.
type UpdateGoalBody struct {
	GoalBody
	CurrentAmount *string `json:"currentAmount,omitempty" doc:"Decimal amount saved so far; unchanged when omitted"`
}

type UpdateGoalInput struct {
	ID   string `path:"id" format:"uuid" doc:"Goal UUID"`
	Body UpdateGoalBody
}

type UpdateGoalOutput struct {
	Body Goal
}

type goalUpdater interface {
	UpdateGoal(ctx context.Context, goal finance.Goal, currentAmount *decimal.Decimal) (finance.Goal, error)
}

// UpdateGoalHandler handles PUT /api/goals/{id}.
type UpdateGoalHandler struct {
	GoalService goalUpdater
}

func NewUpdateGoalHandler(svc goalUpdater) *UpdateGoalHandler {
	return &UpdateGoalHandler{GoalService: svc}
}

func (h *UpdateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-goal",
		Method:      http.MethodPut,
		Path:        "/api/goals/{id}",
		Summary:     "Update goal",
		Description: "Replaces the goal's title, description, target amount and target date, and records progress when currentAmount is sent.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *UpdateGoalHandler) handle(ctx context.Context, input *UpdateGoalInput) (*UpdateGoalOutput, error) {
	id, err := handlerutil.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}
	goal, err := parseGoalBody(input.Body.GoalBody)
	if err != nil {
		return nil, err
	}
	goal.ID = id

	var currentAmount *decimal.Decimal
	if input.Body.CurrentAmount != nil {
		amount, err := handlerutil.ParseAmount("currentAmount", *input.Body.CurrentAmount)
		if err != nil {
			return nil, err
		}
		currentAmount = &amount
	}

	updated, err := h.GoalService.UpdateGoal(ctx, goal, currentAmount)
	if err != nil {
		return nil, handlerutil.ServiceError(err, "goal", "update goal")
	}
	return &UpdateGoalOutput{Body: toGoal(updated)}, nil
}
