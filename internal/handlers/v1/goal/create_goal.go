package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/handlers/handlerutil"
)

type CreateGoalInput struct {
	Body GoalBody
}

type CreateGoalOutput struct {
	Body Goal
}

type goalCreator interface {
	CreateGoal(ctx context.Context, goal finance.Goal) (finance.Goal, error)
}

// CreateGoalHandler handles POST /api/goals. New goals start with nothing saved.
type CreateGoalHandler struct {
	GoalService goalCreator
}

func NewCreateGoalHandler(svc goalCreator) *CreateGoalHandler {
	return &CreateGoalHandler{GoalService: svc}
}

func (h *CreateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-goal",
		Method:        http.MethodPost,
		Path:          "/api/goals",
		DefaultStatus: http.StatusCreated,
		Summary:       "Create goal",
		Tags:          []string{"Goals"},
	}, h.handle)
}

func (h *CreateGoalHandler) handle(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	goal, err := parseGoalBody(input.Body)
	if err != nil {
		return nil, err
	}

	created, err := h.GoalService.CreateGoal(ctx, goal)
	if err != nil {
		return nil, handlerutil.ServiceError(err, "goal", "create goal")
	}
	return &CreateGoalOutput{Body: toGoal(created)}, nil
}
