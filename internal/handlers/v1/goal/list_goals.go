package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/finance"
)

type ListGoalsOutput struct {
	Body []Goal
}

type goalLister interface {
	ListGoals(ctx context.Context) ([]finance.Goal, error)
}

type ListGoalsHandler struct {
	GoalService goalLister
}

func NewListGoalsHandler(svc goalLister) *ListGoalsHandler {
	return &ListGoalsHandler{GoalService: svc}
}

func (h *ListGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goals",
		Method:      http.MethodGet,
		Path:        "/api/goals",
		Summary:     "List goals",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *ListGoalsHandler) handle(ctx context.Context, _ *struct{}) (*ListGoalsOutput, error) {
	goals, err := h.GoalService.ListGoals(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list goals", err)
	}

	resp := make([]Goal, len(goals))
	for i, g := range goals {
		resp[i] = toGoal(g)
	}
	return &ListGoalsOutput{Body: resp}, nil
}
