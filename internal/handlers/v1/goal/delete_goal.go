package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/handlers/handlerutil"
)

type DeleteGoalInput struct {
	ID string `path:"id" format:"uuid" doc:"Goal UUID"`
}

type goalDeleter interface {
	DeleteGoal(ctx context.Context, id uuid.UUID) error
}

type DeleteGoalHandler struct {
	GoalService goalDeleter
}

func NewDeleteGoalHandler(svc goalDeleter) *DeleteGoalHandler {
	return &DeleteGoalHandler{GoalService: svc}
}

func (h *DeleteGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-goal",
		Method:        http.MethodDelete,
		Path:          "/api/goals/{id}",
		DefaultStatus: http.StatusNoContent,
		Summary:       "Delete goal",
		Tags:          []string{"Goals"},
	}, h.handle)
}

func (h *DeleteGoalHandler) handle(ctx context.Context, input *DeleteGoalInput) (*struct{}, error) {
	id, err := handlerutil.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.GoalService.DeleteGoal(ctx, id); err != nil {
		return nil, handlerutil.ServiceError(err, "goal", "delete goal")
	}
	return nil, nil
}
