package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/handlers/handlerutil"
)

type DeleteCategoryInput struct {
	ID string `path:"id" format:"uuid" doc:"Category UUID"`
}

type categoryDeleter interface {
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// DeleteCategoryHandler handles DELETE /api/categories/{id}. Transactions
// recorded against the category are kept.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/api/categories/{id}",
		DefaultStatus: http.StatusNoContent,
		Summary:       "Delete category",
		Tags:          []string{"Categories"},
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *DeleteCategoryInput) (*struct{}, error) {
	id, err := handlerutil.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	if err := h.CategoryService.DeleteCategory(ctx, id); err != nil {
		return nil, handlerutil.ServiceError(err, "category", "delete category")
	}
	return nil, nil
}
