package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/handlers/handlerutil"
)

type UpdateCategoryInput struct {
	ID   string `path:"id" format:"uuid" doc:"Category UUID"`
	Body CategoryBody
}

type UpdateCategoryOutput struct {
	Body Category
}

type categoryUpdater interface {
	UpdateCategory(ctx context.Context, category finance.Category) (finance.Category, error)
}

// UpdateCategoryHandler handles PUT /api/categories/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/api/categories/{id}",
		Summary:     "Update category",
		Description: "Replaces every field of an existing category.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	id, err := handlerutil.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}
	category, err := parseCategoryBody(input.Body)
	if err != nil {
		return nil, err
	}
	category.ID = id

	updated, err := h.CategoryService.UpdateCategory(ctx, category)
	if err != nil {
		return nil, handlerutil.ServiceError(err, "category", "update category")
	}

	return &UpdateCategoryOutput{Body: toCategory(updated)}, nil
}
