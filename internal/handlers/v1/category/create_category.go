package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/handlers/handlerutil"
)

type CreateCategoryInput struct {
	Body CategoryBody
}

type CreateCategoryOutput struct {
	Body Category
}

type categoryCreator interface {
	CreateCategory(ctx context.Context, category finance.Category) (finance.Category, error)
}

// CreateCategoryHandler handles POST /api/categories.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-category",
		Method:        http.MethodPost,
		Path:          "/api/categories",
		DefaultStatus: http.StatusCreated,
		Summary:       "Create category",
		Description:   "Creates an income or expense category, optionally with a monthly spending limit.",
		Tags:          []string{"Categories"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	category, err := parseCategoryBody(input.Body)
	if err != nil {
		return nil, err
	}

	created, err := h.CategoryService.CreateCategory(ctx, category)
	if err != nil {
		return nil, handlerutil.ServiceError(err, "category", "create category")
	}

	return &CreateCategoryOutput{Body: toCategory(created)}, nil
}
