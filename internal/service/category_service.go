package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// CategoryService handles category business logic.
type CategoryService struct {
	reader   *storage.Reader
	operator Processor
}

func NewCategoryService(reader *storage.Reader, operator Processor) *CategoryService {
	return &CategoryService{reader: reader, operator: operator}
}

func (s *CategoryService) CreateCategory(ctx context.Context, category finance.Category) (finance.Category, error) {
	action := &actions.CreateCategory{Category: category}
	if err := s.operator.Process(ctx, action); err != nil {
		return finance.Category{}, err
	}
	return action.Result, nil
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]finance.Category, error) {
	defer logging.StartTiming(ctx, "listCategoriesMs")()
	return s.reader.Categories.List(ctx)
}

// UpdateCategory returns storage.ErrNotFound when category.ID does not exist.
func (s *CategoryService) UpdateCategory(ctx context.Context, category finance.Category) (finance.Category, error) {
	action := &actions.UpdateCategory{Category: category}
	if err := s.operator.Process(ctx, action); err != nil {
		return finance.Category{}, err
	}
	return action.Result, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return s.operator.Process(ctx, &actions.DeleteCategory{ID: id})
}
