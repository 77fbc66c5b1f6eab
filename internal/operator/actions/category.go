package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/storage"
)

type CreateCategory struct {
	Category finance.Category
	Clock    Clock

	Result finance.Category
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	id, createdAt, err := stamp(c.Clock)
	if err != nil {
		return err
	}

	category := c.Category
	category.ID = id
	category.CreatedAt = createdAt
	if category.Color == "" {
		category.Color = finance.DefaultCategoryColor
	}

	c.Result, err = writer.Categories.Insert(ctx, category)
	return err
}

// UpdateCategory replaces the mutable fields of Category.ID.
type UpdateCategory struct {
	Category finance.Category

	Result finance.Category
}

func (u *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	category := u.Category
	if category.Color == "" {
		category.Color = finance.DefaultCategoryColor
	}

	var err error
	u.Result, err = writer.Categories.Update(ctx, category)
	return err
}

// DeleteCategory removes the category only; its transactions and alerts stay.
type DeleteCategory struct {
	ID uuid.UUID
}

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Categories.Delete(ctx, d.ID)
}
