package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/storage"
)

type CreateGoal struct {
	Goal  finance.Goal
	Clock Clock

	Result finance.Goal
}

func (c *CreateGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	id, createdAt, err := stamp(c.Clock)
	if err != nil {
		return err
	}

	goal := c.Goal
	goal.ID = id
	goal.CreatedAt = createdAt

	c.Result, err = writer.Goals.Insert(ctx, goal)
	return err
}

// UpdateGoal replaces title, description, target amount and target date.
// CurrentAmount is written only when set; otherwise the stored progress is kept.
type UpdateGoal struct {
	Goal          finance.Goal
	CurrentAmount *decimal.Decimal

	Result finance.Goal
}

func (u *UpdateGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Goals.FindByID(ctx, u.Goal.ID)
	if err != nil {
		return err
	}

	goal := u.Goal
	goal.CreatedAt = existing.CreatedAt
	goal.CurrentAmount = existing.CurrentAmount
	if u.CurrentAmount != nil {
		goal.CurrentAmount = *u.CurrentAmount
	}

	u.Result, err = writer.Goals.Update(ctx, goal)
	return err
}

type DeleteGoal struct {
	ID uuid.UUID
}

func (d *DeleteGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Goals.Delete(ctx, d.ID)
}
