package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/storage"
)

// UpdateTransaction replaces the transaction fields. Limits are not re-evaluated.
type UpdateTransaction struct {
	Transaction finance.Transaction

	Result finance.Transaction
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	t := u.Transaction
	t.Date = finance.DateOf(t.Date)

	var err error
	u.Result, err = writer.Transactions.Update(ctx, t)
	return err
}

type DeleteTransaction struct {
	ID uuid.UUID
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	return writer.Transactions.Delete(ctx, d.ID)
}
