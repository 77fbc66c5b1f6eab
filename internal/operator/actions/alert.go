package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/storage"
)

type MarkAlertRead struct {
	ID uuid.UUID

	Result finance.Alert
}

func (m *MarkAlertRead) Perform(ctx context.Context, writer *storage.Writer) error {
	var err error
	m.Result, err = writer.Alerts.MarkRead(ctx, m.ID)
	return err
}
