package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// AlertListLimit caps how many alerts ListAlerts returns.
const AlertListLimit = 100

type AlertService struct {
	reader   *storage.Reader
	operator Processor
}

func NewAlertService(reader *storage.Reader, operator Processor) *AlertService {
	return &AlertService{reader: reader, operator: operator}
}

// ListAlerts returns the most recent alerts, newest first.
func (s *AlertService) ListAlerts(ctx context.Context) ([]finance.Alert, error) {
	return s.reader.Alerts.List(ctx, AlertListLimit)
}

func (s *AlertService) MarkAlertRead(ctx context.Context, id uuid.UUID) (finance.Alert, error) {
	action := &actions.MarkAlertRead{ID: id}
	if err := s.operator.Process(ctx, action); err != nil {
		return finance.Alert{}, err
	}
	return action.Result, nil
}
