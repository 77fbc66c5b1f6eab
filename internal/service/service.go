package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/notifier"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// Processor runs a write action inside a storage transaction.
// *operator.OperatorDelegator satisfies it.
type Processor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Dependencies are the collaborators shared by every service.
type Dependencies struct {
	Reader    *storage.Reader
	Operator  Processor
	Publisher notifier.AlertPublisher
	Monitor   *finance.LimitMonitor
	Clock     func() time.Time
	Log       *logrus.Logger
}

// Service holds all business logic services.
type Service struct {
	Category    *CategoryService
	Transaction *TransactionService
	Goal        *GoalService
	Alert       *AlertService
	Dashboard   *DashboardService
}

// nowUTC keeps month boundaries aligned with the UTC calendar dates storage returns.
func nowUTC() time.Time {
	return time.Now().UTC()
}

func NewService(deps Dependencies) *Service {
	if deps.Clock == nil {
		deps.Clock = nowUTC
	}
	if deps.Publisher == nil {
		deps.Publisher = notifier.NoopPublisher{}
	}
	if deps.Monitor == nil {
		deps.Monitor = finance.NewLimitMonitor("")
	}
	if deps.Log == nil {
		deps.Log = logrus.StandardLogger()
	}

	return &Service{
		Category:    NewCategoryService(deps.Reader, deps.Operator),
		Transaction: NewTransactionService(deps),
		Goal:        NewGoalService(deps.Reader, deps.Operator),
		Alert:       NewAlertService(deps.Reader, deps.Operator),
		Dashboard:   NewDashboardService(deps.Reader, deps.Clock),
	}
}
