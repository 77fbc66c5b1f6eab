package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/notifier"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// TransactionService handles transaction business logic, including the
// limit check that runs when an expense is recorded.
type TransactionService struct {
	reader    *storage.Reader
	operator  Processor
	publisher notifier.AlertPublisher
	monitor   *finance.LimitMonitor
	clock     func() time.Time
	log       *logrus.Logger
}

func NewTransactionService(deps Dependencies) *TransactionService {
	return &TransactionService{
		reader:    deps.Reader,
		operator:  deps.Operator,
		publisher: deps.Publisher,
		monitor:   deps.Monitor,
		clock:     deps.Clock,
		log:       deps.Log,
	}
}

// CreateTransaction stores the transaction and returns it along with the
// alert it raised, if any. The alert is published once the write has been
// committed; a failed publish is logged and does not fail the call.
func (s *TransactionService) CreateTransaction(ctx context.Context, transaction finance.Transaction) (finance.Transaction, *finance.Alert, error) {
	action := &actions.CreateTransaction{
		Transaction: transaction,
		Monitor:     s.monitor,
		Clock:       s.clock,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return finance.Transaction{}, nil, err
	}

	if action.Alert != nil {
		endTimer := logging.StartTiming(ctx, "publishAlertMs")
		if err := s.publisher.Publish(ctx, *action.Alert); err != nil {
			s.log.WithError(err).WithField("alertID", action.Alert.ID.String()).
				Warn("TransactionService.PublishAlert")
		}
		endTimer()
	}

	return action.Result, action.Alert, nil
}

// ListTransactions returns every transaction, newest date first.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]finance.Transaction, error) {
	defer logging.StartTiming(ctx, "listTransactionsMs")()
	return s.reader.Transactions.List(ctx)
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, transaction finance.Transaction) (finance.Transaction, error) {
	action := &actions.UpdateTransaction{Transaction: transaction}
	if err := s.operator.Process(ctx, action); err != nil {
		return finance.Transaction{}, err
	}
	return action.Result, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return s.operator.Process(ctx, &actions.DeleteTransaction{ID: id})
}
