package service

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

type GoalService struct {
	reader   *storage.Reader
	operator Processor
}

func NewGoalService(reader *storage.Reader, operator Processor) *GoalService {
	return &GoalService{reader: reader, operator: operator}
}

func (s *GoalService) CreateGoal(ctx context.Context, goal finance.Goal) (finance.Goal, error) {
	action := &actions.CreateGoal{Goal: goal}
	if err := s.operator.Process(ctx, action); err != nil {
		return finance.Goal{}, err
	}
	return action.Result, nil
}

func (s *GoalService) ListGoals(ctx context.Context) ([]finance.Goal, error) {
	return s.reader.Goals.List(ctx)
}

// UpdateGoal keeps the stored progress unless currentAmount is given.
func (s *GoalService) UpdateGoal(ctx context.Context, goal finance.Goal, currentAmount *decimal.Decimal) (finance.Goal, error) {
	action := &actions.UpdateGoal{Goal: goal, CurrentAmount: currentAmount}
	if err := s.operator.Process(ctx, action); err != nil {
		return finance.Goal{}, err
	}
	return action.Result, nil
}

func (s *GoalService) DeleteGoal(ctx context.Context, id uuid.UUID) error {
	return s.operator.Process(ctx, &actions.DeleteGoal{ID: id})
}
