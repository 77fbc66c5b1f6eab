package goal

import (
	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/handlers/handlerutil"
)

// Goal is the API response model for a savings goal.
type Goal struct {
	ID            string  `json:"id" doc:"Goal UUID"`
	Title         string  `json:"title" doc:"Goal title"`
	Description   *string `json:"description,omitempty" doc:"Free-form description"`
	TargetAmount  string  `json:"targetAmount" doc:"Decimal amount to reach"`
	CurrentAmount string  `json:"currentAmount" doc:"Decimal amount saved so far"`
	TargetDate    *string `json:"targetDate,omitempty" doc:"Calendar date, YYYY-MM-DD"`
	CreatedAt     string  `json:"createdAt" doc:"RFC3339 creation time"`
}

// GoalBody holds the fields shared by create and update requests.
type GoalBody struct {
	Title        string  `json:"title" required:"true" minLength:"1" doc:"Goal title"`
	Description  *string `json:"description,omitempty" doc:"Free-form description"`
	TargetAmount string  `json:"targetAmount" required:"true" doc:"Decimal amount to reach"`
	TargetDate   *string `json:"targetDate,omitempty" format:"date" doc:"Calendar date, YYYY-MM-DD"`
}

func toGoal(g finance.Goal) Goal {
	resp := Goal{
		ID:            g.ID.String(),
		Title:         g.Title,
		Description:   g.Description,
		TargetAmount:  handlerutil.FormatAmount(g.TargetAmount),
		CurrentAmount: handlerutil.FormatAmount(g.CurrentAmount),
		CreatedAt:     handlerutil.FormatTimestamp(g.CreatedAt),
	}
	if g.TargetDate != nil {
		date := handlerutil.FormatDate(*g.TargetDate)
		resp.TargetDate = &date
	}
	return resp
}

func parseGoalBody(body GoalBody) (finance.Goal, error) {
	target, err := handlerutil.ParseAmount("targetAmount", body.TargetAmount)
	if err != nil {
		return finance.Goal{}, err
	}

	goal := finance.Goal{
		Title:        body.Title,
		Description:  body.Description,
		TargetAmount: target,
	}
	if body.TargetDate != nil {
		date, err := handlerutil.ParseDate("targetDate", *body.TargetDate)
		if err != nil {
			return finance.Goal{}, err
		}
		goal.TargetDate = &date
	}
	return goal, nil
}
