package category

import (
	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/handlers/handlerutil"
)

// Category is the API response model for a category.
type Category struct {
	ID           string  `json:"id" doc:"Category UUID"`
	Name         string  `json:"name" doc:"Category name"`
	Type         string  `json:"type" enum:"income,expense" doc:"Transaction type the category groups"`
	LimitEnabled bool    `json:"limitEnabled" doc:"Whether monthly limit alerts are raised"`
	MonthlyLimit *string `json:"monthlyLimit,omitempty" doc:"Decimal monthly spending limit"`
	Color        string  `json:"color" doc:"Hex display color"`
	CreatedAt    string  `json:"createdAt" doc:"RFC3339 creation time"`
}

// CategoryBody is the request body for creating or replacing a category.
type CategoryBody struct {
	Name         string  `json:"name" required:"true" minLength:"1" doc:"Category name"`
	Type         string  `json:"type" required:"true" enum:"income,expense" doc:"Transaction type the category groups"`
	LimitEnabled bool    `json:"limitEnabled,omitempty" doc:"Whether monthly limit alerts are raised"`
	MonthlyLimit *string `json:"monthlyLimit,omitempty" doc:"Decimal monthly spending limit"`
	Color        string  `json:"color,omitempty" pattern:"^#[0-9A-Fa-f]{6}$" doc:"Hex display color, defaults to #3B82F6"`
}

func toCategory(c finance.Category) Category {
	resp := Category{
		ID:           c.ID.String(),
		Name:         c.Name,
		Type:         string(c.Type),
		LimitEnabled: c.LimitEnabled,
		Color:        c.Color,
		CreatedAt:    handlerutil.FormatTimestamp(c.CreatedAt),
	}
	if c.MonthlyLimit.Valid {
		limit := handlerutil.FormatAmount(c.MonthlyLimit.Decimal)
		resp.MonthlyLimit = &limit
	}
	return resp
}

// parseCategoryBody converts the request body into a domain category without an ID.
func parseCategoryBody(body CategoryBody) (finance.Category, error) {
	category := finance.Category{
		Name:         body.Name,
		Type:         finance.TransactionType(body.Type),
		LimitEnabled: body.LimitEnabled,
		Color:        body.Color,
	}
	if body.MonthlyLimit != nil {
		limit, err := handlerutil.ParseAmount("monthlyLimit", *body.MonthlyLimit)
		if err != nil {
			return finance.Category{}, err
		}
		category.MonthlyLimit.Decimal = limit
		category.MonthlyLimit.Valid = true
	}
	return category, nil
}
