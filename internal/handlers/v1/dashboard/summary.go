package dashboard

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/handlers/handlerutil"
	"github.com/carson-networks/finance-server/internal/logging"
)

type CategorySpend struct {
	CategoryID string `json:"categoryID" doc:"Category UUID"`
	Category   string `json:"category" doc:"Category name"`
	Amount     string `json:"amount" doc:"Current month expense total"`
	Color      string `json:"color" doc:"Hex display color"`
}

type RecentTransaction struct {
	ID           string  `json:"id" doc:"Transaction UUID"`
	Description  string  `json:"description"`
	Amount       string  `json:"amount"`
	Type         string  `json:"type" enum:"income,expense"`
	CategoryID   string  `json:"categoryID"`
	CategoryName *string `json:"categoryName,omitempty" doc:"Absent when the category was deleted"`
	Date         string  `json:"date"`
	CreatedAt    string  `json:"createdAt"`
}

// Summary is the API response model for the dashboard.
type Summary struct {
	TotalBalance       string              `json:"totalBalance" doc:"All-time income minus expenses"`
	TotalIncome        string              `json:"totalIncome"`
	TotalExpenses      string              `json:"totalExpenses"`
	MonthlyBalance     string              `json:"monthlyBalance" doc:"Current month income minus expenses"`
	MonthlyIncome      string              `json:"monthlyIncome"`
	MonthlyExpenses    string              `json:"monthlyExpenses"`
	CategorySpending   []CategorySpend     `json:"categorySpending" doc:"Current month expenses per existing category"`
	RecentTransactions []RecentTransaction `json:"recentTransactions" doc:"Up to 10 most recent transactions"`
}

type SummaryOutput struct {
	Body Summary
}

type summarizer interface {
	Summary(ctx context.Context) (finance.Summary, error)
}

// SummaryHandler handles GET /api/dashboard/summary.
type SummaryHandler struct {
	DashboardService summarizer
}

func NewSummaryHandler(svc summarizer) *SummaryHandler {
	return &SummaryHandler{DashboardService: svc}
}

func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "dashboard-summary",
		Method:      http.MethodGet,
		Path:        "/api/dashboard/summary",
		Summary:     "Dashboard summary",
		Description: "Aggregates balances, the current month's figures, category spending and recent transactions.",
		Tags:        []string{"Dashboard"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, _ *struct{}) (*SummaryOutput, error) {
	summary, err := h.DashboardService.Summary(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to build dashboard summary", err)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("recentCount", len(summary.RecentTransactions))
	}

	return &SummaryOutput{Body: toSummary(summary)}, nil
}

func toSummary(s finance.Summary) Summary {
	resp := Summary{
		TotalBalance:       handlerutil.FormatAmount(s.TotalBalance),
		TotalIncome:        handlerutil.FormatAmount(s.TotalIncome),
		TotalExpenses:      handlerutil.FormatAmount(s.TotalExpenses),
		MonthlyBalance:     handlerutil.FormatAmount(s.MonthlyBalance),
		MonthlyIncome:      handlerutil.FormatAmount(s.MonthlyIncome),
		MonthlyExpenses:    handlerutil.FormatAmount(s.MonthlyExpenses),
		CategorySpending:   make([]CategorySpend, len(s.CategorySpending)),
		RecentTransactions: make([]RecentTransaction, len(s.RecentTransactions)),
	}
	for i, c := range s.CategorySpending {
		resp.CategorySpending[i] = CategorySpend{
			CategoryID: c.CategoryID.String(),
			Category:   c.Category,
			Amount:     handlerutil.FormatAmount(c.Amount),
			Color:      c.Color,
		}
	}
	for i, r := range s.RecentTransactions {
		resp.RecentTransactions[i] = RecentTransaction{
			ID:           r.ID.String(),
			Description:  r.Description,
			Amount:       handlerutil.FormatAmount(r.Amount),
			Type:         string(r.Type),
			CategoryID:   r.CategoryID.String(),
			CategoryName: r.CategoryName,
			Date:         handlerutil.FormatDate(r.Date),
			CreatedAt:    handlerutil.FormatTimestamp(r.CreatedAt),
		}
	}
	return resp
}
