package alert

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/finance"
	"github.com/carson-networks/finance-server/internal/handlers/handlerutil"
)

// Alert is the API response model for a limit alert.
type Alert struct {
	ID          string `json:"id" doc:"Alert UUID"`
	CategoryID  string `json:"categoryID" doc:"Category UUID"`
	Message     string `json:"message" doc:"Human readable alert"`
	AmountSpent string `json:"amountSpent" doc:"Month-to-date spend when the alert was raised"`
	LimitAmount string `json:"limitAmount" doc:"Monthly limit when the alert was raised"`
	Percentage  string `json:"percentage" doc:"Share of the limit spent"`
	Date        string `json:"date" doc:"Date of the transaction that raised the alert"`
	IsRead      bool   `json:"isRead" doc:"Whether the alert has been acknowledged"`
	CreatedAt   string `json:"createdAt" doc:"RFC3339 creation time"`
}

func toAlert(a finance.Alert) Alert {
	return Alert{
		ID:          a.ID.String(),
		CategoryID:  a.CategoryID.String(),
		Message:     a.Message,
		AmountSpent: handlerutil.FormatAmount(a.AmountSpent),
		LimitAmount: handlerutil.FormatAmount(a.LimitAmount),
		Percentage:  a.Percentage.StringFixed(1),
		Date:        handlerutil.FormatDate(a.Date),
		IsRead:      a.IsRead,
		CreatedAt:   handlerutil.FormatTimestamp(a.CreatedAt),
	}
}

type alertService interface {
	ListAlerts(ctx context.Context) ([]finance.Alert, error)
	MarkAlertRead(ctx context.Context, id uuid.UUID) (finance.Alert, error)
}

type ListAlertsOutput struct {
	Body []Alert
}

type MarkAlertReadInput struct {
	ID string `path:"id" format:"uuid" doc:"Alert UUID"`
}

type MarkAlertReadOutput struct {
	Body Alert
}

// Handler serves the alert endpoints.
type Handler struct {
	AlertService alertService
}

func NewHandler(svc alertService) *Handler {
	return &Handler{AlertService: svc}
}

func (h *Handler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-alerts",
		Method:      http.MethodGet,
		Path:        "/api/alerts",
		Summary:     "List alerts",
		Description: "Returns the 100 most recent limit alerts, newest first.",
		Tags:        []string{"Alerts"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "mark-alert-read",
		Method:      http.MethodPut,
		Path:        "/api/alerts/{id}/read",
		Summary:     "Mark alert read",
		Tags:        []string{"Alerts"},
	}, h.markRead)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*ListAlertsOutput, error) {
	alerts, err := h.AlertService.ListAlerts(ctx)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list alerts", err)
	}

	resp := make([]Alert, len(alerts))
	for i, a := range alerts {
		resp[i] = toAlert(a)
	}
	return &ListAlertsOutput{Body: resp}, nil
}

func (h *Handler) markRead(ctx context.Context, input *MarkAlertReadInput) (*MarkAlertReadOutput, error) {
	id, err := handlerutil.ParseID("id", input.ID)
	if err != nil {
		return nil, err
	}

	alert, err := h.AlertService.MarkAlertRead(ctx, id)
	if err != nil {
		return nil, handlerutil.ServiceError(err, "alert", "mark alert read")
	}
	return &MarkAlertReadOutput{Body: toAlert(alert)}, nil
}
