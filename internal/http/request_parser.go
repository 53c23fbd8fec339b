package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"logisystem/internal/core"
	"logisystem/internal/services"
)

func decodeBody(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

// transactionRequest is the wire shape of a transaction entry. The amount
// arrives as the user typed it, thousands separators included.
type transactionRequest struct {
	Type   string `json:"type"`
	Date   string `json:"date"`
	Amount string `json:"amount"`

	RouteID        string   `json:"route_id"`
	RoutePhotos    []string `json:"routePhotos"`
	IncidentPhotos []string `json:"incidentPhotos"`

	HasComplaint         bool   `json:"hasComplaint"`
	IncidenceType        string `json:"incidence_type"`
	ComplaintFolio       string `json:"complaint_folio"`
	ComplaintDescription string `json:"complaint_description"`
	AffectedItems        int    `json:"affected_items"`
	Responsible          string `json:"responsible"`
	ComplaintDocURL      string `json:"complaint_doc_url"`

	Category   string  `json:"category"`
	TruckPlate string  `json:"truck_plate"`
	Liters     float64 `json:"liters"`
	Mileage    int64   `json:"mileage"`

	EmployeeID     int64  `json:"employee_id"`
	PaymentMonth   string `json:"payment_month"`
	LiquidationURL string `json:"liquidation_url"`

	ProviderName  string `json:"provider_name"`
	ExternalPlate string `json:"external_plate"`

	AccountID   int64    `json:"account_id"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// parseTransactionForm decodes and sanitizes the request body into a form.
// Amount parsing failures are mapped to the form's amount precondition so the
// client sees a single error shape.
func parseTransactionForm(r *http.Request) (services.TransactionForm, error) {
	var req transactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return services.TransactionForm{}, fmt.Errorf("decode request: %w", err)
	}

	amount, err := core.ParseAmount(req.Amount)
	if err != nil && strings.TrimSpace(req.Amount) != "" {
		return services.TransactionForm{}, err
	}

	return services.TransactionForm{
		Type:   core.TransactionType(strings.TrimSpace(req.Type)),
		Date:   strings.TrimSpace(req.Date),
		Amount: amount,

		RouteID:        strings.TrimSpace(req.RouteID),
		RoutePhotos:    req.RoutePhotos,
		IncidentPhotos: req.IncidentPhotos,

		HasComplaint:         req.HasComplaint,
		IncidenceType:        strings.TrimSpace(req.IncidenceType),
		ComplaintFolio:       strings.TrimSpace(req.ComplaintFolio),
		ComplaintDescription: strings.TrimSpace(req.ComplaintDescription),
		AffectedItems:        req.AffectedItems,
		Responsible:          strings.TrimSpace(req.Responsible),
		ComplaintDocURL:      strings.TrimSpace(req.ComplaintDocURL),

		Category:   core.ExpenseCategory(strings.TrimSpace(req.Category)),
		TruckPlate: strings.TrimSpace(req.TruckPlate),
		Liters:     req.Liters,
		Mileage:    req.Mileage,

		EmployeeID:     req.EmployeeID,
		PaymentMonth:   strings.TrimSpace(req.PaymentMonth),
		LiquidationURL: strings.TrimSpace(req.LiquidationURL),

		ProviderName:  strings.TrimSpace(req.ProviderName),
		ExternalPlate: strings.TrimSpace(req.ExternalPlate),

		AccountID:   req.AccountID,
		Description: strings.TrimSpace(req.Description),
		Tags:        req.Tags,
	}, nil
}
