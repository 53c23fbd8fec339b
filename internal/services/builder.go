// Package services carries the application logic between the HTTP layer and
// the store: form validation, transaction shaping and registry rules.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"logisystem/internal/core"
)

// Registry is the slice of the store the services need.
type Registry interface {
	AccountByID(id int64) (core.Account, bool)
	EmployeeByID(id int64) (core.Employee, bool)
	AccountNameExists(name string) bool
	AddTransaction(ctx context.Context, tx core.Transaction) (core.Transaction, error)
	AddAccount(ctx context.Context, a core.Account) (core.Account, error)
	AddTruck(ctx context.Context, t core.Truck) (core.Truck, error)
	AddEmployee(ctx context.Context, e core.Employee) (core.Employee, error)
}

// TransactionForm is the flat user input for one income or expense entry.
// Validate checks the preconditions in a fixed order and reports only the
// first failure, matching the form's inline error display.
type TransactionForm struct {
	Type   core.TransactionType
	Date   string
	Amount int64

	// Income
	RouteID        string
	RoutePhotos    []string
	IncidentPhotos []string

	// Income complaint
	HasComplaint         bool
	IncidenceType        string
	ComplaintFolio       string
	ComplaintDescription string
	AffectedItems        int
	Responsible          string
	ComplaintDocURL      string

	// Expense
	Category   core.ExpenseCategory
	TruckPlate string

	// Expense: fuel
	Liters  float64
	Mileage int64

	// Expense: salary / advance
	EmployeeID     int64
	PaymentMonth   string
	LiquidationURL string

	// Expense: provider payment
	ProviderName  string
	ExternalPlate string

	AccountID   int64
	Description string
	Tags        []string
}

var (
	ErrAmountRequired        = errors.New("amount must be greater than zero")
	ErrRouteRequired         = errors.New("income requires a route")
	ErrAccountRequired       = errors.New("an account must be selected")
	ErrIncidenceTypeRequired = errors.New("complaint requires an incidence type")
	ErrProviderNameRequired  = errors.New("provider payment requires a provider name")
	ErrExternalPlateRequired = errors.New("provider payment requires the external plate")
	ErrTruckRequired         = errors.New("expense requires a truck")
	ErrUnknownAccount        = errors.New("unknown account")
	ErrUnknownEmployee       = errors.New("unknown employee")
)

func (f TransactionForm) Validate() error {
	if f.Amount <= 0 {
		return ErrAmountRequired
	}
	if f.Type == core.Income && f.RouteID == "" {
		return ErrRouteRequired
	}
	if f.AccountID == 0 {
		return ErrAccountRequired
	}
	if f.Type == core.Income && f.HasComplaint && f.IncidenceType == "" {
		return ErrIncidenceTypeRequired
	}
	if f.Type == core.Expense && f.Category == core.CategoryProvider {
		if f.ProviderName == "" {
			return ErrProviderNameRequired
		}
		if f.ExternalPlate == "" {
			return ErrExternalPlateRequired
		}
	}
	if f.Type == core.Expense && f.Category != core.CategoryProvider && f.TruckPlate == "" {
		return ErrTruckRequired
	}
	return nil
}

// Builder turns validated forms into stored transactions.
type Builder struct {
	registry Registry
	logger   *slog.Logger
}

func NewBuilder(registry Registry, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{registry: registry, logger: logger}
}

// Register validates the form, shapes the transaction and stores it. The
// account name and any employee name are copied onto the transaction at this
// point and never updated afterwards.
func (b *Builder) Register(ctx context.Context, form TransactionForm) (core.Transaction, error) {
	if err := form.Validate(); err != nil {
		return core.Transaction{}, err
	}

	account, ok := b.registry.AccountByID(form.AccountID)
	if !ok {
		return core.Transaction{}, ErrUnknownAccount
	}

	tx := core.Transaction{
		Type:        form.Type,
		Date:        form.Date,
		Amount:      core.Money{Units: form.Amount},
		Status:      core.StatusActive,
		AccountID:   account.ID,
		AccountName: account.Name,
		Description: form.Description,
		Tags:        core.JoinTags(form.Tags),
	}

	switch form.Type {
	case core.Income:
		if err := b.shapeIncome(&tx, form); err != nil {
			return core.Transaction{}, err
		}
	case core.Expense:
		if err := b.shapeExpense(&tx, form); err != nil {
			return core.Transaction{}, err
		}
	}

	if err := tx.Validate(); err != nil {
		return core.Transaction{}, err
	}

	created, err := b.registry.AddTransaction(ctx, tx)
	if err != nil {
		return created, err
	}

	b.logger.InfoContext(ctx, "Transaction registered",
		"id", created.ID,
		"type", created.Type,
		"amount", created.Amount.Units,
		"account", created.AccountName)
	return created, nil
}

func (b *Builder) shapeIncome(tx *core.Transaction, form TransactionForm) error {
	tx.TruckPlate = core.NormalizePlate(form.TruckPlate)
	if tx.Description == "" {
		tx.Description = "Ruta #" + form.RouteID
	}
	if len(form.RoutePhotos) > 0 || len(form.IncidentPhotos) > 0 {
		tx.Evidence = &core.Evidence{
			RoutePhotos:    form.RoutePhotos,
			IncidentPhotos: form.IncidentPhotos,
		}
	}
	if form.HasComplaint {
		tx.HasComplaint = true
		tx.Complaint = &core.ComplaintDetails{
			Folio:         form.ComplaintFolio,
			Description:   form.ComplaintDescription,
			IncidenceType: form.IncidenceType,
			AffectedItems: form.AffectedItems,
			Responsible:   form.Responsible,
			DocumentURL:   form.ComplaintDocURL,
		}
	}
	return nil
}

func (b *Builder) shapeExpense(tx *core.Transaction, form TransactionForm) error {
	tx.Category = form.Category
	tx.TruckPlate = core.NormalizePlate(form.TruckPlate)
	if tx.Description == "" {
		tx.Description = defaultDescription(form.Category)
	}

	switch form.Category {
	case core.CategoryFuel:
		tx.Fuel = &core.FuelDetails{
			Liters:  form.Liters,
			Mileage: form.Mileage,
		}
	case core.CategorySalary, core.CategoryAdvance:
		employee, ok := b.registry.EmployeeByID(form.EmployeeID)
		if !ok {
			return ErrUnknownEmployee
		}
		tx.Employee = &core.EmployeeDetails{
			EmployeeID:     employee.ID,
			EmployeeName:   employee.FullName,
			PaymentMonth:   form.PaymentMonth,
			LiquidationURL: form.LiquidationURL,
		}
	case core.CategoryProvider:
		tx.Provider = &core.ProviderDetails{
			ProviderName:  form.ProviderName,
			ExternalPlate: form.ExternalPlate,
		}
		tx.TruckPlate = core.NormalizePlate(form.ExternalPlate)
	}
	return nil
}

func defaultDescription(category core.ExpenseCategory) string {
	switch category {
	case core.CategoryFuel:
		return "Carga de combustible"
	case core.CategorySalary:
		return "Pago de sueldo"
	case core.CategoryAdvance:
		return "Anticipo de sueldo"
	case core.CategoryProvider:
		return "Pago a proveedor"
	case "":
		return "Gasto"
	default:
		return fmt.Sprintf("Gasto %s", category)
	}
}
