package core

import (
	"errors"
	"strings"
)

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

const (
	StatusActive TransactionStatus = "active"
	StatusVoided TransactionStatus = "voided"
)

// Expense categories carried over from the original back office. Provider
// payments reference an external truck's plate; every other expense references
// one of the company's own trucks.
const (
	CategoryFuel     ExpenseCategory = "Combustible"
	CategorySalary   ExpenseCategory = "Sueldo"
	CategoryAdvance  ExpenseCategory = "Anticipo"
	CategoryProvider ExpenseCategory = "pago_proveedor"
	CategoryTolls    ExpenseCategory = "Peajes"
	CategoryRepairs  ExpenseCategory = "Reparaciones"
	CategoryOther    ExpenseCategory = "Otros"
)

type (
	TransactionType   string
	TransactionStatus string
	ExpenseCategory   string

	// Evidence groups photo attachments for income transactions in the current
	// structured shape. The flat Photos list on Transaction is the legacy shape
	// still present in older snapshots.
	Evidence struct {
		RoutePhotos    []string `json:"routePhotos"`
		IncidentPhotos []string `json:"incidentPhotos"`
	}

	FuelDetails struct {
		Liters  float64 `json:"liters"`
		Mileage int64   `json:"mileage"`
	}

	EmployeeDetails struct {
		EmployeeID     int64  `json:"employee_id"`
		EmployeeName   string `json:"employee_name"`
		PaymentMonth   string `json:"payment_month"`
		LiquidationURL string `json:"liquidation_url,omitempty"`
	}

	ProviderDetails struct {
		ProviderName  string `json:"provider_name"`
		ExternalPlate string `json:"external_plate"`
	}

	ComplaintDetails struct {
		Folio         string `json:"folio"`
		Description   string `json:"description"`
		IncidenceType string `json:"incidence_type"`
		AffectedItems int    `json:"affected_items"`
		Responsible   string `json:"responsible,omitempty"`
		DocumentURL   string `json:"document_url,omitempty"`
	}

	// Transaction is one income or expense movement. AccountName and the
	// employee name inside EmployeeDetails are snapshots taken at creation
	// time; renaming the source entity later does not rewrite history.
	Transaction struct {
		ID           int64             `json:"id"`
		Type         TransactionType   `json:"type"`
		Date         string            `json:"date"`
		TruckPlate   string            `json:"truck_plate,omitempty"`
		Amount       Money             `json:"amount"`
		Description  string            `json:"description"`
		Status       TransactionStatus `json:"status"`
		AccountID    int64             `json:"account_id"`
		AccountName  string            `json:"account_name"`
		Tags         string            `json:"tags,omitempty"`
		Photos       []string          `json:"photos,omitempty"`
		Evidence     *Evidence         `json:"evidence,omitempty"`
		Category     ExpenseCategory   `json:"category,omitempty"`
		Fuel         *FuelDetails      `json:"fuelDetails,omitempty"`
		Employee     *EmployeeDetails  `json:"employeeDetails,omitempty"`
		Provider     *ProviderDetails  `json:"providerDetails,omitempty"`
		HasComplaint bool              `json:"hasComplaint,omitempty"`
		Complaint    *ComplaintDetails `json:"complaintDetails,omitempty"`
	}
)

var (
	ErrInvalidType       = errors.New("invalid transaction type")
	ErrInvalidStatus     = errors.New("invalid transaction status")
	ErrMissingAccount    = errors.New("transaction requires an account")
	ErrDetailMismatch    = errors.New("expense details do not match category")
	ErrComplaintMismatch = errors.New("complaint details require the complaint flag on an income transaction")
	ErrEvidenceOnExpense = errors.New("photo evidence is only kept on income transactions")
)

func (t Transaction) Validate() error {
	switch t.Type {
	case Income, Expense:
	default:
		return ErrInvalidType
	}
	switch t.Status {
	case "", StatusActive, StatusVoided:
	default:
		return ErrInvalidStatus
	}
	if err := t.Amount.Validate(); err != nil {
		return err
	}
	if t.AccountID == 0 {
		return ErrMissingAccount
	}
	if t.HasComplaint != (t.Complaint != nil) {
		return ErrComplaintMismatch
	}
	if t.Complaint != nil && t.Type != Income {
		return ErrComplaintMismatch
	}
	if (t.Evidence != nil || len(t.Photos) > 0) && t.Type != Income {
		return ErrEvidenceOnExpense
	}
	return t.validateDetails()
}

// validateDetails enforces that at most one of fuel/employee/provider details
// is present, only on expenses, and only for the matching category.
func (t Transaction) validateDetails() error {
	n := 0
	if t.Fuel != nil {
		n++
	}
	if t.Employee != nil {
		n++
	}
	if t.Provider != nil {
		n++
	}
	if n > 1 {
		return ErrDetailMismatch
	}
	if n > 0 && t.Type != Expense {
		return ErrDetailMismatch
	}
	switch t.Category {
	case CategoryFuel:
		if t.Employee != nil || t.Provider != nil {
			return ErrDetailMismatch
		}
	case CategorySalary, CategoryAdvance:
		if t.Fuel != nil || t.Provider != nil {
			return ErrDetailMismatch
		}
	case CategoryProvider:
		if t.Provider == nil || t.Fuel != nil || t.Employee != nil {
			return ErrDetailMismatch
		}
	default:
		if n > 0 {
			return ErrDetailMismatch
		}
	}
	return nil
}

// Voided reports whether the transaction has been voided. Voiding is the only
// undo mechanism and is non-destructive: the record stays in the collection.
func (t Transaction) Voided() bool {
	return t.Status == StatusVoided
}

// JoinTags flattens selected tag labels into the single comma-and-space string
// stored on the transaction. Insertion order is preserved, duplicates are kept
// and the transform is one-way: consumers that need the labels back must split
// on ", " and tolerate an empty field.
func JoinTags(tags []string) string {
	kept := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		kept = append(kept, tag)
	}
	return strings.Join(kept, ", ")
}
