package services

import (
	"context"
	"errors"
	"testing"

	"logisystem/internal/core"
	"logisystem/internal/seed"
	"logisystem/internal/storage"
	"logisystem/internal/store"
)

func testRegistry(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(context.Background(), storage.NewMemoryBackend(), seed.Default(), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return s
}

func incomeForm() TransactionForm {
	return TransactionForm{
		Type:      core.Income,
		Date:      "2025-06-01",
		Amount:    450000,
		RouteID:   "99420",
		AccountID: 1,
	}
}

func TestFormValidateOrder(t *testing.T) {
	tests := []struct {
		name    string
		form    TransactionForm
		wantErr error
	}{
		{
			name:    "amount checked first",
			form:    TransactionForm{Type: core.Income},
			wantErr: ErrAmountRequired,
		},
		{
			name:    "income requires route before account",
			form:    TransactionForm{Type: core.Income, Amount: 100},
			wantErr: ErrRouteRequired,
		},
		{
			name:    "account required",
			form:    TransactionForm{Type: core.Income, Amount: 100, RouteID: "1"},
			wantErr: ErrAccountRequired,
		},
		{
			name: "complaint requires incidence type",
			form: TransactionForm{
				Type: core.Income, Amount: 100, RouteID: "1", AccountID: 1,
				HasComplaint: true,
			},
			wantErr: ErrIncidenceTypeRequired,
		},
		{
			name: "provider payment requires name before plate",
			form: TransactionForm{
				Type: core.Expense, Amount: 100, AccountID: 1,
				Category: core.CategoryProvider, ExternalPlate: "XY-ZW-99",
			},
			wantErr: ErrProviderNameRequired,
		},
		{
			name: "provider payment requires external plate",
			form: TransactionForm{
				Type: core.Expense, Amount: 100, AccountID: 1,
				Category: core.CategoryProvider, ProviderName: "Transportes del Sur",
			},
			wantErr: ErrExternalPlateRequired,
		},
		{
			name: "other expenses require a truck",
			form: TransactionForm{
				Type: core.Expense, Amount: 100, AccountID: 1,
				Category: core.CategoryFuel,
			},
			wantErr: ErrTruckRequired,
		},
		{
			name: "valid fuel expense",
			form: TransactionForm{
				Type: core.Expense, Amount: 100, AccountID: 1,
				Category: core.CategoryFuel, TruckPlate: "AB-CD-12",
			},
		},
		{
			name: "valid income",
			form: incomeForm(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.form.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterIncomeDefaultsDescription(t *testing.T) {
	b := NewBuilder(testRegistry(t), nil)

	tx, err := b.Register(context.Background(), incomeForm())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if tx.Description != "Ruta #99420" {
		t.Errorf("Description = %q, want Ruta #99420", tx.Description)
	}
	if tx.AccountName != "Banco Estado" {
		t.Errorf("AccountName = %q, want snapshot from account 1", tx.AccountName)
	}
	if tx.Status != core.StatusActive {
		t.Errorf("Status = %s, want active", tx.Status)
	}
}

func TestRegisterIncomeKeepsExplicitDescription(t *testing.T) {
	b := NewBuilder(testRegistry(t), nil)
	form := incomeForm()
	form.Description = "Flete especial"

	tx, err := b.Register(context.Background(), form)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if tx.Description != "Flete especial" {
		t.Errorf("Description = %q, want Flete especial", tx.Description)
	}
}

func TestRegisterIncomeWithEvidenceAndComplaint(t *testing.T) {
	b := NewBuilder(testRegistry(t), nil)
	form := incomeForm()
	form.RoutePhotos = []string{"ruta1.jpg"}
	form.IncidentPhotos = []string{"incidente1.jpg"}
	form.HasComplaint = true
	form.IncidenceType = "derrame"
	form.ComplaintFolio = "F-2025-17"
	form.AffectedItems = 3

	tx, err := b.Register(context.Background(), form)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if tx.Evidence == nil || len(tx.Evidence.RoutePhotos) != 1 || len(tx.Evidence.IncidentPhotos) != 1 {
		t.Errorf("Evidence = %+v, want both photo lists", tx.Evidence)
	}
	if !tx.HasComplaint || tx.Complaint == nil {
		t.Fatal("complaint flag and details should both be set")
	}
	if tx.Complaint.IncidenceType != "derrame" || tx.Complaint.AffectedItems != 3 {
		t.Errorf("Complaint = %+v", tx.Complaint)
	}
}

func TestRegisterIncomeCarriesTruckPlate(t *testing.T) {
	b := NewBuilder(testRegistry(t), nil)
	form := incomeForm()
	form.TruckPlate = "ab-cd-12"

	tx, err := b.Register(context.Background(), form)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if tx.TruckPlate != "AB-CD-12" {
		t.Errorf("TruckPlate = %q, want normalized AB-CD-12", tx.TruckPlate)
	}
}

func TestRegisterUncategorizedExpenseDescription(t *testing.T) {
	b := NewBuilder(testRegistry(t), nil)
	form := TransactionForm{
		Type: core.Expense, Amount: 20000, AccountID: 2,
		TruckPlate: "AB-CD-12",
	}

	tx, err := b.Register(context.Background(), form)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if tx.Description != "Gasto" {
		t.Errorf("Description = %q, want Gasto without trailing space", tx.Description)
	}
}

func TestRegisterFuelExpense(t *testing.T) {
	b := NewBuilder(testRegistry(t), nil)
	form := TransactionForm{
		Type: core.Expense, Amount: 85000, AccountID: 2,
		Category: core.CategoryFuel, TruckPlate: "ab-cd-12",
		Liters: 120.5, Mileage: 85000,
	}

	tx, err := b.Register(context.Background(), form)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if tx.TruckPlate != "AB-CD-12" {
		t.Errorf("TruckPlate = %q, want normalized AB-CD-12", tx.TruckPlate)
	}
	if tx.Description != "Carga de combustible" {
		t.Errorf("Description = %q", tx.Description)
	}
	if tx.Fuel == nil || tx.Fuel.Liters != 120.5 || tx.Fuel.Mileage != 85000 {
		t.Errorf("Fuel = %+v", tx.Fuel)
	}
}

func TestRegisterSalaryExpenseDenormalizesEmployee(t *testing.T) {
	b := NewBuilder(testRegistry(t), nil)
	form := TransactionForm{
		Type: core.Expense, Amount: 650000, AccountID: 1,
		Category: core.CategorySalary, TruckPlate: "AB-CD-12",
		EmployeeID: 1, PaymentMonth: "2025-05",
	}

	tx, err := b.Register(context.Background(), form)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if tx.Description != "Pago de sueldo" {
		t.Errorf("Description = %q", tx.Description)
	}
	if tx.Employee == nil || tx.Employee.EmployeeName != "Pedro Soto Rivas" {
		t.Errorf("Employee = %+v, want name snapshot", tx.Employee)
	}
}

func TestRegisterSalaryExpenseUnknownEmployee(t *testing.T) {
	b := NewBuilder(testRegistry(t), nil)
	form := TransactionForm{
		Type: core.Expense, Amount: 650000, AccountID: 1,
		Category: core.CategorySalary, TruckPlate: "AB-CD-12",
		EmployeeID: 999,
	}

	_, err := b.Register(context.Background(), form)
	if !errors.Is(err, ErrUnknownEmployee) {
		t.Errorf("Register error = %v, want ErrUnknownEmployee", err)
	}
}

func TestRegisterProviderExpenseUsesExternalPlate(t *testing.T) {
	b := NewBuilder(testRegistry(t), nil)
	form := TransactionForm{
		Type: core.Expense, Amount: 300000, AccountID: 1,
		Category:      core.CategoryProvider,
		ProviderName:  "Transportes del Sur",
		ExternalPlate: "xy-zw-99",
	}

	tx, err := b.Register(context.Background(), form)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if tx.TruckPlate != "XY-ZW-99" {
		t.Errorf("TruckPlate = %q, want the normalized external plate", tx.TruckPlate)
	}
	if tx.Provider == nil || tx.Provider.ProviderName != "Transportes del Sur" {
		t.Errorf("Provider = %+v", tx.Provider)
	}
	if tx.Description != "Pago a proveedor" {
		t.Errorf("Description = %q", tx.Description)
	}
}

func TestRegisterUnknownAccount(t *testing.T) {
	b := NewBuilder(testRegistry(t), nil)
	form := incomeForm()
	form.AccountID = 999

	_, err := b.Register(context.Background(), form)
	if !errors.Is(err, ErrUnknownAccount) {
		t.Errorf("Register error = %v, want ErrUnknownAccount", err)
	}
}

func TestRegisterJoinsTags(t *testing.T) {
	b := NewBuilder(testRegistry(t), nil)
	form := incomeForm()
	form.Tags = []string{"urgente", "", " norte "}

	tx, err := b.Register(context.Background(), form)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if tx.Tags != "urgente, norte" {
		t.Errorf("Tags = %q, want \"urgente, norte\"", tx.Tags)
	}
}
