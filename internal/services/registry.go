package services

import (
	"context"
	"errors"
	"strings"

	"logisystem/internal/core"
)

var ErrDuplicateAccountName = errors.New("an account with this name already exists")

// RegistryService applies the registry rules before handing entities to the
// store. Account names must be unique case-insensitively; truck plates and
// employee national IDs are intentionally not checked for duplicates, the
// original registry allowed them.
type RegistryService struct {
	registry Registry
}

func NewRegistryService(registry Registry) *RegistryService {
	return &RegistryService{registry: registry}
}

func (r *RegistryService) AddAccount(ctx context.Context, a core.Account) (core.Account, error) {
	a.Name = strings.TrimSpace(a.Name)
	if err := a.Validate(); err != nil {
		return core.Account{}, err
	}
	if r.registry.AccountNameExists(a.Name) {
		return core.Account{}, ErrDuplicateAccountName
	}
	return r.registry.AddAccount(ctx, a)
}

func (r *RegistryService) AddTruck(ctx context.Context, t core.Truck) (core.Truck, error) {
	t.Plate = core.NormalizePlate(t.Plate)
	if err := t.Validate(); err != nil {
		return core.Truck{}, err
	}
	return r.registry.AddTruck(ctx, t)
}

func (r *RegistryService) AddEmployee(ctx context.Context, e core.Employee) (core.Employee, error) {
	e.FullName = strings.TrimSpace(e.FullName)
	if err := e.Validate(); err != nil {
		return core.Employee{}, err
	}
	return r.registry.AddEmployee(ctx, e)
}
