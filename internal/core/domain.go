// Package core holds the LogiSystem domain model: the four registry entities
// (employees, trucks, accounts, transactions) and their validation rules.
package core

import (
	"errors"
	"strings"
)

const (
	AccountBank AccountType = "banco"
	AccountCash AccountType = "efectivo"
)

type (
	AccountType string

	Employee struct {
		ID          int64  `json:"id"`
		FullName    string `json:"full_name"`
		NationalID  string `json:"national_id"`
		BirthDate   string `json:"birth_date"`
		JobTitle    string `json:"job_title"`
		ContractURL string `json:"contract_url,omitempty"`
	}

	Truck struct {
		ID           int64  `json:"id"`
		Plate        string `json:"plate"`
		Model        string `json:"model,omitempty"`
		IsOwn        bool   `json:"is_own"`
		ProviderName string `json:"provider_name,omitempty"`
		ContractURL  string `json:"contract_url,omitempty"`
		PhotoURL     string `json:"photo_url,omitempty"`
	}

	Account struct {
		ID     int64       `json:"id"`
		Name   string      `json:"name"`
		Type   AccountType `json:"type"`
		Active bool        `json:"active"`
	}
)

var (
	ErrEmptyName          = errors.New("empty name")
	ErrEmptyNationalID    = errors.New("empty national identifier")
	ErrEmptyPlate         = errors.New("empty plate")
	ErrProviderRequired   = errors.New("provider name required for non-own trucks")
	ErrContractRequired   = errors.New("contract document required for non-own trucks")
	ErrInvalidAccountType = errors.New("invalid account type")
)

// NormalizePlate returns the canonical uppercase, trimmed form of a license
// plate.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// SameAccountName reports whether two account display names collide under the
// trimmed, case-insensitive comparison applied before inserting a new account.
func SameAccountName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func (e Employee) Validate() error {
	if strings.TrimSpace(e.FullName) == "" {
		return ErrEmptyName
	}
	if strings.TrimSpace(e.NationalID) == "" {
		return ErrEmptyNationalID
	}
	return nil
}

func (t Truck) Validate() error {
	if strings.TrimSpace(t.Plate) == "" {
		return ErrEmptyPlate
	}
	if !t.IsOwn {
		if strings.TrimSpace(t.ProviderName) == "" {
			return ErrProviderRequired
		}
		if strings.TrimSpace(t.ContractURL) == "" {
			return ErrContractRequired
		}
	}
	return nil
}

func (a Account) Validate() error {
	if strings.TrimSpace(a.Name) == "" {
		return ErrEmptyName
	}
	switch a.Type {
	case AccountBank, AccountCash:
	default:
		return ErrInvalidAccountType
	}
	return nil
}
