// Package seed provides the demo dataset the store falls back to when no
// snapshot exists or a snapshot cannot be decoded.
package seed

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"logisystem/internal/core"
)

type Data struct {
	Employees    []core.Employee    `yaml:"employees"`
	Trucks       []core.Truck       `yaml:"trucks"`
	Accounts     []core.Account     `yaml:"accounts"`
	Transactions []core.Transaction `yaml:"transactions"`
}

// Default returns the built-in demo dataset.
func Default() Data {
	return Data{
		Employees: []core.Employee{
			{
				ID:         1,
				FullName:   "Pedro Soto Rivas",
				NationalID: "12.345.678-9",
				BirthDate:  "1985-03-14",
				JobTitle:   "Conductor",
			},
			{
				ID:         2,
				FullName:   "María Jesús Fuentes",
				NationalID: "16.789.012-3",
				BirthDate:  "1992-07-02",
				JobTitle:   "Administración",
			},
		},
		Trucks: []core.Truck{
			{
				ID:    1,
				Plate: "AB-CD-12",
				Model: "Volvo FH",
				IsOwn: true,
			},
			{
				ID:           2,
				Plate:        "GH-JK-34",
				Model:        "Scania R450",
				IsOwn:        false,
				ProviderName: "Transportes del Sur",
				ContractURL:  "contracts/transportes-del-sur.pdf",
			},
		},
		Accounts: []core.Account{
			{ID: 1, Name: "Banco Estado", Type: core.AccountBank, Active: true},
			{ID: 2, Name: "Caja Chica", Type: core.AccountCash, Active: true},
		},
	}
}

// Load reads a seed file and fills any missing collection from the built-in
// dataset. A missing or unreadable file falls back to Default entirely.
func Load(path string, logger *slog.Logger) Data {
	if logger == nil {
		logger = slog.Default()
	}
	if path == "" {
		return Default()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Cannot read seed file, using built-in seed", "path", path, "error", err)
		return Default()
	}

	var data Data
	if err := yaml.Unmarshal(raw, &data); err != nil {
		logger.Warn("Cannot parse seed file, using built-in seed", "path", path, "error", err)
		return Default()
	}

	fallback := Default()
	if data.Employees == nil {
		data.Employees = fallback.Employees
	}
	if data.Trucks == nil {
		data.Trucks = fallback.Trucks
	}
	if data.Accounts == nil {
		data.Accounts = fallback.Accounts
	}

	logger.Info("Loaded seed file",
		"path", path,
		"employees", len(data.Employees),
		"trucks", len(data.Trucks),
		"accounts", len(data.Accounts),
		"transactions", len(data.Transactions))
	return data
}

// Validate checks that every seeded entity passes its own validation, so a
// broken seed file fails at startup instead of at first use.
func (d Data) Validate() error {
	for _, e := range d.Employees {
		if err := e.Validate(); err != nil {
			return fmt.Errorf("seed employee %d: %w", e.ID, err)
		}
	}
	for _, t := range d.Trucks {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("seed truck %d: %w", t.ID, err)
		}
	}
	for _, a := range d.Accounts {
		if err := a.Validate(); err != nil {
			return fmt.Errorf("seed account %d: %w", a.ID, err)
		}
	}
	return nil
}
