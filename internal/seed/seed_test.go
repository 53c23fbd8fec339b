package seed

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	data := Default()
	if err := data.Validate(); err != nil {
		t.Fatalf("built-in seed invalid: %v", err)
	}
	if len(data.Employees) == 0 || len(data.Trucks) == 0 || len(data.Accounts) == 0 {
		t.Error("built-in seed is missing collections")
	}
	for _, a := range data.Accounts {
		if !a.Active {
			t.Errorf("seed account %q should be active", a.Name)
		}
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	data := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	if len(data.Accounts) != len(Default().Accounts) {
		t.Error("missing file should fall back to built-in seed")
	}
}

func TestLoadBrokenFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte("accounts: [not: valid: yaml"), 0644); err != nil {
		t.Fatal(err)
	}
	data := Load(path, nil)
	if len(data.Accounts) != len(Default().Accounts) {
		t.Error("broken file should fall back to built-in seed")
	}
}

func TestLoadPartialFileFillsGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	content := `accounts:
  - id: 1
    name: Banco Chile
    type: banco
    active: true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	data := Load(path, nil)
	if len(data.Accounts) != 1 || data.Accounts[0].Name != "Banco Chile" {
		t.Errorf("accounts = %+v, want the seeded Banco Chile", data.Accounts)
	}
	if len(data.Employees) == 0 || len(data.Trucks) == 0 {
		t.Error("missing collections should come from the built-in seed")
	}
}

func TestValidateRejectsBrokenSeed(t *testing.T) {
	data := Default()
	data.Trucks[0].Plate = ""
	if err := data.Validate(); err == nil {
		t.Error("seed with empty plate should be rejected")
	}
}
