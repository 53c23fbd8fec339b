package core

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int64
		wantErr bool
	}{
		{name: "plain digits", input: "45000", want: 45000},
		{name: "dot separators", input: "1.250.000", want: 1250000},
		{name: "space separators", input: "1 250 000", want: 1250000},
		{name: "surrounding whitespace", input: "  45000  ", want: 45000},
		{name: "empty", input: "", wantErr: true},
		{name: "zero", input: "0", wantErr: true},
		{name: "negative", input: "-45000", wantErr: true},
		{name: "explicit plus", input: "+45000", wantErr: true},
		{name: "decimal comma", input: "45000,50", wantErr: true},
		{name: "decimal dot", input: "45000.50", wantErr: true},
		{name: "short dot group", input: "1.5", wantErr: true},
		{name: "long first group with separator", input: "4500.000", wantErr: true},
		{name: "long middle group", input: "1.2500.000", wantErr: true},
		{name: "empty group", input: "1..000", wantErr: true},
		{name: "trailing separator", input: "1.000.", wantErr: true},
		{name: "mixed separators grouped correctly", input: "1.250 000", want: 1250000},
		{name: "letters", input: "45mil", wantErr: true},
		{name: "separators only", input: "...", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMoneyFormat(t *testing.T) {
	tests := []struct {
		units int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1.000"},
		{45000, "45.000"},
		{1250000, "1.250.000"},
		{-45000, "-45.000"},
	}

	for _, tt := range tests {
		got := Money{Units: tt.units}.Format()
		if got != tt.want {
			t.Errorf("Format(%d) = %q, want %q", tt.units, got, tt.want)
		}
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Units: 1}).Validate(); err != nil {
		t.Errorf("positive amount should be valid, got %v", err)
	}
	if err := (Money{Units: 0}).Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("zero amount error = %v, want ErrInvalidAmount", err)
	}
	if err := (Money{Units: -5}).Validate(); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative amount error = %v, want ErrInvalidAmount", err)
	}
}
