package core

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

var ErrInvalidAmount = errors.New("invalid amount")

// Money is a positive amount in whole currency units.
type Money struct {
	Units int64 `json:"units"`
}

func (m Money) Validate() error {
	if m.Units <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ParseAmount converts a user-entered amount string to whole currency units.
//
// It accepts plain digit strings and strings with "." or space thousands
// separators ("1.250.000", "1 250 000"). Separators must group correctly:
// after the first group of one to three digits, every group must be exactly
// three, so decimal-style input like "45000.50" is rejected instead of being
// misread as a larger amount. Signs and zero amounts are rejected.
func ParseAmount(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	var digits strings.Builder
	group := 0
	grouped := false
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			group++
			digits.WriteRune(r)
		case r == '.' || r == ' ':
			if grouped {
				if group != 3 {
					return 0, ErrInvalidAmount
				}
			} else {
				if group < 1 || group > 3 {
					return 0, ErrInvalidAmount
				}
				grouped = true
			}
			group = 0
		default:
			return 0, ErrInvalidAmount
		}
	}
	if grouped && group != 3 {
		return 0, ErrInvalidAmount
	}
	if digits.Len() == 0 {
		return 0, ErrInvalidAmount
	}
	v, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if v <= 0 {
		return 0, ErrInvalidAmount
	}
	return v, nil
}

// Format renders the amount with "." thousands separators for display,
// e.g. 1250000 -> "1.250.000".
func (m Money) Format() string {
	s := strconv.FormatInt(m.Units, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
