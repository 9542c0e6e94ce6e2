package domain

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a user-typed monetary value. Raw is exactly what was entered;
// Value is meaningful only when Valid is true. Empty and unparsable input
// both count as zero when aggregated.
type Amount struct {
	Raw   string
	Value decimal.Decimal
	Valid bool
}

// ParseAmount parses raw strictly: surrounding spaces are ignored, anything
// else that is not a plain decimal number leaves the amount invalid.
func ParseAmount(raw string) Amount {
	a := Amount{Raw: raw}
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return a
	}
	v, err := decimal.NewFromString(trimmed)
	if err != nil {
		return a
	}
	a.Value = v
	a.Valid = true
	return a
}

// AmountFrom builds an amount from a server value; nil or zero become empty.
func AmountFrom(v decimal.NullDecimal) Amount {
	if !v.Valid || v.Decimal.IsZero() {
		return Amount{}
	}
	return Amount{Raw: v.Decimal.String(), Value: v.Decimal, Valid: true}
}

// IsEmpty reports whether nothing was entered.
func (a Amount) IsEmpty() bool {
	return a.Raw == ""
}

// OrZero returns the parsed value, or zero for empty or invalid input.
func (a Amount) OrZero() decimal.Decimal {
	if !a.Valid {
		return decimal.Zero
	}
	return a.Value
}

// MarshalJSON renders the raw text so an editor round-trips what was typed.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Raw)
}

// UnmarshalJSON accepts a string, a number or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = Amount{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = ParseAmount(s)
		return nil
	}
	*a = ParseAmount(string(data))
	return nil
}
