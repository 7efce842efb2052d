package dto

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// Aviso is a one-shot notice for the UI: a message plus a severity tag
// ("success" | "danger" | "warning").
type Aviso struct {
	Mensaje string `json:"mensaje"`
	Nivel   string `json:"nivel"`
}

// Resultado wraps the payload of a successful mutation together with the
// notice to show.
type Resultado struct {
	Aviso Aviso `json:"aviso"`
	Data  any   `json:"data,omitempty"`
}

// CampoNumerico is a numeric field as typed by the operator. It binds from
// form values and from JSON strings or numbers, and is parsed leniently so
// that malformed input can be coerced instead of rejected.
type CampoNumerico string

// UnmarshalJSON accepts a JSON number, a string or null.
func (c *CampoNumerico) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*c = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = CampoNumerico(s)
		return nil
	}
	*c = CampoNumerico(b)
	return nil
}

// Decimal parses the field. ok is false when it is empty or not a number.
func (c CampoNumerico) Decimal() (decimal.Decimal, bool) {
	s := strings.TrimSpace(string(c))
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// DecimalPtr is Decimal returning nil for absent/invalid input.
func (c CampoNumerico) DecimalPtr() *decimal.Decimal {
	d, ok := c.Decimal()
	if !ok {
		return nil
	}
	return &d
}
