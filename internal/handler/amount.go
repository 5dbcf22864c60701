package handler

import (
	"errors"

	"github.com/eaglebank/ledger-service/shared/middleware"
	"github.com/shopspring/decimal"
)

// Limits on amounts accepted over HTTP. They keep the precision of a stored
// balance bounded no matter what a single request sends.
const (
	maxAmountScale         = 8
	maxAmountIntegerDigits = 15
)

var (
	errAmountNotNumber = errors.New("amount must be a JSON number")
	maxAmount          = decimal.New(1, maxAmountIntegerDigits)
)

// Amount is a monetary value that must arrive as a bare JSON number.
// Quoted values such as "10" are rejected.
type Amount struct {
	value decimal.Decimal
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	if len(b) == 0 || b[0] == '"' {
		return errAmountNotNumber
	}
	return a.value.UnmarshalJSON(b)
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// checkAmount reports field as invalid when d has more than maxAmountScale
// decimal places or an absolute value of maxAmount or more. The exponent is
// checked first so that no arithmetic runs on an unbounded value.
func checkAmount(field string, d decimal.Decimal) []middleware.ValidationError {
	exp := d.Exponent()
	switch {
	case exp < -maxAmountScale:
		return []middleware.ValidationError{{
			Field:   field,
			Message: "Value must have at most 8 decimal places",
			Type:    "scale",
		}}
	case exp >= maxAmountIntegerDigits, d.Abs().GreaterThanOrEqual(maxAmount):
		return []middleware.ValidationError{{
			Field:   field,
			Message: "Value must be less than " + maxAmount.String(),
			Type:    "max",
		}}
	}
	return nil
}
