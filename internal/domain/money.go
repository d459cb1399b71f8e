package domain

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

// PHP is the storefront currency. The catalog prices everything in
// Philippine pesos.
var PHP = currency.MustParseISO("PHP")

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func Pesos(amount decimal.Decimal) Money {
	return Money{Amount: amount, Currency: PHP}
}

func (m Money) String() string {
	return m.Currency.String() + " " + m.Amount.String()
}
