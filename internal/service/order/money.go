package order

import "github.com/shopspring/decimal"

var vatRate = decimal.RequireFromString("0.15")

// CalculateAmounts округляет сумму до копеек и считает НДС 15% и итог.
func CalculateAmounts(total decimal.Decimal) (decimal.Decimal, decimal.Decimal, decimal.Decimal) {
	total = total.Round(2)
	vat := total.Mul(vatRate).Round(2)
	final := total.Add(vat).Round(2)
	return total, vat, final
}
