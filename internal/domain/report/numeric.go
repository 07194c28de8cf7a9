package report

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// MarginPercent margen sobre precio de venta: (venta - compra) / venta × 100.
// Es 0 cuando el precio de venta no es positivo.
func MarginPercent(salePrice, purchasePrice decimal.Decimal) decimal.Decimal {
	if !salePrice.IsPositive() {
		return decimal.Zero
	}
	return salePrice.Sub(purchasePrice).Div(salePrice).Mul(hundred)
}

// percentOf part / total × 100, o 0 si total no es positivo.
func percentOf(part, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred)
}

// divOrZero num / den, o 0 si den es cero.
func divOrZero(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

func units(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}
