// Package tax calcula el IVA de cuentas por pagar y por cobrar.
package tax

import "github.com/shopspring/decimal"

// DefaultRate tasa general de IVA (16%).
var DefaultRate = decimal.NewFromFloat(0.16)

// Apply devuelve el impuesto y el total para un monto neto.
// Sin IVA el impuesto es cero y el total es el neto. Redondeo a centavos.
func Apply(net decimal.Decimal, withTax bool, rate decimal.Decimal) (tax, total decimal.Decimal) {
	if !withTax {
		return decimal.Zero, net.Round(2)
	}
	total = net.Mul(decimal.NewFromInt(1).Add(rate)).Round(2)
	return total.Sub(net.Round(2)), total
}
