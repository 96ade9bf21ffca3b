package export

import (
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// DateLayout formato de fecha en archivos exportados (día/mes/año).
const DateLayout = "02/01/2006"

var printer = message.NewPrinter(language.MustParse("es-MX"))

// Money formatea un importe como moneda es-MX: "$1,234.50", "-$80.00".
func Money(d decimal.Decimal) string {
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	return sign + "$" + printer.Sprint(number.Decimal(d.Round(2).InexactFloat64(), number.Scale(2)))
}

// OptionalMoney devuelve "" para importes ausentes.
func OptionalMoney(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return Money(*d)
}

// Date formatea una fecha calendario.
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// StatusLabel etiqueta legible del estado de un movimiento.
func StatusLabel(status string) string {
	if status == entity.MovementStatusIncomplete {
		return "Incompleto"
	}
	return "Completo"
}
