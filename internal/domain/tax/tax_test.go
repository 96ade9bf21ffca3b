package tax_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Gestion-api/internal/domain/tax"
)

func TestApply_ConIVA(t *testing.T) {
	iva, total := tax.Apply(decimal.NewFromInt(1000), true, tax.DefaultRate)
	assert.True(t, total.Equal(decimal.NewFromInt(1160)), "total = neto * 1.16, got %s", total)
	assert.True(t, iva.Equal(decimal.NewFromInt(160)), "iva, got %s", iva)
}

func TestApply_SinIVA(t *testing.T) {
	iva, total := tax.Apply(decimal.RequireFromString("99.999"), false, tax.DefaultRate)
	assert.True(t, iva.IsZero())
	assert.Equal(t, "100", total.String())
}

func TestApply_RedondeaCentavos(t *testing.T) {
	iva, total := tax.Apply(decimal.RequireFromString("10.01"), true, tax.DefaultRate)
	// 10.01 * 1.16 = 11.6116 → 11.61
	assert.Equal(t, "11.61", total.StringFixed(2))
	assert.Equal(t, "1.60", iva.StringFixed(2))
}
