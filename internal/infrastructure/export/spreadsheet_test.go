package export_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/infrastructure/export"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func sample() []*entity.Movement {
	return []*entity.Movement{
		{ID: 1, Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Concept: "Anticipo, obra", Debit: dec("1234.5"),
			Balance: decimal.RequireFromString("1234.5"), Status: entity.MovementStatusComplete},
		{ID: 2, Date: time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC), Concept: "Cemento", Credit: dec("2000"),
			Balance: decimal.RequireFromString("-765.5"), Status: entity.MovementStatusIncomplete, Notes: "proveedor"},
	}
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "$1,234.50", export.Money(decimal.RequireFromString("1234.5")))
	assert.Equal(t, "-$80.00", export.Money(decimal.RequireFromString("-80")))
	assert.Equal(t, "$0.00", export.Money(decimal.Zero))
	assert.Equal(t, "", export.OptionalMoney(nil))
}

func TestMovementsCSV(t *testing.T) {
	out, err := export.NewExporter().MovementsCSV(sample())
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(out, []byte{0xEF, 0xBB, 0xBF}))

	records, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Fecha", records[0][0])
	assert.Equal(t, []string{"05/01/2024", "Anticipo, obra", "$1,234.50", "", "$1,234.50", "Completo", ""}, records[1])
	assert.Equal(t, "-$765.50", records[2][4])
	assert.Equal(t, "Incompleto", records[2][5])
}

func TestMovementsXLSX(t *testing.T) {
	out, err := export.NewExporter().MovementsXLSX(sample())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Contabilidad")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Concepto", rows[0][1])
	assert.Equal(t, "20/01/2024", rows[2][0])
	assert.Equal(t, "Cemento", rows[2][1])
}

func TestMovementsCSV_Vacio(t *testing.T) {
	out, err := export.NewExporter().MovementsCSV(nil)
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(out[3:])).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
