package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

func TestRenderStatement_GeneraPDF(t *testing.T) {
	debit := decimal.NewFromInt(1000)
	credit := decimal.NewFromInt(1500)
	movements := []*entity.Movement{
		{ID: 1, Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Concept: "Anticipo", Debit: &debit,
			Balance: debit, Status: entity.MovementStatusComplete},
		{ID: 2, Date: time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC), Concept: "Material", Credit: &credit,
			Balance: decimal.NewFromInt(-500), Status: entity.MovementStatusIncomplete},
	}

	out, err := NewStatementRenderer("Gestión").RenderStatement(context.Background(), movements, time.Now())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestRenderStatement_SinMovimientos(t *testing.T) {
	out, err := NewStatementRenderer("Gestión").RenderStatement(context.Background(), nil, time.Now())
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestTotalsYPeriodo(t *testing.T) {
	a, b := decimal.NewFromInt(300), decimal.RequireFromString("20.5")
	list := []*entity.Movement{
		{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Debit: &a},
		{Date: time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), Credit: &b},
	}
	debits, credits := totals(list)
	assert.Equal(t, "300", debits.String())
	assert.Equal(t, "20.5", credits.String())
	assert.Equal(t, "01/03/2024 al 31/03/2024", period(list))
	assert.Equal(t, "—", period(nil))
}
