package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/ledger"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// ──────────────────────────────────────────────────────────────────────────────
// Exclusividad cargo/abono
// ──────────────────────────────────────────────────────────────────────────────

func TestAmount_RechazaCombinacionesInvalidas(t *testing.T) {
	cases := []struct {
		name          string
		debit, credit *decimal.Decimal
	}{
		{"ambos positivos", dec("100"), dec("50")},
		{"ambos ausentes", nil, nil},
		{"ambos en cero", dec("0"), dec("0")},
		{"cargo cero y abono ausente", dec("0"), nil},
		{"cargo negativo", dec("-10"), nil},
		{"abono negativo con cargo", dec("10"), dec("-5")},
		{"cargo con tres decimales", dec("10.005"), nil},
		{"abono menor a un centavo", nil, dec("0.001")},
		{"cargo de trece dígitos enteros", dec("1000000000000"), nil},
		{"abono fuera de rango", nil, dec("100000000000000")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ledger.Amount(tc.debit, tc.credit)
			assert.ErrorIs(t, err, domain.ErrInvalidMovement)
		})
	}
}

func TestAmount_DerivaSigno(t *testing.T) {
	amount, err := ledger.Amount(dec("1000"), nil)
	require.NoError(t, err)
	assert.Equal(t, "1000", amount.String(), "cargo → amount = debit")

	amount, err = ledger.Amount(dec("0"), dec("1500"))
	require.NoError(t, err)
	assert.Equal(t, "-1500", amount.String(), "abono → amount = -credit")

	amount, err = ledger.Amount(nil, dec("0.01"))
	require.NoError(t, err)
	assert.Equal(t, "-0.01", amount.String())
}

func TestAmount_AceptaLimitesDeLaColumna(t *testing.T) {
	amount, err := ledger.Amount(dec("999999999999.99"), nil)
	require.NoError(t, err)
	assert.Equal(t, "999999999999.99", amount.String())

	amount, err = ledger.Amount(nil, dec("10.500"))
	require.NoError(t, err, "ceros a la derecha no cuentan como decimales")
	assert.True(t, amount.Equal(decimal.RequireFromString("-10.5")))
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, entity.MovementStatusComplete, ledger.StatusFor(decimal.Zero), "saldo cero es Complete")
	assert.Equal(t, entity.MovementStatusComplete, ledger.StatusFor(decimal.NewFromInt(5)))
	assert.Equal(t, entity.MovementStatusIncomplete, ledger.StatusFor(decimal.RequireFromString("-0.01")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Encadenamiento de saldos
// ──────────────────────────────────────────────────────────────────────────────

func TestRebalance_SaldoEsSumaAcumulada(t *testing.T) {
	amounts := []string{"1000", "-1500", "250.50", "-0.50", "300"}
	movs := make([]*entity.Movement, 0, len(amounts))
	for i, a := range amounts {
		movs = append(movs, &entity.Movement{
			ID:     int64(i + 1),
			Date:   day("2024-01-01").AddDate(0, 0, i),
			Amount: decimal.RequireFromString(a),
		})
	}

	changed := ledger.Rebalance(decimal.Zero, movs)
	assert.Len(t, changed, len(movs))

	sum := decimal.Zero
	for i, m := range movs {
		sum = sum.Add(decimal.RequireFromString(amounts[i]))
		assert.True(t, m.Balance.Equal(sum), "balance_%d = %s, esperado %s", i+1, m.Balance, sum)
		assert.Equal(t, ledger.StatusFor(sum), m.Status)
	}
	assert.Equal(t, entity.MovementStatusIncomplete, movs[1].Status)
	assert.Equal(t, entity.MovementStatusComplete, movs[4].Status)
}

func TestRebalance_ParteDelSaldoPrevio(t *testing.T) {
	movs := []*entity.Movement{
		{ID: 7, Date: day("2024-02-01"), Amount: decimal.NewFromInt(-200)},
	}
	ledger.Rebalance(decimal.NewFromInt(150), movs)
	assert.Equal(t, "-50", movs[0].Balance.String())
	assert.Equal(t, entity.MovementStatusIncomplete, movs[0].Status)
}

func TestRebalance_SoloDevuelveCambiados(t *testing.T) {
	movs := []*entity.Movement{
		{ID: 1, Date: day("2024-01-01"), Amount: decimal.NewFromInt(100), Balance: decimal.NewFromInt(100), Status: entity.MovementStatusComplete},
		{ID: 2, Date: day("2024-01-02"), Amount: decimal.NewFromInt(50), Balance: decimal.NewFromInt(999), Status: entity.MovementStatusComplete},
	}
	changed := ledger.Rebalance(decimal.Zero, movs)
	require.Len(t, changed, 1)
	assert.Equal(t, int64(2), changed[0].ID)
	assert.Equal(t, "150", changed[0].Balance.String())
}

func TestKeyLess_OrdenFechaLuegoID(t *testing.T) {
	a := &entity.Movement{ID: 10, Date: day("2024-01-01")}
	b := &entity.Movement{ID: 2, Date: day("2024-01-02")}
	c := &entity.Movement{ID: 11, Date: day("2024-01-01").Add(23 * time.Hour)}

	assert.True(t, ledger.Less(a, b), "fecha menor va primero aunque el id sea mayor")
	assert.True(t, ledger.Less(a, c), "misma fecha calendario: desempata el id")
	assert.False(t, ledger.Less(c, a))
}
