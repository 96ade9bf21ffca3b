// Package ledger implementa el saldo acumulado de la contabilidad (servicio de dominio puro).
//
// Reglas:
//   - Un movimiento tiene exactamente uno de cargo (debit) o abono (credit) mayor que cero.
//   - amount = debit si debit > 0, si no amount = -credit.
//   - balance(k) = balance(k-1) + amount(k), en orden (fecha, id) ascendente; balance(0) = 0.
//   - status = Complete si balance >= 0, si no Incomplete.
package ledger

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
)

// Límites de las columnas NUMERIC(14,2): dos decimales y doce dígitos enteros.
const MoneyScale = 2

var maxMoney = decimal.New(1, 12)

// Amount valida la exclusividad cargo/abono y devuelve el monto con signo.
// Un valor nil se trata como ausente (cero). Montos negativos, con más de dos
// decimales o de más de doce dígitos enteros son inválidos.
func Amount(debit, credit *decimal.Decimal) (decimal.Decimal, error) {
	d := valueOf(debit)
	c := valueOf(credit)
	if d.IsNegative() || c.IsNegative() {
		return decimal.Zero, domain.ErrInvalidMovement
	}
	if !fitsColumn(d) || !fitsColumn(c) {
		return decimal.Zero, domain.ErrInvalidMovement
	}
	hasDebit := d.IsPositive()
	hasCredit := c.IsPositive()
	if hasDebit == hasCredit {
		return decimal.Zero, domain.ErrInvalidMovement
	}
	if hasDebit {
		return d, nil
	}
	return c.Neg(), nil
}

// StatusFor deriva el estado a partir del signo del saldo.
func StatusFor(balance decimal.Decimal) string {
	if balance.IsNegative() {
		return entity.MovementStatusIncomplete
	}
	return entity.MovementStatusComplete
}

// Less ordena por (fecha, id) ascendente.
func Less(a, b *entity.Movement) bool {
	return KeyLess(a.Date, a.ID, b.Date, b.ID)
}

// KeyLess compara dos claves de orden (fecha, id).
func KeyLess(dateA time.Time, idA int64, dateB time.Time, idB int64) bool {
	da, db := DateOnly(dateA), DateOnly(dateB)
	if !da.Equal(db) {
		return da.Before(db)
	}
	return idA < idB
}

// DateOnly trunca a fecha calendario (UTC), que es la granularidad del orden.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Rebalance recalcula balance y status a lo largo de ordered partiendo de previous
// (el saldo del movimiento inmediatamente anterior al primero de la lista, 0 si no hay).
// ordered debe venir en orden (fecha, id). Devuelve solo los movimientos cuyo saldo o
// estado cambió, para que el caller persista lo mínimo.
func Rebalance(previous decimal.Decimal, ordered []*entity.Movement) []*entity.Movement {
	changed := make([]*entity.Movement, 0, len(ordered))
	running := previous
	for _, m := range ordered {
		running = running.Add(m.Amount)
		status := StatusFor(running)
		if !m.Balance.Equal(running) || m.Status != status {
			m.Balance = running
			m.Status = status
			changed = append(changed, m)
		}
	}
	return changed
}

func fitsColumn(v decimal.Decimal) bool {
	return v.Equal(v.Round(MoneyScale)) && v.Abs().LessThan(maxMoney)
}

func valueOf(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}
