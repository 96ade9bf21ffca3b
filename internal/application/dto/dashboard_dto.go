package dto

import "github.com/shopspring/decimal"

// DashboardSummaryDTO respuesta de GET /api/dashboard/resumen.
type DashboardSummaryDTO struct {
	// Contabilidad
	LedgerBalance decimal.Decimal `json:"ledger_balance"` // saldo del último movimiento
	MonthIncome   decimal.Decimal `json:"month_income"`   // cargos del mes en curso
	MonthExpense  decimal.Decimal `json:"month_expense"`  // abonos del mes en curso

	// Pendientes
	PendingPayables    PendingDTO `json:"pending_payables"`
	PendingReceivables PendingDTO `json:"pending_receivables"`
	PendingRecoveries  PendingDTO `json:"pending_recoveries"`

	// Conteos por estado
	ProjectsByStatus   map[string]int `json:"projects_by_status"`
	QuotationsByStatus map[string]int `json:"quotations_by_status"`

	DateLabel string `json:"date_label"` // ej: "Octubre 2026"
}

// PendingDTO conteo y total de registros pendientes.
type PendingDTO struct {
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}

// MonthlyFlowDTO cargos, abonos y neto de un mes.
type MonthlyFlowDTO struct {
	Month   int             `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Net     decimal.Decimal `json:"net"`
}

// CashFlowDTO respuesta de GET /api/dashboard/flujo.
type CashFlowDTO struct {
	Year   int              `json:"year"`
	Months []MonthlyFlowDTO `json:"months"` // siempre 12 meses
}
