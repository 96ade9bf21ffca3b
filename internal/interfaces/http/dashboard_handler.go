package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/Gestion-api/internal/application/analytics"
	"github.com/jhoicas/Gestion-api/internal/domain"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los indicadores del tablero.
// GET /api/dashboard/resumen
//
// Respuesta: DashboardSummaryDTO (ledger_balance, month_income, month_expense,
// pending_payables, pending_receivables, pending_recoveries, projects_by_status,
// quotations_by_status, date_label).
// Las fechas del mes en curso se calculan en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GetCashFlow devuelve cargos, abonos y neto por mes.
// GET /api/dashboard/flujo?anio=2024 (sin anio usa el año en curso)
func (h *DashboardHandler) GetCashFlow(c *fiber.Ctx) error {
	year := 0
	if raw := c.Query("anio"); raw != "" {
		n := c.QueryInt("anio", -1)
		if n <= 0 {
			return respondError(c, domain.NewValidationError("anio", "debe ser un año válido"))
		}
		year = n
	}
	flow, err := h.uc.GetCashFlow(c.UserContext(), year)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(flow)
}
