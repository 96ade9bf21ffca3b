package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
)

// AccountHandler maneja los endpoints de cuentas por pagar y por cobrar que no son CRUD plano:
// listados filtrados por fecha y el cambio de estado "pagado".
type AccountHandler struct {
	payables    *usecase.PayableUseCase
	receivables *usecase.ReceivableUseCase
}

func NewAccountHandler(payables *usecase.PayableUseCase, receivables *usecase.ReceivableUseCase) *AccountHandler {
	return &AccountHandler{payables: payables, receivables: receivables}
}

// ListPayables godoc
// @Summary      Listar cuentas por pagar
// @Tags         cuentas-por-pagar
// @Produce      json
// @Param        mes    query  string  false  "YYYY-MM"
// @Param        desde  query  string  false  "YYYY-MM-DD"
// @Param        hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {array}   dto.PayableResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/cuentas-por-pagar [get]
func (h *AccountHandler) ListPayables(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, invalidForm(err))
	}
	out, err := h.payables.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TogglePaid godoc
// @Summary      Invertir el estado pagado
// @Tags         cuentas-por-pagar
// @Produce      json
// @Param        id   path  int  true  "ID"
// @Success      200  {object}  dto.PayableResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/cuentas-por-pagar/{id}/pagado [put]
func (h *AccountHandler) TogglePaid(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.payables.TogglePaid(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListReceivables godoc
// @Summary      Listar cuentas por cobrar
// @Tags         cuentas-por-cobrar
// @Produce      json
// @Param        mes    query  string  false  "YYYY-MM"
// @Param        desde  query  string  false  "YYYY-MM-DD"
// @Param        hasta  query  string  false  "YYYY-MM-DD"
// @Success      200  {array}   dto.ReceivableResponse
// @Router       /api/cuentas-por-cobrar [get]
func (h *AccountHandler) ListReceivables(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, invalidForm(err))
	}
	out, err := h.receivables.List(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
