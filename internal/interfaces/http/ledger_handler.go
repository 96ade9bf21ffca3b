package http

import (
	"fmt"
	"mime/multipart"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Gestion-api/internal/application/accounting"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// LedgerHandler maneja la contabilidad: movimientos con saldo acumulado y sus exportaciones.
type LedgerHandler struct {
	uc *accounting.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *accounting.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// List godoc
// @Summary      Listar movimientos en orden (fecha, id)
// @Tags         contabilidad
// @Produce      json
// @Success      200  {array}   dto.MovementResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/contabilidad [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener movimiento
// @Tags         contabilidad
// @Produce      json
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200  {object}  dto.MovementResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contabilidad/{id} [get]
func (h *LedgerHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Registrar movimiento (JSON o multipart con invoice_pdf / invoice_xml)
// @Tags         contabilidad
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body  dto.CreateMovementRequest  true  "Movimiento"
// @Success      201   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/contabilidad [post]
func (h *LedgerHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateMovementRequest
	var att dto.MovementAttachments
	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return respondError(c, invalidForm(err))
		}
		in.Date, _ = formValue(form, "date")
		in.Concept, _ = formValue(form, "concept")
		in.Notes, _ = formValue(form, "notes")
		if in.Debit, err = formDecimal(form, "debit"); err != nil {
			return respondError(c, err)
		}
		if in.Credit, err = formDecimal(form, "credit"); err != nil {
			return respondError(c, err)
		}
		if att, err = movementAttachments(form); err != nil {
			return respondError(c, err)
		}
		if err := validateStruct(&in); err != nil {
			return respondError(c, err)
		}
	} else if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}

	out, err := h.uc.Create(c.UserContext(), in, att)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Editar movimiento; el saldo se recalcula desde la posición afectada
// @Tags         contabilidad
// @Accept       json,mpfd
// @Produce      json
// @Param        id    path  int  true  "ID del movimiento"
// @Param        body  body  dto.UpdateMovementRequest  true  "Campos a modificar"
// @Success      200   {object}  dto.MovementResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/contabilidad/{id} [put]
func (h *LedgerHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	var in dto.UpdateMovementRequest
	var att dto.MovementAttachments
	if isMultipart(c) {
		form, err := c.MultipartForm()
		if err != nil {
			return respondError(c, invalidForm(err))
		}
		in.Date = formString(form, "date")
		in.Concept = formString(form, "concept")
		in.Notes = formString(form, "notes")
		if in.Debit, err = formDecimal(form, "debit"); err != nil {
			return respondError(c, err)
		}
		if in.Credit, err = formDecimal(form, "credit"); err != nil {
			return respondError(c, err)
		}
		if att, err = movementAttachments(form); err != nil {
			return respondError(c, err)
		}
		if err := validateStruct(&in); err != nil {
			return respondError(c, err)
		}
	} else if err := bindAndValidate(c, &in); err != nil {
		return respondError(c, err)
	}

	out, err := h.uc.Update(c.UserContext(), id, in, att)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar movimiento y recalcular los posteriores
// @Tags         contabilidad
// @Param        id   path  int  true  "ID del movimiento"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/contabilidad/{id} [delete]
func (h *LedgerHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "movimiento eliminado"})
}

// ExportXLSX godoc
// @Summary      Exportar contabilidad a Excel
// @Tags         contabilidad
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200
// @Router       /api/contabilidad/export [get]
func (h *LedgerHandler) ExportXLSX(c *fiber.Ctx) error {
	data, err := h.uc.ExportXLSX(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, mimeXLSX, "contabilidad", "xlsx", data)
}

// ExportCSV godoc
// @Summary      Exportar contabilidad a CSV
// @Tags         contabilidad
// @Produce      text/csv
// @Param        mes    query  string  false  "YYYY-MM"
// @Param        desde  query  string  false  "YYYY-MM-DD"
// @Param        hasta  query  string  false  "YYYY-MM-DD"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/contabilidad/export/csv [get]
func (h *LedgerHandler) ExportCSV(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, invalidForm(err))
	}
	data, err := h.uc.ExportCSV(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, "text/csv; charset=utf-8", "contabilidad", "csv", data)
}

// ExportPDF godoc
// @Summary      Estado de cuenta en PDF
// @Tags         contabilidad
// @Produce      application/pdf
// @Param        mes    query  string  false  "YYYY-MM"
// @Param        desde  query  string  false  "YYYY-MM-DD"
// @Param        hasta  query  string  false  "YYYY-MM-DD"
// @Success      200
// @Router       /api/contabilidad/export/pdf [get]
func (h *LedgerHandler) ExportPDF(c *fiber.Ctx) error {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return respondError(c, invalidForm(err))
	}
	data, err := h.uc.ExportStatement(c.UserContext(), q)
	if err != nil {
		return respondError(c, err)
	}
	return sendAttachment(c, "application/pdf", "estado-de-cuenta", "pdf", data)
}

func movementAttachments(form *multipart.Form) (dto.MovementAttachments, error) {
	var att dto.MovementAttachments
	var err error
	if att.InvoicePDF, err = formFile(form, "invoice_pdf"); err != nil {
		return att, err
	}
	if att.InvoiceXML, err = formFile(form, "invoice_xml"); err != nil {
		return att, err
	}
	return att, nil
}

func sendAttachment(c *fiber.Ctx, contentType, base, ext string, data []byte) error {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s_%s.%s"`, base, time.Now().Format("20060102"), ext))
	return c.Send(data)
}
