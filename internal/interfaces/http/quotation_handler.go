package http

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/application/usecase"
)

// QuotationHandler maneja cotizaciones; acepta JSON o multipart con archivos en el campo "files".
type QuotationHandler struct {
	uc *usecase.QuotationUseCase
}

func NewQuotationHandler(uc *usecase.QuotationUseCase) *QuotationHandler {
	return &QuotationHandler{uc: uc}
}

// Create godoc
// @Summary      Crear cotización
// @Tags         cotizaciones
// @Accept       json,mpfd
// @Produce      json
// @Param        body  body  dto.QuotationRequest  true  "Cotización"
// @Success      201   {object}  dto.QuotationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/cotizaciones [post]
func (h *QuotationHandler) Create(c *fiber.Ctx) error {
	in, uploads, err := h.parse(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), in, uploads)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar cotización; los archivos solo cambian si se envían nuevos
// @Tags         cotizaciones
// @Accept       json,mpfd
// @Produce      json
// @Param        id    path  int  true  "ID"
// @Param        body  body  dto.QuotationRequest  true  "Cotización"
// @Success      200   {object}  dto.QuotationResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/cotizaciones/{id} [put]
func (h *QuotationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return respondError(c, err)
	}
	in, uploads, err := h.parse(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), id, in, uploads)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

func (h *QuotationHandler) parse(c *fiber.Ctx) (dto.QuotationRequest, []dto.FileUpload, error) {
	var in dto.QuotationRequest
	if !isMultipart(c) {
		return in, nil, bindAndValidate(c, &in)
	}
	form, err := c.MultipartForm()
	if err != nil {
		return in, nil, invalidForm(err)
	}
	if err := quotationFromForm(form, &in); err != nil {
		return in, nil, err
	}
	if err := validateStruct(&in); err != nil {
		return in, nil, err
	}
	uploads := make([]dto.FileUpload, 0, len(form.File["files"]))
	for _, fh := range form.File["files"] {
		up, err := readUpload(fh)
		if err != nil {
			return in, nil, invalidForm(err)
		}
		uploads = append(uploads, up)
	}
	return in, uploads, nil
}

func quotationFromForm(form *multipart.Form, in *dto.QuotationRequest) error {
	var err error
	if in.ClientID, err = formInt64(form, "client_id"); err != nil {
		return err
	}
	if in.ProjectID, err = formInt64(form, "project_id"); err != nil {
		return err
	}
	amount, err := formDecimal(form, "amount")
	if err != nil {
		return err
	}
	if amount != nil {
		in.Amount = *amount
	} else {
		in.Amount = decimal.Zero
	}
	in.Folio, _ = formValue(form, "folio")
	in.Description, _ = formValue(form, "description")
	in.Status, _ = formValue(form, "status")
	in.Date, _ = formValue(form, "date")
	return nil
}
