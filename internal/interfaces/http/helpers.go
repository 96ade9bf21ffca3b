package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
)

var validate = validator.New()

func init() {
	// decimal.Decimal se valida como número (gt=0, min=0).
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Los mensajes usan el nombre JSON del campo.
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// bindAndValidate parsea el body JSON en req y aplica las etiquetas validate.
func bindAndValidate(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return domain.NewValidationError("", "cuerpo inválido: "+err.Error())
	}
	return validateStruct(req)
}

func validateStruct(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		msg := "no cumple " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		return domain.NewValidationError(fe.Field(), msg)
	}
	return domain.NewValidationError("", err.Error())
}

// parseID lee el parámetro :id como entero positivo.
func parseID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "debe ser un entero positivo")
	}
	return id, nil
}

// optionalInt64Query lee un query param entero opcional.
func optionalInt64Query(c *fiber.Ctx, key string) (*int64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || n <= 0 {
		return nil, domain.NewValidationError(key, "debe ser un entero positivo")
	}
	return &n, nil
}

// respondError traduce errores de dominio a status HTTP y cuerpo dto.ErrorResponse.
func respondError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	switch {
	case errors.Is(err, domain.ErrInvalidMovement):
		status, code = fiber.StatusBadRequest, "INVALID_MOVEMENT"
	case errors.Is(err, domain.ErrInvalidFile):
		status, code = fiber.StatusBadRequest, "INVALID_FILE"
	case errors.Is(err, domain.ErrInvalidInput):
		status, code = fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		status, code = fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		status, code = fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrConflict):
		status, code = fiber.StatusConflict, "CONFLICT"
	}
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Error: err.Error()})
}

// invalidForm envuelve un error de parseo de formulario o query como error de validación.
func invalidForm(err error) error {
	return domain.NewValidationError("", "petición inválida: "+err.Error())
}

// isMultipart indica si la petición trae un formulario multipart.
func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm)
}

// readUpload carga en memoria un archivo del formulario (el tamaño ya está acotado por BodyLimit).
func readUpload(fh *multipart.FileHeader) (dto.FileUpload, error) {
	f, err := fh.Open()
	if err != nil {
		return dto.FileUpload{}, fmt.Errorf("abrir %s: %w", fh.Filename, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return dto.FileUpload{}, fmt.Errorf("leer %s: %w", fh.Filename, err)
	}
	return dto.FileUpload{Filename: fh.Filename, ContentType: fh.Header.Get("Content-Type"), Data: data}, nil
}

// formFile devuelve el primer archivo del campo, o nil si no viene.
func formFile(form *multipart.Form, field string) (*dto.FileUpload, error) {
	headers := form.File[field]
	if len(headers) == 0 {
		return nil, nil
	}
	up, err := readUpload(headers[0])
	if err != nil {
		return nil, err
	}
	return &up, nil
}

// formValue devuelve el valor del campo y si estaba presente en el formulario.
func formValue(form *multipart.Form, field string) (string, bool) {
	vals, ok := form.Value[field]
	if !ok || len(vals) == 0 {
		return "", false
	}
	return strings.TrimSpace(vals[0]), true
}

// formDecimal interpreta un importe opcional; vacío o ausente es nil.
func formDecimal(form *multipart.Form, field string) (*decimal.Decimal, error) {
	raw, ok := formValue(form, field)
	if !ok || raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, domain.NewValidationError(field, "importe inválido")
	}
	return &d, nil
}

// formInt64 interpreta un id opcional; vacío o ausente es nil.
func formInt64(form *multipart.Form, field string) (*int64, error) {
	raw, ok := formValue(form, field)
	if !ok || raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, domain.NewValidationError(field, "debe ser un entero")
	}
	return &n, nil
}

// formString devuelve un puntero al valor si el campo vino en el formulario.
func formString(form *multipart.Form, field string) *string {
	raw, ok := formValue(form, field)
	if !ok {
		return nil
	}
	return &raw
}
