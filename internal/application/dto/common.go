package dto

import (
	"fmt"
	"time"

	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// DateLayout formato de fechas calendario en la API.
const DateLayout = "2006-01-02"

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code  string `json:"code"`
	Error string `json:"error"`
}

// FileUpload archivo recibido por multipart, ya leído a memoria (acotado por el límite del body).
type FileUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// DateRangeQuery filtros de query string: mes=YYYY-MM o desde/hasta=YYYY-MM-DD.
// mes tiene prioridad sobre desde/hasta.
type DateRangeQuery struct {
	Month string `query:"mes"`
	From  string `query:"desde"`
	To    string `query:"hasta"`
}

// Range convierte la query en un repository.DateRange.
func (q DateRangeQuery) Range() (repository.DateRange, error) {
	var r repository.DateRange
	if q.Month != "" {
		start, err := time.Parse("2006-01", q.Month)
		if err != nil {
			return r, domain.NewValidationError("mes", "formato esperado YYYY-MM")
		}
		end := start.AddDate(0, 1, -1)
		return repository.DateRange{From: &start, To: &end}, nil
	}
	if q.From != "" {
		from, err := time.Parse(DateLayout, q.From)
		if err != nil {
			return r, domain.NewValidationError("desde", "formato esperado YYYY-MM-DD")
		}
		r.From = &from
	}
	if q.To != "" {
		to, err := time.Parse(DateLayout, q.To)
		if err != nil {
			return r, domain.NewValidationError("hasta", "formato esperado YYYY-MM-DD")
		}
		r.To = &to
	}
	if r.From != nil && r.To != nil && r.To.Before(*r.From) {
		return r, domain.NewValidationError("hasta", "debe ser posterior a desde")
	}
	return r, nil
}

// ParseDate interpreta una fecha YYYY-MM-DD.
func ParseDate(field, s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, fmt.Sprintf("fecha inválida %q, formato esperado YYYY-MM-DD", s))
	}
	return t, nil
}

// ParseOptionalDate interpreta una fecha opcional; nil o vacío devuelve nil.
func ParseOptionalDate(field string, s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := ParseDate(field, *s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate da formato YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatOptionalDate da formato a una fecha opcional.
func FormatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}
