// Package usecase contiene los casos de uso CRUD de los catálogos y registros del negocio.
package usecase

import (
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/pkg/rfc"
)

// found convierte el (nil, nil) de los repositorios en domain.ErrNotFound.
func found[T any](v *T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, domain.ErrNotFound
	}
	return v, nil
}

// mapAll aplica fn a cada elemento de la lista.
func mapAll[E, R any](list []*E, fn func(*E) *R) []*R {
	out := make([]*R, 0, len(list))
	for _, e := range list {
		out = append(out, fn(e))
	}
	return out
}

// dateSpan interpreta fechas opcionales de inicio y fin; fin no puede ser anterior al inicio.
func dateSpan(start, end *string) (*time.Time, *time.Time, error) {
	s, err := dto.ParseOptionalDate("start_date", start)
	if err != nil {
		return nil, nil, err
	}
	e, err := dto.ParseOptionalDate("end_date", end)
	if err != nil {
		return nil, nil, err
	}
	if s != nil && e != nil && e.Before(*s) {
		return nil, nil, domain.NewValidationError("end_date", "no puede ser anterior a start_date")
	}
	return s, e, nil
}

// normalizeRFC valida un RFC opcional y lo devuelve normalizado.
func normalizeRFC(s string) (string, error) {
	code := rfc.Normalize(s)
	if code == "" {
		return "", nil
	}
	if err := rfc.Validate(code); err != nil {
		return "", domain.NewValidationError("rfc", err.Error())
	}
	return code, nil
}
