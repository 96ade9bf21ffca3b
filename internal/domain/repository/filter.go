package repository

import "time"

// DateRange filtro opcional por fecha (ambos extremos inclusivos). Nil = sin límite.
type DateRange struct {
	From *time.Time
	To   *time.Time
}

// IsZero indica que no hay filtro.
func (r DateRange) IsZero() bool {
	return r.From == nil && r.To == nil
}
