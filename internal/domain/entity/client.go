package entity

import "time"

// Client representa un cliente de la empresa.
type Client struct {
	ID        int64
	Name      string
	RFC       string // Registro Federal de Contribuyentes
	Email     string
	Phone     string
	Address   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
