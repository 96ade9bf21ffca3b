package entity

import "time"

// Provider representa un proveedor de bienes o servicios.
type Provider struct {
	ID          int64
	Name        string
	RFC         string
	ContactName string
	Email       string
	Phone       string
	BankAccount string // CLABE interbancaria
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
