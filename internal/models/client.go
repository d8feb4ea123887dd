package models

import "time"

// Cliente del salón. El teléfono (10 dígitos) es la llave natural:
// la recepción identifica clientes por teléfono, no por email.
type Client struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Phone   string `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	Email   string `gorm:"size:100" json:"email"`
	Address string `gorm:"size:255" json:"address"`
	Notes   string `gorm:"size:255" json:"notes"`

	RegisteredAt time.Time  `gorm:"autoCreateTime" json:"registered_at"`
	LastVisit    *time.Time `json:"last_visit"`
}

func (Client) TableName() string {
	return "clientes"
}
