package models

import "time"

type Sale struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Folio visible en el ticket, independiente del ID interno.
	Folio string `gorm:"size:36;uniqueIndex;not null" json:"folio"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	EmployeeID uint     `json:"employee_id"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"employee"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	SoldAt time.Time `gorm:"index" json:"sold_at"`

	// Total al precio del servicio en el momento de la venta.
	Total         float64 `json:"total"`
	PaymentMethod string  `gorm:"size:30;default:'efectivo'" json:"payment_method"`
	Notes         string  `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
}

func (Sale) TableName() string {
	return "ventas"
}
