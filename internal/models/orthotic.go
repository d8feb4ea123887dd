package models

import "time"

// Plantilla ortopédica fabricada para un cliente. El código único
// identifica la pieza física en taller y en garantía.
type Orthotic struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	Code     string `gorm:"size:36;uniqueIndex;not null" json:"code"`
	Type     string `gorm:"size:50" json:"type"`
	Material string `gorm:"size:50" json:"material"`
	Size     string `gorm:"size:10" json:"size"`
	Side     string `gorm:"size:10" json:"side"`

	Status string `gorm:"size:20;default:'designing'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Orthotic) TableName() string {
	return "plantillas"
}
