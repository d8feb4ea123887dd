package models

import "time"

// Plantilla de mensaje con marcadores {{cliente}}, {{fecha}}, {{hora}}
// y {{servicio}} que el recordatorio sustituye al enviar.
type MessageTemplate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	Body string `gorm:"type:text;not null" json:"body"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (MessageTemplate) TableName() string {
	return "plantillas_mensaje"
}
