package models

import "time"

// Espejo histórico de citas que llegaron a estado terminal.
// Solo se inserta; nunca se actualiza ni se borra. Los IDs de
// cliente/empleado/servicio se copian sin llave foránea para que el
// registro sobreviva al borrado en cascada de la cita viva.
type AppointmentArchive struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"index" json:"appointment_id"`

	ClientID   uint `json:"client_id"`
	EmployeeID uint `json:"employee_id"`
	ServiceID  uint `json:"service_id"`

	Date time.Time `gorm:"type:date" json:"date"`
	Time string    `gorm:"size:5" json:"time"`

	// finalized, cancelled o no_show
	Status string `gorm:"size:20;not null" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	RecordedAt time.Time `gorm:"autoCreateTime" json:"recorded_at"`
}

func (AppointmentArchive) TableName() string {
	return "citas_historial"
}
