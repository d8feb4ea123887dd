package models

import "time"

// Cita en el libro de agenda. El slot es exacto: (empleado, fecha, hora)
// y (cliente, fecha, hora) deben ser únicos entre citas no canceladas.
// Esa exclusividad se verifica con candados de fila en el repositorio,
// no con un unique index, porque una cita cancelada libera el slot.
//
// Borrar un cliente o un empleado arrastra sus citas (ON DELETE CASCADE);
// el historial permanente vive en AppointmentArchive.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientID uint   `gorm:"index:idx_citas_client_slot" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"client"`

	EmployeeID uint     `gorm:"index:idx_citas_employee_slot" json:"employee_id"`
	Employee   Employee `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"employee"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	Date time.Time `gorm:"type:date;index:idx_citas_client_slot;index:idx_citas_employee_slot" json:"date"`
	Time string    `gorm:"size:5;index:idx_citas_client_slot;index:idx_citas_employee_slot" json:"time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	FinalizedAt *time.Time `json:"finalized_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Appointment) TableName() string {
	return "citas"
}
