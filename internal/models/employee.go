package models

import "time"

const (
	EmployeeActive   = "activo"
	EmployeeInactive = "inactivo"
)

type Employee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Cuenta de acceso opcional; un empleado puede existir sin login.
	UserID *uint `json:"user_id"`
	User   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	Status string `gorm:"size:20;default:'activo'" json:"status"`

	HiredAt   time.Time `gorm:"autoCreateTime" json:"hired_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Employee) TableName() string {
	return "empleados"
}
