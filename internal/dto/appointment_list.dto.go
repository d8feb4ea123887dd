package dto

import "time"

type AppointmentListDTO struct {
	ID           uint      `json:"id"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"`
	Status       string    `json:"status"`
	ClientName   string    `json:"client_name"`
	ClientPhone  string    `json:"client_phone"`
	EmployeeName string    `json:"employee_name"`
	ServiceName  string    `json:"service_name"`
	ServicePrice float64   `json:"service_price"`
}
