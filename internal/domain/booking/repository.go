package booking

import (
	"context"
	"time"

	"github.com/healthyfeet/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Registro de partes --------
	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetOrCreateClient(
		ctx context.Context,
		name string,
		phone string,
	) (*models.Client, error)

	GetActiveEmployee(
		ctx context.Context,
		id uint,
	) (*models.Employee, error)

	GetActiveService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// Sin filtro de estado: cobra al precio vigente aunque el servicio
	// se haya dado de baja entre agendar y finalizar.
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Cita (crear / mover, con exclusividad de slot) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	SaveAppointmentChecked(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Cita (cambios de estado) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Venta al finalizar --------
	CreateSale(
		ctx context.Context,
		sale *models.Sale,
	) error

	TouchClientLastVisit(
		ctx context.Context,
		clientID uint,
		visitedAt time.Time,
	) error

	// -------- Vistas derivadas --------
	ListAppointmentsForDate(
		ctx context.Context,
		date time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
