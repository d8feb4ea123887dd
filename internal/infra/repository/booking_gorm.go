package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/healthyfeet/salon-scheduler/internal/domain/booking"
	"github.com/healthyfeet/salon-scheduler/internal/httperr"
	"github.com/healthyfeet/salon-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Clientes
// --------------------------------------------------

func (r *BookingGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *BookingGormRepository) GetOrCreateClient(
	ctx context.Context,
	name string,
	phone string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("phone = ?", phone).
		First(&client).Error

	if err == nil {
		return &client, nil
	}

	client = models.Client{
		Name:  name,
		Phone: phone,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Empleados / servicios (solo activos alimentan la agenda)
// --------------------------------------------------

func (r *BookingGormRepository) GetActiveEmployee(
	ctx context.Context,
	id uint,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, models.EmployeeActive).
		First(&emp).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *BookingGormRepository) GetActiveService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND active = ?", id, true).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Cita (crear / mover con exclusividad de slot)
// --------------------------------------------------

// CreateAppointment inserta bajo la garantía de slot: dentro de una
// transacción se bloquean, con candado FOR UPDATE, las citas no
// canceladas del empleado y del cliente en la misma fecha y hora.
// De dos creaciones concurrentes sobre el mismo slot exactamente una
// confirma; la otra observa slot_conflict o double_booking.
//
// No se usa un unique index compuesto porque una cita cancelada debe
// liberar el slot sin desaparecer de la tabla.
func (r *BookingGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, ap, 0); err != nil {
			return err
		}
		return tx.Create(ap).Error
	})
}

// SaveAppointmentChecked re-valida ambos slots excluyendo la propia
// fila y guarda. Lo usa el reagendado.
func (r *BookingGormRepository) SaveAppointmentChecked(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := assertSlotFree(tx, ap, ap.ID); err != nil {
			return err
		}
		return tx.Save(ap).Error
	})
}

// slotQuery arma el SELECT con candado sobre las citas no canceladas
// que ocupan el slot. Se seleccionan los ids, nunca un agregado:
// Postgres rechaza FOR UPDATE combinado con count().
func slotQuery(tx *gorm.DB, owner string, ownerID uint, ap *models.Appointment, excludeID uint) *gorm.DB {
	q := tx.Model(&models.Appointment{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where(
			owner+" = ? AND date = ? AND time = ? AND status <> ?",
			ownerID, ap.Date, ap.Time, string(domain.StatusCancelled),
		)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	return q
}

func assertSlotFree(tx *gorm.DB, ap *models.Appointment, excludeID uint) error {
	var ids []uint

	if err := slotQuery(tx, "employee_id", ap.EmployeeID, ap, excludeID).
		Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) > 0 {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}

	ids = ids[:0]
	if err := slotQuery(tx, "client_id", ap.ClientID, ap, excludeID).
		Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) > 0 {
		return httperr.ErrBusiness(httperr.CodeDoubleBooking)
	}

	return nil
}

// --------------------------------------------------
// Cita (cambios de estado)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}

	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// --------------------------------------------------
// Venta al finalizar
// --------------------------------------------------

func (r *BookingGormRepository) CreateSale(
	ctx context.Context,
	sale *models.Sale,
) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *BookingGormRepository) TouchClientLastVisit(
	ctx context.Context,
	clientID uint,
	visitedAt time.Time,
) error {
	return r.db.WithContext(ctx).
		Model(&models.Client{}).
		Where("id = ?", clientID).
		Update("last_visit", visitedAt).Error
}

// --------------------------------------------------
// Vistas derivadas
// --------------------------------------------------

func (r *BookingGormRepository) ListAppointmentsForDate(
	ctx context.Context,
	date time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Employee").
		Preload("Service").
		Where("date = ?", date).
		Order("time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *BookingGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Employee").
		Preload("Service").
		Where("date >= ? AND date < ?", start, end).
		Order("date ASC, time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
