package booking

import (
	"context"
	"time"

	"github.com/healthyfeet/salon-scheduler/internal/audit"
	domain "github.com/healthyfeet/salon-scheduler/internal/domain/booking"
	"github.com/healthyfeet/salon-scheduler/internal/httperr"
	"github.com/healthyfeet/salon-scheduler/internal/models"
	"github.com/healthyfeet/salon-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	// El cliente llega por ID o por (nombre, teléfono); con teléfono
	// desconocido se da de alta en el momento, como en mostrador.
	ClientID    uint
	ClientName  string
	ClientPhone string

	EmployeeID uint
	ServiceID  uint

	Date  string
	Time  string
	Notes string

	// Usuario autenticado que registra la cita, para la bitácora.
	UserID *uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit audit.Sink
	loc   *time.Location
}

func NewCreateAppointment(
	repo domain.Repository,
	audit audit.Sink,
	loc *time.Location,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1. Fecha y hora del slot
	// --------------------------------------------------
	date, err := time.ParseInLocation("2006-01-02", in.Date, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidationError)
	}

	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidationError)
	}

	// --------------------------------------------------
	// 2. Cliente
	// --------------------------------------------------
	var client *models.Client
	if in.ClientID != 0 {
		client, err = uc.repo.GetClientByID(ctx, in.ClientID)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeReferenceNotFound)
		}
	} else {
		if in.ClientName == "" || !validators.IsValidPhone(in.ClientPhone) {
			return nil, httperr.ErrBusiness(httperr.CodeValidationError)
		}
		client, err = uc.repo.GetOrCreateClient(ctx, in.ClientName, in.ClientPhone)
		if err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 3. Empleado y servicio activos
	// --------------------------------------------------
	emp, err := uc.repo.GetActiveEmployee(ctx, in.EmployeeID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeReferenceNotFound)
	}

	svc, err := uc.repo.GetActiveService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeReferenceNotFound)
	}

	// --------------------------------------------------
	// 4. Inserción bajo exclusividad de slot
	// --------------------------------------------------
	ap := &models.Appointment{
		ClientID:   client.ID,
		EmployeeID: emp.ID,
		ServiceID:  svc.ID,
		Date:       date,
		Time:       in.Time,
		Status:     string(domain.InitialStatus()),
		Notes:      in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5. Bitácora
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
