package booking

import (
	"context"
	"time"

	"github.com/healthyfeet/salon-scheduler/internal/audit"
	domain "github.com/healthyfeet/salon-scheduler/internal/domain/booking"
	"github.com/healthyfeet/salon-scheduler/internal/httperr"
	"github.com/healthyfeet/salon-scheduler/internal/models"
)

// ======================================================
// REAGENDAR
// ======================================================

type RescheduleAppointment struct {
	repo  domain.Repository
	audit audit.Sink
	loc   *time.Location
}

func NewRescheduleAppointment(
	repo domain.Repository,
	audit audit.Sink,
	loc *time.Location,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

type RescheduleInput struct {
	AppointmentID uint

	// Cero = conservar el valor actual.
	EmployeeID uint
	ServiceID  uint

	Date string
	Time string

	// Usuario autenticado que mueve la cita, para la bitácora.
	UserID *uint
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeReferenceNotFound)
	}

	if err := domain.CanReschedule(ap); err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation("2006-01-02", in.Date, uc.loc)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidationError)
	}
	if _, err := time.Parse("15:04", in.Time); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidationError)
	}

	if in.EmployeeID != 0 {
		emp, err := uc.repo.GetActiveEmployee(ctx, in.EmployeeID)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeReferenceNotFound)
		}
		ap.EmployeeID = emp.ID
	}

	if in.ServiceID != 0 {
		svc, err := uc.repo.GetActiveService(ctx, in.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness(httperr.CodeReferenceNotFound)
		}
		ap.ServiceID = svc.ID
	}

	ap.Date = date
	ap.Time = in.Time

	// Revalida ambos slots excluyendo la propia cita.
	if err := uc.repo.SaveAppointmentChecked(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_rescheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
