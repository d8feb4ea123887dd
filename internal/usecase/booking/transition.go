package booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/healthyfeet/salon-scheduler/internal/archive"
	"github.com/healthyfeet/salon-scheduler/internal/audit"
	domain "github.com/healthyfeet/salon-scheduler/internal/domain/booking"
	"github.com/healthyfeet/salon-scheduler/internal/httperr"
	"github.com/healthyfeet/salon-scheduler/internal/models"
)

// ======================================================
// TRANSICIONES DE ESTADO
// ======================================================

// TransitionAppointment aplica confirm/cancel/finalize/no_show sobre
// una cita viva. Al llegar a estado terminal despacha la copia al
// historial; finalizar además registra la venta al precio vigente del
// servicio y actualiza la última visita del cliente.
type TransitionAppointment struct {
	repo    domain.Repository
	archive archive.Sink
	audit   audit.Sink
	loc     *time.Location
}

func NewTransitionAppointment(
	repo domain.Repository,
	archiveDisp archive.Sink,
	auditDisp audit.Sink,
	loc *time.Location,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:    repo,
		archive: archiveDisp,
		audit:   auditDisp,
		loc:     loc,
	}
}

type TransitionInput struct {
	AppointmentID uint
	Target        string // confirmed, cancelled, finalized o no_show
	UserID        *uint
	PaymentMethod string // solo para finalized; default efectivo
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	in TransitionInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeReferenceNotFound)
	}

	now := time.Now().In(uc.loc)
	archiveStatus := in.Target

	switch in.Target {
	case string(domain.StatusConfirmed):
		err = domain.Confirm(ap)
	case string(domain.StatusCancelled):
		err = domain.Cancel(ap, now)
	case string(domain.StatusFinalized):
		err = domain.Finalize(ap, now)
	case domain.ArchiveStatusNoShow:
		err = domain.MarkNoShow(ap, now)
	default:
		err = httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	if err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// El despacho al historial va antes de cobrar: una venta fallida
	// no debe dejar una cita terminal sin rastro en citas_historial.
	terminal := in.Target != string(domain.StatusConfirmed)
	if terminal {
		uc.archive.Dispatch(archive.Event{
			AppointmentID: ap.ID,
			ClientID:      ap.ClientID,
			EmployeeID:    ap.EmployeeID,
			ServiceID:     ap.ServiceID,
			Date:          ap.Date,
			Time:          ap.Time,
			Status:        archiveStatus,
			Notes:         ap.Notes,
		})
	}

	if in.Target == string(domain.StatusFinalized) {
		if err := uc.recordSale(ctx, ap, now, in.PaymentMethod); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.UserID,
		Action:   "appointment_" + in.Target,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *TransitionAppointment) recordSale(
	ctx context.Context,
	ap *models.Appointment,
	now time.Time,
	paymentMethod string,
) error {

	svc, err := uc.repo.GetService(ctx, ap.ServiceID)
	if err != nil {
		return httperr.ErrBusiness(httperr.CodeReferenceNotFound)
	}

	if paymentMethod == "" {
		paymentMethod = "efectivo"
	}

	sale := &models.Sale{
		Folio:         uuid.NewString(),
		ClientID:      ap.ClientID,
		EmployeeID:    ap.EmployeeID,
		ServiceID:     ap.ServiceID,
		SoldAt:        now,
		Total:         svc.Price,
		PaymentMethod: paymentMethod,
	}

	if err := uc.repo.CreateSale(ctx, sale); err != nil {
		return err
	}

	return uc.repo.TouchClientLastVisit(ctx, ap.ClientID, now)
}
