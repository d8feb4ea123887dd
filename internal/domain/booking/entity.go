package booking

import (
	"time"

	"github.com/healthyfeet/salon-scheduler/internal/httperr"
	"github.com/healthyfeet/salon-scheduler/internal/models"
)

// ===============================
// Acciones de dominio
// ===============================

func Confirm(ap *models.Appointment) error {
	if err := CanTransition(Status(ap.Status), StatusConfirmed); err != nil {
		return err
	}

	ap.Status = string(StatusConfirmed)
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusCancelled); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Finalize(ap *models.Appointment, now time.Time) error {
	if err := CanTransition(Status(ap.Status), StatusFinalized); err != nil {
		return err
	}

	ap.Status = string(StatusFinalized)
	ap.FinalizedAt = &now
	return nil
}

// MarkNoShow cierra la cita viva como cancelada; el estado no_show
// solo existe en el historial. Únicamente una cita confirmada puede
// marcarse como inasistencia.
func MarkNoShow(ap *models.Appointment, now time.Time) error {
	if Status(ap.Status) != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

// CanReschedule: solo citas que no llegaron a estado terminal se
// pueden mover de horario o reasignar.
func CanReschedule(ap *models.Appointment) error {
	if IsTerminal(Status(ap.Status)) {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}
