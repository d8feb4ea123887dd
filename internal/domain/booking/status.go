package booking

import "github.com/healthyfeet/salon-scheduler/internal/httperr"

// ===============================
// Estados de la cita
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusFinalized Status = "finalized"
)

// Estado exclusivo del historial: la cita viva queda cancelada y el
// registro permanente conserva que el cliente no se presentó.
const ArchiveStatusNoShow = "no_show"

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusFinalized},
}

func InitialStatus() Status {
	return StatusPending
}

// IsTerminal: cancelada o finalizada ya no admite transición alguna.
func IsTerminal(s Status) bool {
	return s == StatusCancelled || s == StatusFinalized
}

// CanTransition valida el cambio de estado contra la máquina:
// pending -> {confirmed, cancelled}, confirmed -> {cancelled, finalized}.
func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeInvalidTransition)
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusFinalized:
		return true
	}
	return false
}
