package orthotic

import "github.com/healthyfeet/salon-scheduler/internal/httperr"

// ===============================
// Estados de la plantilla
// ===============================

type Status string

const (
	StatusDesigning     Status = "designing"
	StatusProducing     Status = "producing"
	StatusReady         Status = "ready"
	StatusDelivered     Status = "delivered"
	StatusUnderWarranty Status = "under_warranty"
	StatusExpired       Status = "expired"
)

// El ciclo de fabricación solo avanza hacia adelante; los estados de
// garantía solo se alcanzan después de entregar la pieza.
var next = map[Status]Status{
	StatusDesigning:     StatusProducing,
	StatusProducing:     StatusReady,
	StatusReady:         StatusDelivered,
	StatusDelivered:     StatusUnderWarranty,
	StatusUnderWarranty: StatusExpired,
}

func InitialStatus() Status {
	return StatusDesigning
}

func CanAdvance(from, to Status) error {
	if next[from] != to {
		return httperr.ErrBusiness(httperr.CodeInvalidTransition)
	}
	return nil
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusDesigning, StatusProducing, StatusReady,
		StatusDelivered, StatusUnderWarranty, StatusExpired:
		return true
	}
	return false
}
