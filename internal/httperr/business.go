package httperr

import "errors"

// Códigos de negocio recuperables: el handler los traduce a HTTP y el
// front los reporta al usuario. Ninguno es fatal para el proceso.
const (
	CodeReferenceNotFound = "reference_not_found"
	CodeSlotConflict      = "slot_conflict"
	CodeDoubleBooking     = "double_booking"
	CodeInvalidTransition = "invalid_transition"
	CodeValidationError   = "validation_error"
	CodeInvalidState      = "invalid_state"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}
