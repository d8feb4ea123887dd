package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/healthyfeet/salon-scheduler/internal/httperr"
)

// writeBusinessError traduce los códigos de negocio a HTTP.
// Regresa false si el error no era de negocio.
func writeBusinessError(c *gin.Context, err error) bool {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		return false
	}

	switch code {
	case httperr.CodeReferenceNotFound:
		httperr.NotFound(c, code, "Referencia no encontrada.")
	case httperr.CodeSlotConflict:
		httperr.Conflict(c, code, "El empleado ya tiene una cita en ese horario.")
	case httperr.CodeDoubleBooking:
		httperr.Conflict(c, code, "El cliente ya tiene una cita en ese horario.")
	case httperr.CodeInvalidTransition:
		httperr.BadRequest(c, code, "Cambio de estado no permitido.")
	case httperr.CodeInvalidState:
		httperr.BadRequest(c, code, "La cita ya no se puede modificar.")
	case httperr.CodeValidationError:
		httperr.BadRequest(c, code, "Datos inválidos.")
	default:
		httperr.BadRequest(c, code, "Operación rechazada.")
	}

	return true
}
