package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/healthyfeet/salon-scheduler/internal/domain/booking"
	"github.com/healthyfeet/salon-scheduler/internal/httperr"
	"github.com/healthyfeet/salon-scheduler/internal/httpresp"
	"github.com/healthyfeet/salon-scheduler/internal/middleware"
	ucBooking "github.com/healthyfeet/salon-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucBooking.CreateAppointment
	transitionUC *ucBooking.TransitionAppointment
	rescheduleUC *ucBooking.RescheduleAppointment
	listByDateUC *ucBooking.ListAppointmentsByDate
	listByMonUC  *ucBooking.ListAppointmentsByMonth
	loc          *time.Location
}

func NewAppointmentHandler(
	createUC *ucBooking.CreateAppointment,
	transitionUC *ucBooking.TransitionAppointment,
	rescheduleUC *ucBooking.RescheduleAppointment,
	listByDateUC *ucBooking.ListAppointmentsByDate,
	listByMonUC *ucBooking.ListAppointmentsByMonth,
	loc *time.Location,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		transitionUC: transitionUC,
		rescheduleUC: rescheduleUC,
		listByDateUC: listByDateUC,
		listByMonUC:  listByMonUC,
		loc:          loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID    uint   `json:"client_id"`
	ClientName  string `json:"client_name"`
	ClientPhone string `json:"client_phone"`

	EmployeeID uint   `json:"employee_id" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Notes      string `json:"notes"`
}

type RescheduleAppointmentRequest struct {
	EmployeeID uint   `json:"employee_id"`
	ServiceID  uint   `json:"service_id"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
}

type FinalizeAppointmentRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	ap, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateAppointmentInput{
		ClientID:    req.ClientID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		EmployeeID:  req.EmployeeID,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
		UserID:      &userID,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_create_appointment", "Error al crear la cita.")
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")

	var date time.Time
	if dateStr == "" {
		date = todayIn(h.loc)
	} else {
		var err error
		date, err = parseDateIn(h.loc, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Fecha inválida.")
			return
		}
	}

	out, err := h.listByDateUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar citas.")
		return
	}

	httpresp.List(c, out)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Año inválido.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mes inválido.")
		return
	}

	out, err := h.listByMonUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.Internal(c, "failed_to_list_appointments", "Error al listar citas.")
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// TRANSICIONES
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.transition(c, string(domain.StatusConfirmed), "")
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.transition(c, string(domain.StatusCancelled), "")
}

func (h *AppointmentHandler) Finalize(c *gin.Context) {
	var req FinalizeAppointmentRequest
	// cuerpo opcional
	_ = c.ShouldBindJSON(&req)

	h.transition(c, string(domain.StatusFinalized), req.PaymentMethod)
}

func (h *AppointmentHandler) NoShow(c *gin.Context) {
	h.transition(c, domain.ArchiveStatusNoShow, "")
}

func (h *AppointmentHandler) transition(c *gin.Context, target, paymentMethod string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	ap, err := h.transitionUC.Execute(c.Request.Context(), ucBooking.TransitionInput{
		AppointmentID: uint(id),
		Target:        target,
		UserID:        &userID,
		PaymentMethod: paymentMethod,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_appointment", "Error al actualizar la cita.")
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// REAGENDAR
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID inválido.")
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	userID := c.MustGet(middleware.ContextUserID).(uint)

	ap, err := h.rescheduleUC.Execute(c.Request.Context(), ucBooking.RescheduleInput{
		AppointmentID: uint(id),
		EmployeeID:    req.EmployeeID,
		ServiceID:     req.ServiceID,
		Date:          req.Date,
		Time:          req.Time,
		UserID:        &userID,
	})
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.Internal(c, "failed_to_update_appointment", "Error al reagendar la cita.")
		return
	}

	httpresp.OK(c, ap)
}
