package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/healthyfeet/salon-scheduler/internal/httperr"
	"github.com/healthyfeet/salon-scheduler/internal/httpresp"
	"github.com/healthyfeet/salon-scheduler/internal/usecase/report"
)

type ReportHandler struct {
	reports *report.Service
	loc     *time.Location
}

func NewReportHandler(reports *report.Service, loc *time.Location) *ReportHandler {
	return &ReportHandler{reports: reports, loc: loc}
}

// MonthlySales agrupa las ventas por año/mes. Por default cubre los
// últimos doce meses; acepta ?year= para un año calendario completo.
func (h *ReportHandler) MonthlySales(c *gin.Context) {
	now := time.Now().In(h.loc)

	var from, to time.Time
	if yearStr := c.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil || year < 2000 || year > 2100 {
			httperr.BadRequest(c, "invalid_year", "Año inválido.")
			return
		}
		from = time.Date(year, 1, 1, 0, 0, 0, 0, h.loc)
		to = from.AddDate(1, 0, 0)
	} else {
		to = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, h.loc).AddDate(0, 1, 0)
		from = to.AddDate(-1, 0, 0)
	}

	rows, err := h.reports.MonthlySales(c.Request.Context(), from, to)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Error al generar el reporte.")
		return
	}

	httpresp.List(c, rows)
}

// TopClients ordena por gasto total descendente; ?limit= acota.
func (h *ReportHandler) TopClients(c *gin.Context) {
	now := time.Now().In(h.loc)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	// Ventana de un año hacia atrás.
	to := now.AddDate(0, 0, 1)
	from := now.AddDate(-1, 0, 0)

	rows, err := h.reports.TopClients(c.Request.Context(), from, to, limit)
	if err != nil {
		httperr.Internal(c, "failed_to_build_report", "Error al generar el reporte.")
		return
	}

	httpresp.List(c, rows)
}

func (h *ReportHandler) Dashboard(c *gin.Context) {
	stats, err := h.reports.Dashboard(c.Request.Context(), time.Now())
	if err != nil {
		httperr.Internal(c, "failed_to_build_dashboard", "Error al generar el tablero.")
		return
	}

	httpresp.OK(c, stats)
}
