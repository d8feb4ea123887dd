package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/healthyfeet/salon-scheduler/internal/httperr"
	"github.com/healthyfeet/salon-scheduler/internal/models"
	"github.com/healthyfeet/salon-scheduler/internal/usecase/report"
)

// Las ventas nacen al finalizar citas; este handler solo consulta.
type SaleHandler struct {
	repo report.Repository
	loc  *time.Location
}

func NewSaleHandler(repo report.Repository, loc *time.Location) *SaleHandler {
	return &SaleHandler{repo: repo, loc: loc}
}

type salesResponse struct {
	Sales []models.Sale `json:"sales"`
	Total float64       `json:"total"`
}

// List filtra por dia/semana/mes/ano; sin filtro regresa el día de hoy.
func (h *SaleHandler) List(c *gin.Context) {
	filter := c.DefaultQuery("filter", report.FilterDay)
	value := c.Query("valor")

	start, end, err := report.PeriodBounds(filter, value, time.Now().In(h.loc), h.loc)
	if err != nil {
		if writeBusinessError(c, err) {
			return
		}
		httperr.BadRequest(c, "invalid_filter", "Filtro inválido.")
		return
	}

	sales, err := h.repo.ListSalesBetween(c.Request.Context(), start, end)
	if err != nil {
		httperr.Internal(c, "failed_to_list_sales", "Error al listar ventas.")
		return
	}

	var total float64
	for _, sale := range sales {
		total += sale.Total
	}

	c.JSON(200, salesResponse{
		Sales: sales,
		Total: total,
	})
}
