package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/healthyfeet/salon-scheduler/internal/domain/orthotic"
	"github.com/healthyfeet/salon-scheduler/internal/httperr"
	"github.com/healthyfeet/salon-scheduler/internal/models"
)

type OrthoticHandler struct {
	db *gorm.DB
}

func NewOrthoticHandler(db *gorm.DB) *OrthoticHandler {
	return &OrthoticHandler{db: db}
}

// --------- Requests ---------

type CreateOrthoticRequest struct {
	ClientID uint   `json:"client_id" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Material string `json:"material"`
	Size     string `json:"size"`
	Side     string `json:"side"`
}

type UpdateOrthoticStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --------- Handlers ---------

func (h *OrthoticHandler) Create(c *gin.Context) {
	var req CreateOrthoticRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var client models.Client
	if err := h.db.First(&client, req.ClientID).Error; err != nil {
		httperr.NotFound(c, httperr.CodeReferenceNotFound, "Cliente no encontrado.")
		return
	}

	item := models.Orthotic{
		ClientID: client.ID,
		Code:     uuid.NewString(),
		Type:     req.Type,
		Material: req.Material,
		Size:     req.Size,
		Side:     req.Side,
		Status:   string(domain.InitialStatus()),
	}

	if err := h.db.Create(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_create_orthotic", "Error al registrar la plantilla.")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *OrthoticHandler) List(c *gin.Context) {
	q := h.db.Session(&gorm.Session{})

	if clientID := c.Query("client_id"); clientID != "" {
		q = q.Where("client_id = ?", clientID)
	}
	if status := c.Query("status"); status != "" {
		q = q.Where("status = ?", status)
	}

	var items []models.Orthotic
	if err := q.
		Order("created_at DESC").
		Find(&items).Error; err != nil {

		httperr.Internal(c, "failed_to_list_orthotics", "Error al listar plantillas.")
		return
	}

	c.JSON(http.StatusOK, items)
}

// UpdateStatus avanza el ciclo de fabricación un paso a la vez.
func (h *OrthoticHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req UpdateOrthoticStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	target := domain.Status(req.Status)
	if !domain.IsValidStatus(target) {
		httperr.BadRequest(c, httperr.CodeValidationError, "Estado inválido.")
		return
	}

	var item models.Orthotic
	if err := h.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "orthotic_not_found", "Plantilla no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_orthotic", "Error al consultar la plantilla.")
		return
	}

	if err := domain.CanAdvance(domain.Status(item.Status), target); err != nil {
		writeBusinessError(c, err)
		return
	}

	item.Status = string(target)
	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_orthotic", "Error al actualizar la plantilla.")
		return
	}

	c.JSON(http.StatusOK, item)
}
