package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/healthyfeet/salon-scheduler/internal/httperr"
	"github.com/healthyfeet/salon-scheduler/internal/models"
)

type TemplateHandler struct {
	db *gorm.DB
}

func NewTemplateHandler(db *gorm.DB) *TemplateHandler {
	return &TemplateHandler{db: db}
}

// --------- Requests ---------

type CreateTemplateRequest struct {
	Name string `json:"name" binding:"required"`
	Body string `json:"body" binding:"required"`
}

type UpdateTemplateRequest struct {
	Body string `json:"body" binding:"required"`
}

// --------- Handlers ---------

func (h *TemplateHandler) List(c *gin.Context) {
	var items []models.MessageTemplate
	if err := h.db.Order("name ASC").Find(&items).Error; err != nil {
		httperr.Internal(c, "failed_to_list_templates", "Error al listar plantillas de mensaje.")
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *TemplateHandler) Create(c *gin.Context) {
	var req CreateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	item := models.MessageTemplate{
		Name: req.Name,
		Body: req.Body,
	}

	if err := h.db.Create(&item).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			httperr.Conflict(c, "template_name_taken", "Ya existe una plantilla con ese nombre.")
			return
		}
		httperr.Internal(c, "failed_to_create_template", "Error al crear la plantilla de mensaje.")
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *TemplateHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req UpdateTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	var item models.MessageTemplate
	if err := h.db.First(&item, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "template_not_found", "Plantilla de mensaje no encontrada.")
			return
		}
		httperr.Internal(c, "failed_to_get_template", "Error al consultar la plantilla de mensaje.")
		return
	}

	item.Body = req.Body
	if err := h.db.Save(&item).Error; err != nil {
		httperr.Internal(c, "failed_to_update_template", "Error al actualizar la plantilla de mensaje.")
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *TemplateHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.MessageTemplate{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_template", "Error al eliminar la plantilla de mensaje.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "template_not_found", "Plantilla de mensaje no encontrada.")
		return
	}

	c.Status(http.StatusNoContent)
}
