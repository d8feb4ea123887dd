package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/healthyfeet/salon-scheduler/internal/httperr"
	"github.com/healthyfeet/salon-scheduler/internal/models"
	"github.com/healthyfeet/salon-scheduler/internal/validators"
)

type EmployeeHandler struct {
	db *gorm.DB
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{db: db}
}

// --------- Requests ---------

type CreateEmployeeRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type UpdateEmployeeRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Status *string `json:"status,omitempty"`
}

// --------- Handlers ---------

func (h *EmployeeHandler) List(c *gin.Context) {
	statusFilter := strings.TrimSpace(c.Query("status"))

	q := h.db.Session(&gorm.Session{})
	if statusFilter != "" {
		q = q.Where("status = ?", statusFilter)
	}

	var employees []models.Employee
	if err := q.
		Order("name ASC").
		Find(&employees).Error; err != nil {

		httperr.Internal(c, "failed_to_list_employees", "Error al listar empleados.")
		return
	}

	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Phone != "" && !validators.IsValidPhone(req.Phone) {
		httperr.BadRequest(c, httperr.CodeValidationError,
			"El teléfono debe tener exactamente 10 dígitos.")
		return
	}

	employee := models.Employee{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: models.EmployeeActive,
	}

	if err := h.db.Create(&employee).Error; err != nil {
		httperr.Internal(c, "failed_to_create_employee", "Error al crear empleado.")
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var employee models.Employee
	if err := h.db.First(&employee, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "employee_not_found", "Empleado no encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_employee", "Error al consultar empleado.")
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.Phone != nil && !validators.IsValidPhone(*req.Phone) {
		httperr.BadRequest(c, httperr.CodeValidationError,
			"El teléfono debe tener exactamente 10 dígitos.")
		return
	}

	if req.Status != nil &&
		*req.Status != models.EmployeeActive &&
		*req.Status != models.EmployeeInactive {
		httperr.BadRequest(c, httperr.CodeValidationError, "Estado inválido.")
		return
	}

	if req.Name != nil {
		employee.Name = *req.Name
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.Phone != nil {
		employee.Phone = *req.Phone
	}
	if req.Status != nil {
		employee.Status = *req.Status
	}

	if err := h.db.Save(&employee).Error; err != nil {
		httperr.Internal(c, "failed_to_update_employee", "Error al actualizar empleado.")
		return
	}

	c.JSON(http.StatusOK, employee)
}

// Deactivate es la baja operativa normal: conserva al empleado y su
// agenda pero lo saca de las lecturas que alimentan citas nuevas.
func (h *EmployeeHandler) Deactivate(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Model(&models.Employee{}).
		Where("id = ?", id).
		Update("status", models.EmployeeInactive)

	if res.Error != nil {
		httperr.Internal(c, "failed_to_deactivate_employee", "Error al dar de baja.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "employee_not_found", "Empleado no encontrado.")
		return
	}

	c.Status(http.StatusNoContent)
}

// Delete borra de verdad, arrastrando las citas del empleado por la
// cascada de llave foránea. Solo admin.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.Employee{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_employee", "Error al borrar empleado.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "employee_not_found", "Empleado no encontrado.")
		return
	}

	c.Status(http.StatusNoContent)
}
