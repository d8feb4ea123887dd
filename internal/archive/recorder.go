package archive

import (
	"gorm.io/gorm"

	"github.com/healthyfeet/salon-scheduler/internal/models"
)

// Recorder escribe en citas_historial. Solo inserta: el historial es
// de solo-anexar y aquí no existe ningún camino de update ni delete.
type Recorder struct {
	db *gorm.DB
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{db: db}
}

func (r *Recorder) Record(ev Event) error {
	entry := models.AppointmentArchive{
		AppointmentID: ev.AppointmentID,
		ClientID:      ev.ClientID,
		EmployeeID:    ev.EmployeeID,
		ServiceID:     ev.ServiceID,
		Date:          ev.Date,
		Time:          ev.Time,
		Status:        ev.Status,
		Notes:         ev.Notes,
	}

	return r.db.Create(&entry).Error
}
