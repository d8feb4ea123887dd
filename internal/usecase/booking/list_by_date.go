package booking

import (
	"context"
	"time"

	domain "github.com/healthyfeet/salon-scheduler/internal/domain/booking"
	"github.com/healthyfeet/salon-scheduler/internal/dto"
)

// Vista de "citas del día": filtrada a una fecha, ordenada por hora.
type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListAppointmentsForDate(ctx, date)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:           ap.ID,
			Date:         ap.Date,
			Time:         ap.Time,
			Status:       ap.Status,
			ClientName:   ap.Client.Name,
			ClientPhone:  ap.Client.Phone,
			EmployeeName: ap.Employee.Name,
			ServiceName:  ap.Service.Name,
			ServicePrice: ap.Service.Price,
		})
	}

	return out, nil
}
