package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/healthyfeet/salon-scheduler/internal/domain/booking"
	"github.com/healthyfeet/salon-scheduler/internal/httperr"
	"github.com/healthyfeet/salon-scheduler/internal/models"
	ucBooking "github.com/healthyfeet/salon-scheduler/internal/usecase/booking"
)

func seedAppointment(t *testing.T, repo *fakeRepo, clientID, employeeID uint, date, hour string, status domain.Status) *models.Appointment {
	t.Helper()

	d, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	require.NoError(t, err)

	ap := &models.Appointment{
		ClientID:   clientID,
		EmployeeID: employeeID,
		ServiceID:  1,
		Date:       d,
		Time:       hour,
		Status:     string(status),
	}
	require.NoError(t, repo.CreateAppointment(context.Background(), ap))
	return ap
}

func TestReschedule_MovesSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.seed()
	auditSink := &fakeAudit{}
	uc := ucBooking.NewRescheduleAppointment(repo, auditSink, time.UTC)

	ap := seedAppointment(t, repo, 1, 1, "2026-09-15", "10:00", domain.StatusPending)

	userID := uint(4)
	got, err := uc.Execute(context.Background(), ucBooking.RescheduleInput{
		AppointmentID: ap.ID,
		Date:          "2026-09-16",
		Time:          "12:30",
		UserID:        &userID,
	})

	require.NoError(t, err)
	assert.Equal(t, "12:30", got.Time)
	assert.Equal(t, time.Date(2026, 9, 16, 0, 0, 0, 0, time.UTC), got.Date)

	// sin empleado ni servicio en el input se conservan los actuales
	assert.Equal(t, uint(1), got.EmployeeID)
	assert.Equal(t, uint(1), got.ServiceID)

	require.Len(t, auditSink.events, 1)
	assert.Equal(t, "appointment_rescheduled", auditSink.events[0].Action)
	require.NotNil(t, auditSink.events[0].UserID)
	assert.Equal(t, uint(4), *auditSink.events[0].UserID)
}

func TestReschedule_SameSlotExcludesSelf(t *testing.T) {
	repo := newFakeRepo()
	repo.seed()
	uc := ucBooking.NewRescheduleAppointment(repo, &fakeAudit{}, time.UTC)

	ap := seedAppointment(t, repo, 1, 1, "2026-09-15", "10:00", domain.StatusConfirmed)

	// reagendar al mismo slot no debe chocar con la propia cita
	_, err := uc.Execute(context.Background(), ucBooking.RescheduleInput{
		AppointmentID: ap.ID,
		EmployeeID:    2,
		Date:          "2026-09-15",
		Time:          "10:00",
	})

	assert.NoError(t, err)
}

func TestReschedule_SlotConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.seed()
	uc := ucBooking.NewRescheduleAppointment(repo, &fakeAudit{}, time.UTC)

	seedAppointment(t, repo, 2, 1, "2026-09-15", "11:00", domain.StatusConfirmed)
	ap := seedAppointment(t, repo, 1, 1, "2026-09-15", "10:00", domain.StatusPending)

	_, err := uc.Execute(context.Background(), ucBooking.RescheduleInput{
		AppointmentID: ap.ID,
		Date:          "2026-09-15",
		Time:          "11:00",
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))
}

func TestReschedule_DoubleBooking(t *testing.T) {
	repo := newFakeRepo()
	repo.seed()
	uc := ucBooking.NewRescheduleAppointment(repo, &fakeAudit{}, time.UTC)

	seedAppointment(t, repo, 1, 2, "2026-09-15", "11:00", domain.StatusConfirmed)
	ap := seedAppointment(t, repo, 1, 1, "2026-09-15", "10:00", domain.StatusPending)

	_, err := uc.Execute(context.Background(), ucBooking.RescheduleInput{
		AppointmentID: ap.ID,
		Date:          "2026-09-15",
		Time:          "11:00",
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeDoubleBooking))
}

func TestReschedule_TerminalBlocked(t *testing.T) {
	repo := newFakeRepo()
	repo.seed()
	uc := ucBooking.NewRescheduleAppointment(repo, &fakeAudit{}, time.UTC)

	for _, status := range []domain.Status{domain.StatusCancelled, domain.StatusFinalized} {
		ap := seedAppointment(t, repo, 1, 1, "2026-09-15", "10:00", status)

		_, err := uc.Execute(context.Background(), ucBooking.RescheduleInput{
			AppointmentID: ap.ID,
			Date:          "2026-09-16",
			Time:          "10:00",
		})

		assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidState))
	}
}

func TestReschedule_InactiveEmployeeRejected(t *testing.T) {
	repo := newFakeRepo()
	repo.seed()
	repo.employees[2].Status = models.EmployeeInactive
	uc := ucBooking.NewRescheduleAppointment(repo, &fakeAudit{}, time.UTC)

	ap := seedAppointment(t, repo, 1, 1, "2026-09-15", "10:00", domain.StatusPending)

	_, err := uc.Execute(context.Background(), ucBooking.RescheduleInput{
		AppointmentID: ap.ID,
		EmployeeID:    2,
		Date:          "2026-09-16",
		Time:          "10:00",
	})

	assert.True(t, httperr.IsBusiness(err, httperr.CodeReferenceNotFound))
}
