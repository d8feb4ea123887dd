package booking_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/healthyfeet/salon-scheduler/internal/domain/booking"
	"github.com/healthyfeet/salon-scheduler/internal/httperr"
	ucBooking "github.com/healthyfeet/salon-scheduler/internal/usecase/booking"
)

func newCreateUC(repo *fakeRepo) (*ucBooking.CreateAppointment, *fakeAudit) {
	auditSink := &fakeAudit{}
	return ucBooking.NewCreateAppointment(repo, auditSink, time.UTC), auditSink
}

func validInput() ucBooking.CreateAppointmentInput {
	return ucBooking.CreateAppointmentInput{
		ClientID:   1,
		EmployeeID: 1,
		ServiceID:  1,
		Date:       "2026-09-15",
		Time:       "10:00",
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	repo := newFakeRepo()
	repo.seed()
	uc, auditSink := newCreateUC(repo)

	userID := uint(9)
	in := validInput()
	in.UserID = &userID

	ap, err := uc.Execute(context.Background(), in)

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, uint(1), ap.ClientID)
	assert.Equal(t, "10:00", ap.Time)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), ap.Date)
	assert.NotZero(t, ap.ID)

	require.Len(t, auditSink.events, 1)
	assert.Equal(t, "appointment_created", auditSink.events[0].Action)
	require.NotNil(t, auditSink.events[0].UserID)
	assert.Equal(t, uint(9), *auditSink.events[0].UserID)
}

func TestCreateAppointment_GetOrCreateClientByPhone(t *testing.T) {
	repo := newFakeRepo()
	repo.seed()
	uc, _ := newCreateUC(repo)

	in := validInput()
	in.ClientID = 0
	in.ClientName = "Ana Torres"
	in.ClientPhone = "5512345678"

	before := len(repo.clients)

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Len(t, repo.clients, before+1)

	// mismo teléfono, otro horario: reutiliza el cliente
	in2 := in
	in2.Time = "11:00"
	ap2, err := uc.Execute(context.Background(), in2)
	require.NoError(t, err)
	assert.Equal(t, ap.ClientID, ap2.ClientID)
	assert.Len(t, repo.clients, before+1)
}

func TestCreateAppointment_ValidationErrors(t *testing.T) {
	repo := newFakeRepo()
	repo.seed()
	uc, _ := newCreateUC(repo)

	type testCase struct {
		name   string
		mutate func(*ucBooking.CreateAppointmentInput)
	}

	tests := []testCase{
		{"BadDate", func(in *ucBooking.CreateAppointmentInput) { in.Date = "15/09/2026" }},
		{"BadTime", func(in *ucBooking.CreateAppointmentInput) { in.Time = "10:00:00" }},
		{"ShortPhone", func(in *ucBooking.CreateAppointmentInput) {
			in.ClientID = 0
			in.ClientName = "Ana"
			in.ClientPhone = "12345"
		}},
		{"MissingName", func(in *ucBooking.CreateAppointmentInput) {
			in.ClientID = 0
			in.ClientPhone = "5512345678"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, httperr.CodeValidationError))
		})
	}
}

func TestCreateAppointment_ReferenceNotFound(t *testing.T) {
	repo := newFakeRepo()
	repo.seed()
	uc, _ := newCreateUC(repo)

	type testCase struct {
		name   string
		mutate func(*ucBooking.CreateAppointmentInput)
	}

	tests := []testCase{
		{"UnknownClient", func(in *ucBooking.CreateAppointmentInput) { in.ClientID = 99 }},
		{"UnknownEmployee", func(in *ucBooking.CreateAppointmentInput) { in.EmployeeID = 99 }},
		{"UnknownService", func(in *ucBooking.CreateAppointmentInput) { in.ServiceID = 99 }},
		{"InactiveService", func(in *ucBooking.CreateAppointmentInput) { in.ServiceID = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			assert.True(t, httperr.IsBusiness(err, httperr.CodeReferenceNotFound))
		})
	}
}

func TestCreateAppointment_SlotConflict(t *testing.T) {
	repo := newFakeRepo()
	repo.seed()
	uc, _ := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	// misma empleada, mismo slot, otra clienta
	in := validInput()
	in.ClientID = 2

	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeSlotConflict))
}

func TestCreateAppointment_DoubleBooking(t *testing.T) {
	repo := newFakeRepo()
	repo.seed()
	uc, _ := newCreateUC(repo)

	_, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	// misma clienta, mismo slot, otra empleada
	in := validInput()
	in.EmployeeID = 2

	_, err = uc.Execute(context.Background(), in)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeDoubleBooking))
}

func TestCreateAppointment_CancelledFreesSlot(t *testing.T) {
	repo := newFakeRepo()
	repo.seed()
	uc, _ := newCreateUC(repo)

	ap, err := uc.Execute(context.Background(), validInput())
	require.NoError(t, err)

	repo.appointments[ap.ID].Status = string(domain.StatusCancelled)

	in := validInput()
	in.ClientID = 2

	_, err = uc.Execute(context.Background(), in)
	assert.NoError(t, err)
}
