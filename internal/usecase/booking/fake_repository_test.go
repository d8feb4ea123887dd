package booking_test

import (
	"context"
	"errors"
	"time"

	"github.com/healthyfeet/salon-scheduler/internal/archive"
	"github.com/healthyfeet/salon-scheduler/internal/audit"
	domain "github.com/healthyfeet/salon-scheduler/internal/domain/booking"
	"github.com/healthyfeet/salon-scheduler/internal/httperr"
	"github.com/healthyfeet/salon-scheduler/internal/models"
)

var errNotFound = errors.New("record not found")

// fakeRepo reproduce en memoria el contrato del repositorio real,
// incluidas las verificaciones de exclusividad de slot.
type fakeRepo struct {
	clients   map[uint]*models.Client
	employees map[uint]*models.Employee
	services  map[uint]*models.Service

	appointments map[uint]*models.Appointment
	nextID       uint

	sales      []models.Sale
	saleErr    error
	lastVisits map[uint]time.Time
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		clients:      make(map[uint]*models.Client),
		employees:    make(map[uint]*models.Employee),
		services:     make(map[uint]*models.Service),
		appointments: make(map[uint]*models.Appointment),
		nextID:       1,
		lastVisits:   make(map[uint]time.Time),
	}
}

func (f *fakeRepo) seed() {
	f.clients[1] = &models.Client{ID: 1, Name: "Laura Méndez", Phone: "5511111111"}
	f.clients[2] = &models.Client{ID: 2, Name: "Pedro Ruiz", Phone: "5522222222"}
	f.employees[1] = &models.Employee{ID: 1, Name: "Sofía", Status: models.EmployeeActive}
	f.employees[2] = &models.Employee{ID: 2, Name: "Carmen", Status: models.EmployeeActive}
	f.services[1] = &models.Service{ID: 1, Name: "Pedicure spa", Price: 350, Active: true}
	f.services[2] = &models.Service{ID: 2, Name: "Manicure", Price: 200, Active: false}
}

func (f *fakeRepo) GetClientByID(_ context.Context, id uint) (*models.Client, error) {
	if c, ok := f.clients[id]; ok {
		return c, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetOrCreateClient(_ context.Context, name, phone string) (*models.Client, error) {
	for _, c := range f.clients {
		if c.Phone == phone {
			return c, nil
		}
	}

	id := uint(len(f.clients) + 100)
	c := &models.Client{ID: id, Name: name, Phone: phone}
	f.clients[id] = c
	return c, nil
}

func (f *fakeRepo) GetActiveEmployee(_ context.Context, id uint) (*models.Employee, error) {
	if e, ok := f.employees[id]; ok && e.Status == models.EmployeeActive {
		return e, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetActiveService(_ context.Context, id uint) (*models.Service, error) {
	if s, ok := f.services[id]; ok && s.Active {
		return s, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) GetService(_ context.Context, id uint) (*models.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) assertSlotFree(ap *models.Appointment, excludeID uint) error {
	for _, other := range f.appointments {
		if other.ID == excludeID {
			continue
		}
		if other.Status == string(domain.StatusCancelled) {
			continue
		}
		if !other.Date.Equal(ap.Date) || other.Time != ap.Time {
			continue
		}
		if other.EmployeeID == ap.EmployeeID {
			return httperr.ErrBusiness(httperr.CodeSlotConflict)
		}
		if other.ClientID == ap.ClientID {
			return httperr.ErrBusiness(httperr.CodeDoubleBooking)
		}
	}
	return nil
}

func (f *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if err := f.assertSlotFree(ap, 0); err != nil {
		return err
	}

	ap.ID = f.nextID
	f.nextID++
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) SaveAppointmentChecked(_ context.Context, ap *models.Appointment) error {
	if err := f.assertSlotFree(ap, ap.ID); err != nil {
		return err
	}

	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) GetAppointment(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := f.appointments[id]; ok {
		out := *ap
		return &out, nil
	}
	return nil, errNotFound
}

func (f *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := f.appointments[ap.ID]; !ok {
		return errNotFound
	}
	stored := *ap
	f.appointments[ap.ID] = &stored
	return nil
}

func (f *fakeRepo) CreateSale(_ context.Context, sale *models.Sale) error {
	if f.saleErr != nil {
		return f.saleErr
	}
	f.sales = append(f.sales, *sale)
	return nil
}

func (f *fakeRepo) TouchClientLastVisit(_ context.Context, clientID uint, visitedAt time.Time) error {
	f.lastVisits[clientID] = visitedAt
	return nil
}

func (f *fakeRepo) ListAppointmentsForDate(_ context.Context, date time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if ap.Date.Equal(date) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListAppointmentsForPeriod(_ context.Context, start, end time.Time) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range f.appointments {
		if !ap.Date.Before(start) && ap.Date.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

// ---------- sinks ----------

type fakeAudit struct {
	events []audit.Event
}

func (f *fakeAudit) Dispatch(ev audit.Event) {
	f.events = append(f.events, ev)
}

type fakeArchive struct {
	events []archive.Event
}

func (f *fakeArchive) Dispatch(ev archive.Event) {
	f.events = append(f.events, ev)
}
