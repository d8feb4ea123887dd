package report

import (
	"context"
	"sort"
	"time"

	"github.com/healthyfeet/salon-scheduler/internal/models"
)

// Las "vistas" de reporteo se exponen como funciones de consulta:
// el repositorio entrega filas y aquí se agrupan. Al volumen de un
// salón (decenas de ventas por día) no amerita GROUP BY almacenado.
type Repository interface {
	ListSalesBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Sale, error)

	CountAppointmentsOn(ctx context.Context, date time.Time) (int64, error)
	CountClients(ctx context.Context) (int64, error)
	CountActiveEmployees(ctx context.Context) (int64, error)
}

type Service struct {
	repo Repository
	loc  *time.Location
}

func NewService(repo Repository, loc *time.Location) *Service {
	return &Service{repo: repo, loc: loc}
}

// ======================================================
// VENTAS MENSUALES
// ======================================================

type MonthlySalesRow struct {
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Count   int     `json:"count"`
	Total   float64 `json:"total"`
	Average float64 `json:"average"`
}

func (s *Service) MonthlySales(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]MonthlySalesRow, error) {

	sales, err := s.repo.ListSalesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	type key struct {
		year  int
		month int
	}

	groups := make(map[key]*MonthlySalesRow)
	for _, sale := range sales {
		at := sale.SoldAt.In(s.loc)
		k := key{year: at.Year(), month: int(at.Month())}

		row, ok := groups[k]
		if !ok {
			row = &MonthlySalesRow{Year: k.year, Month: k.month}
			groups[k] = row
		}
		row.Count++
		row.Total += sale.Total
	}

	out := make([]MonthlySalesRow, 0, len(groups))
	for _, row := range groups {
		row.Average = row.Total / float64(row.Count)
		out = append(out, *row)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})

	return out, nil
}

// ======================================================
// MEJORES CLIENTES
// ======================================================

type TopClientRow struct {
	ClientID   uint    `json:"client_id"`
	ClientName string  `json:"client_name"`
	Visits     int     `json:"visits"`
	Spent      float64 `json:"spent"`
}

func (s *Service) TopClients(
	ctx context.Context,
	from time.Time,
	to time.Time,
	limit int,
) ([]TopClientRow, error) {

	if limit <= 0 {
		limit = 10
	}

	sales, err := s.repo.ListSalesBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	groups := make(map[uint]*TopClientRow)
	for _, sale := range sales {
		row, ok := groups[sale.ClientID]
		if !ok {
			row = &TopClientRow{
				ClientID:   sale.ClientID,
				ClientName: sale.Client.Name,
			}
			groups[sale.ClientID] = row
		}
		row.Visits++
		row.Spent += sale.Total
	}

	out := make([]TopClientRow, 0, len(groups))
	for _, row := range groups {
		out = append(out, *row)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Spent != out[j].Spent {
			return out[i].Spent > out[j].Spent
		}
		return out[i].ClientID < out[j].ClientID
	})

	if len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

// ======================================================
// TABLERO
// ======================================================

type DashboardStats struct {
	TodayAppointments int64   `json:"today_appointments"`
	TotalClients      int64   `json:"total_clients"`
	ActiveEmployees   int64   `json:"active_employees"`
	WeekSalesTotal    float64 `json:"week_sales_total"`
}

func (s *Service) Dashboard(
	ctx context.Context,
	now time.Time,
) (*DashboardStats, error) {

	now = now.In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)

	appointments, err := s.repo.CountAppointmentsOn(ctx, today)
	if err != nil {
		return nil, err
	}

	clients, err := s.repo.CountClients(ctx)
	if err != nil {
		return nil, err
	}

	employees, err := s.repo.CountActiveEmployees(ctx)
	if err != nil {
		return nil, err
	}

	weekStart, weekEnd := WeekBounds(today)
	sales, err := s.repo.ListSalesBetween(ctx, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	var weekTotal float64
	for _, sale := range sales {
		weekTotal += sale.Total
	}

	return &DashboardStats{
		TodayAppointments: appointments,
		TotalClients:      clients,
		ActiveEmployees:   employees,
		WeekSalesTotal:    weekTotal,
	}, nil
}
