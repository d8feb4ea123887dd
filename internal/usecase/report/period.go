package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/healthyfeet/salon-scheduler/internal/httperr"
)

// Filtros de ventas del mostrador: dia, semana, mes, ano.
const (
	FilterDay   = "dia"
	FilterWeek  = "semana"
	FilterMonth = "mes"
	FilterYear  = "ano"
)

// PeriodBounds traduce (filtro, valor) al rango [start, end).
// Valores: dia "2024-06-01", semana "2024-W23" (ISO, lunes a lunes),
// mes "2024-06", ano "2024". Valor vacío = día de hoy.
func PeriodBounds(
	filter string,
	value string,
	now time.Time,
	loc *time.Location,
) (time.Time, time.Time, error) {

	if value == "" {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
		return today, today.AddDate(0, 0, 1), nil
	}

	switch filter {
	case FilterDay, "":
		day, err := time.ParseInLocation("2006-01-02", value, loc)
		if err != nil {
			return time.Time{}, time.Time{}, httperr.ErrBusiness(httperr.CodeValidationError)
		}
		return day, day.AddDate(0, 0, 1), nil

	case FilterWeek:
		parts := strings.SplitN(value, "-W", 2)
		if len(parts) != 2 {
			return time.Time{}, time.Time{}, httperr.ErrBusiness(httperr.CodeValidationError)
		}
		year, err1 := strconv.Atoi(parts[0])
		week, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || week < 1 || week > 53 {
			return time.Time{}, time.Time{}, httperr.ErrBusiness(httperr.CodeValidationError)
		}
		start := isoWeekStart(year, week, loc)
		return start, start.AddDate(0, 0, 7), nil

	case FilterMonth:
		month, err := time.ParseInLocation("2006-01", value, loc)
		if err != nil {
			return time.Time{}, time.Time{}, httperr.ErrBusiness(httperr.CodeValidationError)
		}
		return month, month.AddDate(0, 1, 0), nil

	case FilterYear:
		year, err := strconv.Atoi(value)
		if err != nil || year < 2000 || year > 2100 {
			return time.Time{}, time.Time{}, httperr.ErrBusiness(httperr.CodeValidationError)
		}
		start := time.Date(year, 1, 1, 0, 0, 0, 0, loc)
		return start, start.AddDate(1, 0, 0), nil
	}

	return time.Time{}, time.Time{}, httperr.ErrBusiness(httperr.CodeValidationError)
}

// WeekBounds regresa [lunes, lunes siguiente) de la semana del día dado.
func WeekBounds(day time.Time) (time.Time, time.Time) {
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	start := day.AddDate(0, 0, 1-weekday)
	return start, start.AddDate(0, 0, 7)
}

// isoWeekStart: lunes de la semana ISO pedida.
func isoWeekStart(year, week int, loc *time.Location) time.Time {
	// 4 de enero siempre cae en la semana ISO 1.
	jan4 := time.Date(year, 1, 4, 0, 0, 0, 0, loc)
	week1Start, _ := WeekBounds(jan4)
	return week1Start.AddDate(0, 0, (week-1)*7)
}
