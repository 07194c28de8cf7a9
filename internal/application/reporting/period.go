package reporting

import (
	"fmt"
	"time"

	"github.com/jhoicas/reportes-taller/internal/domain"
	"github.com/jhoicas/reportes-taller/internal/domain/repository"
)

const dateLayout = "2006-01-02"

// ParsePeriod convierte los strings YYYY-MM-DD en un DateRange; aplica valores por defecto
// si están vacíos: fin = now, inicio = primer día del mes del fin. El fin es inclusivo hasta
// el último instante del día.
func ParsePeriod(startStr, endStr string, now time.Time) (repository.DateRange, error) {
	var r repository.DateRange
	loc := now.Location()

	if endStr == "" {
		r.End = now
	} else {
		end, err := time.ParseInLocation(dateLayout, endStr, loc)
		if err != nil {
			return repository.DateRange{}, fmt.Errorf("end_date inválido: %w", domain.ErrInvalidInput)
		}
		r.End = end.Add(24*time.Hour - time.Nanosecond)
	}

	if startStr == "" {
		r.Start = time.Date(r.End.Year(), r.End.Month(), 1, 0, 0, 0, 0, loc)
	} else {
		start, err := time.ParseInLocation(dateLayout, startStr, loc)
		if err != nil {
			return repository.DateRange{}, fmt.Errorf("start_date inválido: %w", domain.ErrInvalidInput)
		}
		r.Start = start
	}

	if r.Start.After(r.End) {
		return repository.DateRange{}, fmt.Errorf("start_date no puede ser posterior a end_date: %w", domain.ErrInvalidInput)
	}
	return r, nil
}
