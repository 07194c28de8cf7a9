package reporting

import (
	"context"
	"fmt"

	"github.com/jhoicas/reportes-taller/internal/domain/report"
	"github.com/jhoicas/reportes-taller/internal/domain/repository"
)

// Exporter convierte un snapshot en un archivo descargable. Solo lee el ReportData.
type Exporter interface {
	Export(ctx context.Context, data *report.ReportData) ([]byte, error)
	ContentType() string
	FileExtension() string
}

// ExportReport genera el reporte del rango y lo entrega al exportador.
func (s *Service) ExportReport(ctx context.Context, r repository.DateRange, exp Exporter) ([]byte, *report.ReportData, error) {
	data, err := s.GenerateReport(ctx, r)
	if err != nil {
		return nil, nil, err
	}
	out, err := exp.Export(ctx, data)
	if err != nil {
		return nil, nil, fmt.Errorf("reporting: exportar %s: %w", exp.FileExtension(), err)
	}
	return out, data, nil
}
