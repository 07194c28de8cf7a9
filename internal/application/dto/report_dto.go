package dto

// ReportRequest parámetros de consulta para el resumen de reportes.
type ReportRequest struct {
	StartDate string `query:"start_date"` // YYYY-MM-DD; default primer día del mes
	EndDate   string `query:"end_date"`   // YYYY-MM-DD; default hoy
}

// ExportRequest parámetros de consulta para la exportación del reporte.
type ExportRequest struct {
	StartDate string `query:"start_date"`
	EndDate   string `query:"end_date"`
	Format    string `query:"format"` // pdf | xlsx
}

// Formatos de exportación soportados.
const (
	ExportFormatPDF  = "pdf"
	ExportFormatXLSX = "xlsx"
)
