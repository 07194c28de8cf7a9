package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/reportes-taller/internal/application/dto"
	"github.com/jhoicas/reportes-taller/internal/application/reporting"
	"github.com/jhoicas/reportes-taller/internal/domain"
)

// ReportHandler maneja los endpoints del tablero de reportes.
type ReportHandler struct {
	svc       *reporting.Service
	exporters map[string]reporting.Exporter
	seq       *reporting.Sequencer
	now       func() time.Time
	log       zerolog.Logger
}

// NewReportHandler construye el handler. exporters se indexa por formato (pdf, xlsx).
func NewReportHandler(svc *reporting.Service, exporters map[string]reporting.Exporter, now func() time.Time, log zerolog.Logger) *ReportHandler {
	if now == nil {
		now = time.Now
	}
	return &ReportHandler{
		svc:       svc,
		exporters: exporters,
		seq:       &reporting.Sequencer{},
		now:       now,
		log:       log,
	}
}

// GetSummary godoc
// @Summary      Reporte del taller para un rango de fechas
// @Description  KPIs de inventario, más vendidos, distribución por categoría, desempeño de
//               proveedores, movimientos de stock y rentabilidad por producto.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        start_date  query  string  false  "Inicio del período (YYYY-MM-DD). Default: primer día del mes de end_date."
// @Param        end_date    query  string  false  "Fin del período (YYYY-MM-DD), inclusive. Default: hoy."
// @Success      200  {object}  report.ReportData
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/summary [get]
func (h *ReportHandler) GetSummary(c *fiber.Ctx) error {
	var req dto.ReportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	period, err := reporting.ParsePeriod(req.StartDate, req.EndDate, h.now())
	if err != nil {
		return h.reportError(c, err)
	}

	id := h.seq.Next()
	data, err := h.svc.GenerateReport(c.UserContext(), period)
	if err != nil {
		return h.reportError(c, err)
	}
	if !h.seq.Complete(id, data) {
		h.log.Debug().Uint64("request", id).Str("report_id", data.ID).Msg("snapshot superado por una solicitud más reciente")
	}
	return c.JSON(data)
}

// GetLatest devuelve el último snapshot aceptado por el Sequencer del handler. Hay uno solo
// por proceso, sin importar el usuario ni el rango: es el de la solicitud más reciente de
// /summary que terminó. El cliente debe leer period del cuerpo para saber qué rango trae.
//
// GetLatest godoc
// @Summary      Último reporte publicado
// @Description  Devuelve el snapshot más reciente aceptado por el servidor sin recalcular. Es único para todo el proceso: corresponde al último rango que cualquier usuario pidió en /summary; revise period en la respuesta.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  report.ReportData
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/latest [get]
func (h *ReportHandler) GetLatest(c *fiber.Ctx) error {
	data, _ := h.seq.Latest()
	if data == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NO_REPORT", Message: "aún no se ha generado ningún reporte",
		})
	}
	return c.JSON(data)
}

// Export godoc
// @Summary      Exportar reporte (PDF o Excel)
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format      query  string  true   "pdf | xlsx"
// @Param        start_date  query  string  false  "Inicio del período (YYYY-MM-DD)"
// @Param        end_date    query  string  false  "Fin del período (YYYY-MM-DD)"
// @Success      200  {file}    file
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/reports/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	var req dto.ExportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_PARAMS", Message: "parámetros de consulta inválidos",
		})
	}
	exp, ok := h.exporters[req.Format]
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_FORMAT", Message: fmt.Sprintf("formato %q no soportado; use pdf o xlsx", req.Format),
		})
	}
	period, err := reporting.ParsePeriod(req.StartDate, req.EndDate, h.now())
	if err != nil {
		return h.reportError(c, err)
	}

	out, data, err := h.svc.ExportReport(c.UserContext(), period, exp)
	if err != nil {
		return h.reportError(c, err)
	}

	filename := fmt.Sprintf("reporte_%s_%s.%s",
		data.Period.Start.Format(time.DateOnly), data.Period.End.Format(time.DateOnly), exp.FileExtension())
	c.Set(fiber.HeaderContentType, exp.ContentType())
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
	return c.Send(out)
}

// reportError traduce los errores del motor de reportes a respuestas HTTP.
func (h *ReportHandler) reportError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_PARAMS", Message: err.Error()})
	case errors.Is(err, domain.ErrFetch):
		h.log.Error().Err(err).Msg("reporte: fallo consultando datos")
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
			Code: "FETCH_FAILED", Message: "no se pudieron consultar los datos del reporte, intente más tarde",
		})
	case errors.Is(err, domain.ErrAggregation):
		h.log.Error().Err(err).Msg("reporte: datos inconsistentes")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "AGGREGATION_FAILED", Message: err.Error()})
	default:
		h.log.Error().Err(err).Msg("reporte: error interno")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
