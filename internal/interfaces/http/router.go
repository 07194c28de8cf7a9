package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/reportes-taller/internal/application/dto"
	"github.com/jhoicas/reportes-taller/internal/application/reporting"
	"github.com/jhoicas/reportes-taller/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ReportService *reporting.Service
	Exporters     map[string]reporting.Exporter // formato → exportador
	JWTSecret     string
	ServiceName   string
	Logger        zerolog.Logger
	Now           func() time.Time // nil = time.Now
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.ServiceName})
	})

	api := app.Group("/api")

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Reportes: lectura para admin y vendedor; exportación solo admin
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportService, deps.Exporters, deps.Now, deps.Logger)
	reports.Get("/summary", RequireRole(jwt.RoleAdmin, jwt.RoleVendedor), reportHandler.GetSummary)
	reports.Get("/latest", RequireRole(jwt.RoleAdmin, jwt.RoleVendedor), reportHandler.GetLatest)
	reports.Get("/export", RequireRole(jwt.RoleAdmin), reportHandler.Export)
}
