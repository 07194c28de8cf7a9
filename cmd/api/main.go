// @title                       Reportes Taller API
// @version                     1.0
// @description                 Motor de reportes del taller: inventario, ventas, proveedores y rentabilidad.
// @BasePath                    /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Escribe "Bearer" seguido de un espacio y el token JWT.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/reportes-taller/docs"
	"github.com/jhoicas/reportes-taller/internal/application/dto"
	"github.com/jhoicas/reportes-taller/internal/application/reporting"
	infraexcel "github.com/jhoicas/reportes-taller/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/reportes-taller/internal/infrastructure/pdf"
	"github.com/jhoicas/reportes-taller/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/reportes-taller/internal/interfaces/http"
	"github.com/jhoicas/reportes-taller/pkg/config"
	"github.com/jhoicas/reportes-taller/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Dur("query_timeout", cfg.Report.QueryTimeout).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	reportRepo := postgres.NewReportRepository(pool, cfg.Report.QueryTimeout)
	reportSvc := reporting.NewService(reportRepo,
		reporting.WithLogger(log.Component("reporting")),
		reporting.WithMovementLimit(cfg.Report.MovementLimit),
	)
	log.Info().Int("movement_limit", reportSvc.MovementLimit()).Msg("motor de reportes listo")

	// Exportadores por formato de descarga
	exporters := map[string]reporting.Exporter{
		dto.ExportFormatPDF:  infrapdf.NewMarotoReportExporter(cfg.App.Name),
		dto.ExportFormatXLSX: infraexcel.NewExcelizeReportExporter(),
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Reportes Taller API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		ReportService: reportSvc,
		Exporters:     exporters,
		JWTSecret:     cfg.JWT.Secret,
		ServiceName:   cfg.App.Name,
		Logger:        log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
