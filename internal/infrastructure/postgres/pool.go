package postgres

import (
	"context"
	"fmt"
	"strconv"
	"time"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/reportes-taller/pkg/config"
)

// reportFetches consultas que GenerateReport lanza en paralelo por cada reporte.
const reportFetches = 4

// NewPool crea el pool de solo lectura que usa el motor de reportes.
func NewPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolConfig, err := poolConfigFor(cfg)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping DB: %w", err)
	}
	return pool, nil
}

// poolConfigFor arma la configuración del pool a partir de la app:
//   - MinConns alcanza para un reporte completo sin abrir conexiones en frío.
//   - MaxConns nunca baja de reportFetches, o un solo reporte se bloquearía a sí mismo.
//   - statement_timeout sigue a REPORT_QUERY_TIMEOUT_SECONDS, así el servidor corta la
//     consulta aunque el cliente no alcance a cancelarla.
//   - Las sesiones son de solo lectura.
func poolConfigFor(cfg *config.Config) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.DB.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parse DSN: %w", err)
	}

	maxConns := int32(cfg.DB.MaxConns)
	if maxConns < reportFetches {
		maxConns = reportFetches
	}
	poolConfig.MaxConns = maxConns
	poolConfig.MinConns = reportFetches
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	params := poolConfig.ConnConfig.RuntimeParams
	if _, ok := params["application_name"]; !ok && cfg.App.Name != "" {
		params["application_name"] = cfg.App.Name
	}
	params["default_transaction_read_only"] = "on"
	if cfg.Report.QueryTimeout > 0 {
		params["statement_timeout"] = strconv.FormatInt(cfg.Report.QueryTimeout.Milliseconds(), 10)
	}

	// NUMERIC -> shopspring/decimal en todas las conexiones del pool.
	poolConfig.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}
	return poolConfig, nil
}
