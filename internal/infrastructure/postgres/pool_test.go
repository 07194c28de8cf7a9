package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-taller/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "reportes-taller"},
		DB: config.DBConfig{
			Host: "localhost", Port: 5432, User: "postgres", Password: "secreto",
			DBName: "taller", SSLMode: "disable", MaxConns: 16,
		},
		Report: config.ReportConfig{MovementLimit: 100, QueryTimeout: 15 * time.Second},
	}
}

func TestPoolConfigFor_ParametrosDeSesion(t *testing.T) {
	pc, err := poolConfigFor(testConfig())
	require.NoError(t, err)

	params := pc.ConnConfig.RuntimeParams
	assert.Equal(t, "15000", params["statement_timeout"])
	assert.Equal(t, "on", params["default_transaction_read_only"])
	assert.Equal(t, "reportes-taller", params["application_name"])
	assert.Equal(t, int32(16), pc.MaxConns)
	assert.Equal(t, int32(reportFetches), pc.MinConns)
	assert.NotNil(t, pc.AfterConnect)
}

func TestPoolConfigFor_MaxConnsAlcanzaParaUnReporte(t *testing.T) {
	cfg := testConfig()
	cfg.DB.MaxConns = 2

	pc, err := poolConfigFor(cfg)
	require.NoError(t, err)
	assert.Equal(t, int32(reportFetches), pc.MaxConns)
}

func TestPoolConfigFor_RespetaApplicationNameDelURL(t *testing.T) {
	cfg := testConfig()
	cfg.DB.DatabaseURL = "postgres://u:p@db:5432/taller?sslmode=disable&application_name=bi"

	pc, err := poolConfigFor(cfg)
	require.NoError(t, err)
	assert.Equal(t, "bi", pc.ConnConfig.RuntimeParams["application_name"])
	assert.Equal(t, "db", pc.ConnConfig.Host)
}

func TestPoolConfigFor_DSNInvalido(t *testing.T) {
	cfg := testConfig()
	cfg.DB.DatabaseURL = "postgres://u:p@db:notaport/taller"

	_, err := poolConfigFor(cfg)
	assert.ErrorContains(t, err, "parse DSN")
}
