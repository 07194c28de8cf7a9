package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/reportes-taller/internal/domain/entity"
	"github.com/jhoicas/reportes-taller/internal/domain/report"
)

func sampleReport() *report.ReportData {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	return &report.ReportData{
		ID:                   "rep-1",
		Period:               report.Period{Start: start, End: start.AddDate(0, 0, 14)},
		GeneratedAt:          start.AddDate(0, 0, 14),
		TotalProducts:        2,
		TotalInventoryValue:  decimal.NewFromInt(1500000),
		OutOfStockCount:      1,
		SupplierCount:        1,
		CategoryCount:        1,
		AverageMarginPercent: decimal.RequireFromString("33.3"),
		PeriodRevenue:        decimal.NewFromInt(450000),
		TopSellingProducts: []report.TopProduct{{
			Rank: 1, ProductID: "p1", Name: "Pantalla", Category: "Repuestos", UnitsSold: 3,
			Revenue: decimal.NewFromInt(450000), Profit: decimal.NewFromInt(150000),
			MarginPercent: decimal.RequireFromString("33.3"), Trend: report.NotAvailable[report.Trend](),
		}},
		CategoryDistribution: []report.CategoryDistribution{{
			Name: "Repuestos", ProductCount: 2, TotalValue: decimal.NewFromInt(1500000),
			Percentage: decimal.NewFromInt(100), Color: "#3b82f6",
		}},
		SupplierPerformance: []report.SupplierPerformance{{
			SupplierID: "s1", Name: "Distribuidora Norte", Status: report.SupplierGood,
			Rating:              report.Computed(decimal.RequireFromString("3.5")),
			AverageDeliveryDays: report.NotAvailable[int](),
			ProductCount:        2,
		}},
		StockMovements: []report.MovementView{{
			ID: "m1", CreatedAt: start.Add(time.Hour), Type: entity.MovementTypeOutbound,
			ProductName: "Pantalla", QuantityDelta: -2, Direction: report.DirectionOut,
			EstimatedValue: decimal.NewFromInt(200000),
		}},
		ProfitabilityAnalysis: []report.ProductProfitability{},
	}
}

func TestExport_GeneraPDF(t *testing.T) {
	exp := NewMarotoReportExporter("Taller Central")

	out, err := exp.Export(context.Background(), sampleReport())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento debe iniciar con la firma PDF")
	assert.Equal(t, "application/pdf", exp.ContentType())
	assert.Equal(t, "pdf", exp.FileExtension())
}

func TestExport_ReporteVacio(t *testing.T) {
	exp := NewMarotoReportExporter("Taller Central")
	out, err := exp.Export(context.Background(), &report.ReportData{ID: "vacio"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestExport_Nil(t *testing.T) {
	_, err := NewMarotoReportExporter("x").Export(context.Background(), nil)
	assert.Error(t, err)
}

func TestExport_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMarotoReportExporter("x").Export(ctx, sampleReport())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatoNumerico(t *testing.T) {
	b := &pageBuilder{printer: message.NewPrinter(language.Spanish), upper: cases.Upper(language.Spanish)}

	assert.Equal(t, "$1.234.567", b.money(decimal.RequireFromString("1234567.4")))
	assert.Equal(t, "35,5%", b.percent(decimal.RequireFromString("35.5")))
	assert.Equal(t, "DISTRIBUCIÓN POR CATEGORÍA", b.upper.String("Distribución por categoría"))
}
