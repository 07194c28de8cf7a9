package report_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-taller/internal/domain/entity"
	"github.com/jhoicas/reportes-taller/internal/domain/report"
)

func ratingPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestStatusFor_Niveles(t *testing.T) {
	assert.Equal(t, report.SupplierExcellent, report.StatusFor(ratingPtr("4")))
	assert.Equal(t, report.SupplierExcellent, report.StatusFor(ratingPtr("5")))
	assert.Equal(t, report.SupplierGood, report.StatusFor(ratingPtr("3.9")))
	assert.Equal(t, report.SupplierGood, report.StatusFor(ratingPtr("3")))
	assert.Equal(t, report.SupplierAverage, report.StatusFor(ratingPtr("2.99")))
	assert.Equal(t, report.SupplierAverage, report.StatusFor(nil))
}

func TestSummarizeSuppliers_CamposPendientesNoDisponibles(t *testing.T) {
	days := 3
	suppliers := []entity.Supplier{
		{ID: "s1", Name: "Repuestos Andinos", Rating: ratingPtr("4.5"), DeliveryTimeDays: &days},
		{ID: "s2", Name: "Importadora Sur"},
	}
	s1 := "s1"
	products := []entity.Product{
		{ID: "p1", SupplierID: &s1},
		{ID: "p2", SupplierID: &s1},
		{ID: "p3"},
	}

	perf := report.SummarizeSuppliers(suppliers, products)
	require.Len(t, perf, 2)

	assert.Equal(t, report.SupplierExcellent, perf[0].Status)
	assert.Equal(t, 2, perf[0].ProductCount)
	rating, ok := perf[0].Rating.Get()
	require.True(t, ok)
	assert.True(t, rating.Equal(dec("4.5")))
	delivery, ok := perf[0].AverageDeliveryDays.Get()
	require.True(t, ok)
	assert.Equal(t, 3, delivery)

	assert.False(t, perf[0].TotalOrders.Available())
	assert.False(t, perf[0].TotalOrderValue.Available())
	assert.False(t, perf[0].OnTimeDeliveryPercent.Available())

	assert.Equal(t, report.SupplierAverage, perf[1].Status)
	assert.Equal(t, 0, perf[1].ProductCount)
	assert.False(t, perf[1].Rating.Available())
}

func TestSummarizeSuppliers_JSONDistingueCeroDeNoDisponible(t *testing.T) {
	days := 0
	perf := report.SummarizeSuppliers([]entity.Supplier{{ID: "s1", Name: "X", DeliveryTimeDays: &days}}, nil)

	raw, err := json.Marshal(perf[0])
	require.NoError(t, err)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.JSONEq(t, `{"status":"computed","value":0}`, string(body["average_delivery_days"]))
	assert.JSONEq(t, `{"status":"not_available"}`, string(body["total_orders"]))
}

func TestSupplierStatus_Label(t *testing.T) {
	assert.Equal(t, "Excelente", report.SupplierExcellent.Label())
	assert.Equal(t, "Bueno", report.SupplierGood.Label())
	assert.Equal(t, "Promedio", report.SupplierAverage.Label())
}
