package report_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-taller/internal/domain"
	"github.com/jhoicas/reportes-taller/internal/domain/entity"
	"github.com/jhoicas/reportes-taller/internal/domain/report"
)

// Dos ventas de 1000 y 500: el ingreso del período es 1500 aunque la única línea de
// una de ellas apunte a un producto eliminado.
func TestLedger_IngresoDelPeriodoConProductoEliminado(t *testing.T) {
	deleted := entity.SaleItem{ProductID: "borrado", Quantity: 2, Subtotal: dec("500")}
	sales := []entity.Sale{
		newSale("v1", "1000", saleItem("p1", 4, "1000", "150")),
		newSale("v2", "500", deleted),
	}

	l, err := report.BuildLedger(sales)
	require.NoError(t, err)

	assert.True(t, l.PeriodRevenue().Equal(dec("1500")))
	entries := l.Entries()
	assert.Len(t, entries, 2)
	units := 0
	for _, e := range entries {
		units += e.UnitsSold
	}
	assert.Equal(t, 6, units, "las líneas sin producto no se descartan")

	e := ledgerEntry(t, l, "borrado")
	assert.False(t, e.Known)
	assert.Equal(t, report.UnknownLabel, e.Name)
	assert.Equal(t, report.UnknownLabel, e.Category)
	assert.True(t, e.EstimatedCost.IsZero())
	assert.True(t, e.Revenue.Equal(dec("500")))
}

func TestLedger_IngresoNoDependeDeLasLineas(t *testing.T) {
	sales := []entity.Sale{
		newSale("v1", "999.99", saleItem("p1", 1, "900", "100")),
		newSale("v2", "10"),
	}

	l, err := report.BuildLedger(sales)
	require.NoError(t, err)
	assert.True(t, l.PeriodRevenue().Equal(dec("1009.99")))
}

func TestLedger_AcumulaPorProductoConPrecioDeCompraVigente(t *testing.T) {
	sales := []entity.Sale{
		newSale("v1", "300", saleItem("p1", 2, "200", "60"), saleItem("p2", 1, "100", "40")),
		newSale("v2", "100", saleItem("p1", 1, "100", "60")),
	}

	l, err := report.BuildLedger(sales)
	require.NoError(t, err)

	entries := l.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "p1", entries[0].ProductID, "orden de aparición")
	assert.Equal(t, 3, entries[0].UnitsSold)
	assert.True(t, entries[0].Revenue.Equal(dec("300")))
	assert.True(t, entries[0].EstimatedCost.Equal(dec("180")))
	assert.True(t, entries[0].Profit().Equal(dec("120")))
	assert.Equal(t, "Repuestos", entries[0].Category)
}

func TestLedger_CategoriaNulaUsaSinCategoria(t *testing.T) {
	item := saleItem("p1", 1, "10", "5")
	item.Product.CategoryName = nil

	l, err := report.BuildLedger([]entity.Sale{newSale("v1", "10", item)})
	require.NoError(t, err)

	e := ledgerEntry(t, l, "p1")
	assert.Equal(t, report.UncategorizedLabel, e.Category)
}

func TestLedger_VentaSinLineasCargadasEsErrorDeAgregacion(t *testing.T) {
	sale := newSale("v1", "100")
	sale.Items = nil

	_, err := report.BuildLedger([]entity.Sale{sale})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAggregation))

	var aggErr *domain.AggregationError
	require.ErrorAs(t, err, &aggErr)
	assert.Equal(t, "v1", aggErr.ID)
}

func TestLedger_CantidadNegativaEsErrorDeAgregacion(t *testing.T) {
	_, err := report.BuildLedger([]entity.Sale{newSale("v1", "100", saleItem("p1", -1, "100", "10"))})
	assert.ErrorIs(t, err, domain.ErrAggregation)
}

func TestLedger_SinVentas(t *testing.T) {
	l, err := report.BuildLedger(nil)
	require.NoError(t, err)
	assert.True(t, l.PeriodRevenue().IsZero())
	assert.Empty(t, l.Entries())
}
