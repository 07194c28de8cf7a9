package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/reportes-taller/internal/domain/entity"
	"github.com/jhoicas/reportes-taller/internal/domain/report"
)

func TestClassifyStock_AgotadoBajoYNormal(t *testing.T) {
	products := []entity.Product{
		newProduct("1", "", 0, 5, "1", "2"),
		newProduct("2", "", 2, 5, "1", "2"),
		newProduct("3", "", 50, 5, "1", "2"),
	}

	alerts := report.ClassifyStock(products)
	assert.Equal(t, report.StockAlerts{OutOfStock: 1, LowStock: 1, Normal: 1}, alerts)
	assert.Equal(t, len(products), alerts.Total())
}

func TestClassifyStock_AgotadoNuncaCuentaComoBajo(t *testing.T) {
	p := newProduct("1", "", 0, 0, "1", "2")
	assert.Equal(t, report.StockOut, report.LevelOf(p))

	p.MinStock = 10
	assert.Equal(t, report.StockOut, report.LevelOf(p))
}

func TestClassifyStock_LimiteInclusivo(t *testing.T) {
	assert.Equal(t, report.StockLow, report.LevelOf(newProduct("1", "", 5, 5, "1", "2")))
	assert.Equal(t, report.StockNormal, report.LevelOf(newProduct("1", "", 6, 5, "1", "2")))
}

func TestClassifyStock_StockNegativoSeTrataComoAgotado(t *testing.T) {
	alerts := report.ClassifyStock([]entity.Product{newProduct("1", "", -3, 5, "1", "2")})
	assert.Equal(t, 1, alerts.OutOfStock)
	assert.Equal(t, 1, alerts.Total())
}

func TestClassifyStock_ParticionCompleta(t *testing.T) {
	var products []entity.Product
	for i := 0; i < 40; i++ {
		products = append(products, newProduct("p", "", i%7, i%5, "1", "2"))
	}
	alerts := report.ClassifyStock(products)
	assert.Equal(t, len(products), alerts.Total())
}
