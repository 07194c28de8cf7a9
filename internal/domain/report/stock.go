package report

import "github.com/jhoicas/reportes-taller/internal/domain/entity"

// StockLevel clase de alerta de stock de un producto.
type StockLevel string

// Clases de stock, mutuamente excluyentes.
const (
	StockOut    StockLevel = "out_of_stock"
	StockLow    StockLevel = "low_stock"
	StockNormal StockLevel = "normal"
)

// StockAlerts conteo de productos por clase. OutOfStock + LowStock + Normal = total.
type StockAlerts struct {
	OutOfStock int `json:"out_of_stock"`
	LowStock   int `json:"low_stock"`
	Normal     int `json:"normal"`
}

// Total número de productos clasificados.
func (a StockAlerts) Total() int { return a.OutOfStock + a.LowStock + a.Normal }

// LevelOf clasifica un producto. Se evalúa primero el agotado: un producto con stock 0
// nunca cuenta como stock bajo. Un stock negativo (dato inconsistente) se trata como agotado.
func LevelOf(p entity.Product) StockLevel {
	switch {
	case p.StockQuantity <= 0:
		return StockOut
	case p.StockQuantity <= p.MinStock:
		return StockLow
	default:
		return StockNormal
	}
}

// ClassifyStock particiona los productos en agotados, stock bajo y normales.
func ClassifyStock(products []entity.Product) StockAlerts {
	var a StockAlerts
	for _, p := range products {
		switch LevelOf(p) {
		case StockOut:
			a.OutOfStock++
		case StockLow:
			a.LowStock++
		default:
			a.Normal++
		}
	}
	return a
}
