package repository

import (
	"context"
	"time"

	"github.com/jhoicas/reportes-taller/internal/domain/entity"
)

// DateRange rango de fechas [Start, End] de un reporte.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ReportRepository define las consultas de lectura que alimentan el motor de reportes.
// Las implementaciones son read-only y cada método puede fallar de forma independiente.
type ReportRepository interface {
	// FetchProducts devuelve todos los productos con categoría y proveedor unidos.
	FetchProducts(ctx context.Context) ([]entity.Product, error)

	// FetchSuppliers devuelve todos los proveedores.
	FetchSuppliers(ctx context.Context) ([]entity.Supplier, error)

	// FetchStockMovements devuelve como máximo limit movimientos del rango,
	// ordenados del más reciente al más antiguo.
	FetchStockMovements(ctx context.Context, r DateRange, limit int) ([]entity.StockMovement, error)

	// FetchSales devuelve las ventas del rango con sus líneas y el producto unido a cada línea.
	FetchSales(ctx context.Context, r DateRange) ([]entity.Sale, error)
}
