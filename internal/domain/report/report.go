// Package report contiene el motor de agregación de reportes: convierte productos,
// ventas, movimientos de stock y proveedores ya consultados en métricas de negocio.
//
// Todas las funciones son puras: no hacen I/O, no mutan sus entradas y cada llamada
// produce estructuras nuevas. Las divisiones están protegidas; un denominador cero
// resuelve a 0.
package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-taller/internal/domain/entity"
)

// Etiquetas de respaldo para relaciones ausentes.
const (
	UncategorizedLabel = "Sin categoría" // producto sin categoría
	UnknownLabel       = "Desconocido"   // producto eliminado o join fallido
)

// Límites de las vistas rankeadas. Son cotas de presentación, no de correctitud.
// MaxMovementLimit es además el techo de cualquier límite configurado.
const (
	TopSellingLimit      = 10
	ProfitabilityLimit   = 20
	MaxMovementLimit     = 100
	DefaultMovementLimit = MaxMovementLimit
)

// Period rango del reporte.
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ReportData snapshot inmutable de un reporte para un rango de fechas.
// Se recalcula completo en cada solicitud; nunca se modifica después de construido.
type ReportData struct {
	ID          string    `json:"id"`
	Period      Period    `json:"period"`
	GeneratedAt time.Time `json:"generated_at"`

	// ── KPIs ──────────────────────────────────────────────────────────────────
	TotalProducts        int             `json:"total_products"`
	TotalInventoryValue  decimal.Decimal `json:"total_inventory_value"`
	LowStockCount        int             `json:"low_stock_count"`
	OutOfStockCount      int             `json:"out_of_stock_count"`
	NormalStockCount     int             `json:"normal_stock_count"`
	SupplierCount        int             `json:"supplier_count"`
	CategoryCount        int             `json:"category_count"`
	AverageMarginPercent decimal.Decimal `json:"average_margin_percent"`
	PeriodRevenue        decimal.Decimal `json:"period_revenue"`

	// ── Vistas ────────────────────────────────────────────────────────────────
	TopSellingProducts    []TopProduct           `json:"top_selling_products"`
	CategoryDistribution  []CategoryDistribution `json:"category_distribution"`
	SupplierPerformance   []SupplierPerformance  `json:"supplier_performance"`
	StockMovements        []MovementView         `json:"stock_movements"`
	ProfitabilityAnalysis []ProductProfitability `json:"profitability_analysis"`
}

// Input colecciones ya consultadas que alimentan Build.
type Input struct {
	Products      []entity.Product
	Suppliers     []entity.Supplier
	Movements     []entity.StockMovement
	Sales         []entity.Sale
	MovementLimit int // 0 = DefaultMovementLimit; nunca más de MaxMovementLimit
}

// Build ejecuta todos los agregadores sobre in y ensambla el ReportData.
// ID, Period y GeneratedAt quedan en cero; los completa el orquestador.
func Build(in Input) (*ReportData, error) {
	ledger, err := BuildLedger(in.Sales)
	if err != nil {
		return nil, err
	}
	movements, err := FormatMovements(in.Movements, in.MovementLimit)
	if err != nil {
		return nil, err
	}

	alerts := ClassifyStock(in.Products)
	inv := summarizeInventory(in.Products)

	return &ReportData{
		TotalProducts:         alerts.Total(),
		TotalInventoryValue:   inv.totalValue.Round(2),
		LowStockCount:         alerts.LowStock,
		OutOfStockCount:       alerts.OutOfStock,
		NormalStockCount:      alerts.Normal,
		SupplierCount:         len(in.Suppliers),
		CategoryCount:         inv.categoryCount,
		AverageMarginPercent:  inv.averageMargin.Round(1),
		PeriodRevenue:         ledger.PeriodRevenue().Round(2),
		TopSellingProducts:    TopSelling(ledger, TopSellingLimit),
		CategoryDistribution:  BuildCategoryDistribution(in.Products),
		SupplierPerformance:   SummarizeSuppliers(in.Suppliers, in.Products),
		StockMovements:        movements,
		ProfitabilityAnalysis: Profitability(ledger, ProfitabilityLimit),
	}, nil
}

type inventorySummary struct {
	totalValue    decimal.Decimal
	averageMargin decimal.Decimal
	categoryCount int
}

// summarizeInventory valor total del inventario, margen promedio por producto y
// número de categorías con nombre (el grupo "Sin categoría" no cuenta).
func summarizeInventory(products []entity.Product) inventorySummary {
	var s inventorySummary
	if len(products) == 0 {
		return s
	}
	var marginSum decimal.Decimal
	seen := make(map[string]struct{})
	for _, p := range products {
		s.totalValue = s.totalValue.Add(p.InventoryValue())
		marginSum = marginSum.Add(MarginPercent(p.SalePrice, p.PurchasePrice))
		if name, ok := p.CategoryName(); ok {
			seen[name] = struct{}{}
		}
	}
	s.averageMargin = marginSum.Div(units(len(products)))
	s.categoryCount = len(seen)
	return s
}
