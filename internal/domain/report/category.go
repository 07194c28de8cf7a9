package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-taller/internal/domain/entity"
)

// categoryPalette colores asignados en orden de ranking; se recorren cíclicamente.
var categoryPalette = [...]string{
	"#3B82F6", "#10B981", "#F59E0B", "#EF4444",
	"#8B5CF6", "#EC4899", "#06B6D4", "#84CC16",
}

// CategoryDistribution participación de una categoría en el valor del inventario.
type CategoryDistribution struct {
	Name                 string          `json:"name"`
	ProductCount         int             `json:"product_count"`
	TotalValue           decimal.Decimal `json:"total_value"`            // Σ stock × precio de compra
	Percentage           decimal.Decimal `json:"percentage"`             // % del valor total, 1 decimal
	AverageMarginPercent decimal.Decimal `json:"average_margin_percent"` // promedio simple por producto, 1 decimal
	ColorIndex           int             `json:"color_index"`
	Color                string          `json:"color"`
}

type categoryAcc struct {
	name      string
	count     int
	value     decimal.Decimal
	marginSum decimal.Decimal
}

// BuildCategoryDistribution agrupa los productos vivos por nombre de categoría y devuelve
// la distribución ordenada por valor de inventario descendente.
//
// Es una vista de inventario: solo cuentan los productos recibidos, nunca las categorías
// que aparecen únicamente en líneas de venta. Los empates conservan el orden en que
// apareció cada categoría, y el color depende solo de la posición en el ranking.
func BuildCategoryDistribution(products []entity.Product) []CategoryDistribution {
	if len(products) == 0 {
		return []CategoryDistribution{}
	}

	index := make(map[string]int)
	accs := make([]*categoryAcc, 0)
	var totalValue decimal.Decimal

	for _, p := range products {
		name, ok := p.CategoryName()
		if !ok {
			name = UncategorizedLabel
		}
		i, found := index[name]
		if !found {
			i = len(accs)
			index[name] = i
			accs = append(accs, &categoryAcc{name: name})
		}
		acc := accs[i]
		value := p.InventoryValue()
		acc.count++
		acc.value = acc.value.Add(value)
		acc.marginSum = acc.marginSum.Add(MarginPercent(p.SalePrice, p.PurchasePrice))
		totalValue = totalValue.Add(value)
	}

	sort.SliceStable(accs, func(i, j int) bool {
		return accs[i].value.GreaterThan(accs[j].value)
	})

	result := make([]CategoryDistribution, 0, len(accs))
	for i, acc := range accs {
		colorIndex := i % len(categoryPalette)
		result = append(result, CategoryDistribution{
			Name:                 acc.name,
			ProductCount:         acc.count,
			TotalValue:           acc.value.Round(2),
			Percentage:           percentOf(acc.value, totalValue).Round(1),
			AverageMarginPercent: divOrZero(acc.marginSum, units(acc.count)).Round(1),
			ColorIndex:           colorIndex,
			Color:                categoryPalette[colorIndex],
		})
	}
	return result
}
