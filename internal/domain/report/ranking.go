package report

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Trend dirección de ventas frente al período anterior ("up", "down" o "stable").
// El motor aún no compara contra el período anterior, por eso TopProduct.Trend
// sale siempre como NotAvailable.
type Trend string

// TopProduct producto en el ranking de más vendidos (por ingreso).
type TopProduct struct {
	Rank          int             `json:"rank"`
	ProductID     string          `json:"product_id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	UnitsSold     int             `json:"units_sold"`
	Revenue       decimal.Decimal `json:"revenue"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Profit        decimal.Decimal `json:"profit"`
	MarginPercent decimal.Decimal `json:"margin_percent"` // Profit / Revenue × 100
	Trend         Metric[Trend]   `json:"trend"`
}

// ProductProfitability rentabilidad por producto (por utilidad total).
type ProductProfitability struct {
	Rank          int             `json:"rank"`
	ProductID     string          `json:"product_id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	UnitsSold     int             `json:"units_sold"`
	Revenue       decimal.Decimal `json:"revenue"`
	EstimatedCost decimal.Decimal `json:"estimated_cost"`
	Profit        decimal.Decimal `json:"profit"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
	AvgUnitPrice  decimal.Decimal `json:"avg_unit_price"`
	AvgUnitCost   decimal.Decimal `json:"avg_unit_cost"`
	PerUnitProfit decimal.Decimal `json:"per_unit_profit"`
}

// TopSelling ordena el libro por ingreso descendente y devuelve los primeros limit.
// El ordenamiento es estable: a igual ingreso gana el producto visto primero.
func TopSelling(l *Ledger, limit int) []TopProduct {
	entries := rankBy(l, limit, func(e LedgerEntry) decimal.Decimal { return e.Revenue })

	result := make([]TopProduct, 0, len(entries))
	for i, e := range entries {
		profit := e.Profit()
		result = append(result, TopProduct{
			Rank:          i + 1,
			ProductID:     e.ProductID,
			Name:          e.Name,
			Category:      e.Category,
			UnitsSold:     e.UnitsSold,
			Revenue:       e.Revenue.Round(2),
			EstimatedCost: e.EstimatedCost.Round(2),
			Profit:        profit.Round(2),
			MarginPercent: percentOf(profit, e.Revenue).Round(1),
			Trend:         NotAvailable[Trend](),
		})
	}
	return result
}

// Profitability ordena el libro por utilidad total descendente y devuelve los primeros limit.
func Profitability(l *Ledger, limit int) []ProductProfitability {
	entries := rankBy(l, limit, func(e LedgerEntry) decimal.Decimal { return e.Profit() })

	result := make([]ProductProfitability, 0, len(entries))
	for i, e := range entries {
		profit := e.Profit()
		n := units(e.UnitsSold)
		perUnitDen := n
		if e.UnitsSold < 1 {
			perUnitDen = decimal.NewFromInt(1)
		}
		result = append(result, ProductProfitability{
			Rank:          i + 1,
			ProductID:     e.ProductID,
			Name:          e.Name,
			Category:      e.Category,
			UnitsSold:     e.UnitsSold,
			Revenue:       e.Revenue.Round(2),
			EstimatedCost: e.EstimatedCost.Round(2),
			Profit:        profit.Round(2),
			MarginPercent: percentOf(profit, e.Revenue).Round(1),
			AvgUnitPrice:  divOrZero(e.Revenue, n).Round(2),
			AvgUnitCost:   divOrZero(e.EstimatedCost, n).Round(2),
			PerUnitProfit: profit.Div(perUnitDen).Round(2),
		})
	}
	return result
}

// rankBy copia las entradas, las ordena de forma estable por key descendente y
// trunca a limit después de ordenar.
func rankBy(l *Ledger, limit int, key func(LedgerEntry) decimal.Decimal) []LedgerEntry {
	if l == nil {
		return nil
	}
	entries := l.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return key(entries[i]).GreaterThan(key(entries[j]))
	})
	if limit >= 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}
