package report

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-taller/internal/domain"
	"github.com/jhoicas/reportes-taller/internal/domain/entity"
)

// LedgerEntry acumulado de ventas de un producto dentro del período.
type LedgerEntry struct {
	ProductID     string
	Name          string
	Category      string
	Known         bool // false si el producto ya no existe (join fallido)
	UnitsSold     int
	Revenue       decimal.Decimal // Σ subtotales de línea
	EstimatedCost decimal.Decimal // Σ cantidad × precio de compra vigente
}

// Profit Revenue - EstimatedCost.
func (e LedgerEntry) Profit() decimal.Decimal {
	return e.Revenue.Sub(e.EstimatedCost)
}

// Ledger libro por producto construido a partir de las líneas de venta.
// Conserva el orden en que apareció cada producto; los rankings lo usan como desempate.
//
// El costo es una estimación con el precio de compra vigente, no el histórico a la
// fecha de venta: productos cuyo costo cambió después de vender quedan mal costeados.
type Ledger struct {
	periodRevenue decimal.Decimal
	entries       []*LedgerEntry
	index         map[string]int
}

// BuildLedger recorre todas las ventas del período una sola vez.
//
// PeriodRevenue suma Sale.TotalAmount y es independiente de las líneas: un join fallido
// no lo altera. Las líneas cuyo producto ya no existe se cuentan igual, con etiqueta
// UnknownLabel y costo cero.
func BuildLedger(sales []entity.Sale) (*Ledger, error) {
	l := &Ledger{
		entries: make([]*LedgerEntry, 0),
		index:   make(map[string]int),
	}
	for _, sale := range sales {
		if sale.Items == nil {
			return nil, &domain.AggregationError{Entity: "sale", ID: sale.ID, Reason: "líneas de venta no cargadas"}
		}
		l.periodRevenue = l.periodRevenue.Add(sale.TotalAmount)
		for _, item := range sale.Items {
			if item.Quantity < 0 {
				return nil, &domain.AggregationError{Entity: "sale_item", ID: sale.ID, Reason: "cantidad negativa"}
			}
			l.add(item)
		}
	}
	return l, nil
}

func (l *Ledger) add(item entity.SaleItem) {
	entry := l.entryFor(item.ProductID)
	if !entry.Known && item.Product != nil {
		entry.Known = true
		entry.Name = item.Product.Name
		entry.Category = UncategorizedLabel
		if item.Product.CategoryName != nil && *item.Product.CategoryName != "" {
			entry.Category = *item.Product.CategoryName
		}
	}

	entry.UnitsSold += item.Quantity
	entry.Revenue = entry.Revenue.Add(item.Subtotal)
	if item.Product != nil {
		entry.EstimatedCost = entry.EstimatedCost.Add(item.Product.PurchasePrice.Mul(units(item.Quantity)))
	}
}

func (l *Ledger) entryFor(productID string) *LedgerEntry {
	if i, ok := l.index[productID]; ok {
		return l.entries[i]
	}
	e := &LedgerEntry{ProductID: productID, Name: UnknownLabel, Category: UnknownLabel}
	l.index[productID] = len(l.entries)
	l.entries = append(l.entries, e)
	return e
}

// PeriodRevenue suma de los totales de venta del período.
func (l *Ledger) PeriodRevenue() decimal.Decimal { return l.periodRevenue }

// Entries copia de los acumulados en orden de aparición.
func (l *Ledger) Entries() []LedgerEntry {
	out := make([]LedgerEntry, len(l.entries))
	for i, e := range l.entries {
		out[i] = *e
	}
	return out
}
