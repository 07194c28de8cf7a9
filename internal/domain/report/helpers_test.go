package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/reportes-taller/internal/domain/entity"
	"github.com/jhoicas/reportes-taller/internal/domain/report"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func strPtr(s string) *string { return &s }

func newProduct(id, category string, stock, minStock int, purchase, sale string) entity.Product {
	p := entity.Product{
		ID:            id,
		Name:          "Producto " + id,
		StockQuantity: stock,
		MinStock:      minStock,
		PurchasePrice: dec(purchase),
		SalePrice:     dec(sale),
	}
	if category != "" {
		p.Category = &entity.Category{ID: "cat-" + category, Name: category}
	}
	return p
}

func saleItem(productID string, qty int, subtotal, purchase string) entity.SaleItem {
	return entity.SaleItem{
		ProductID: productID,
		Quantity:  qty,
		Subtotal:  dec(subtotal),
		Product: &entity.ProductSnapshot{
			Name:          "Producto " + productID,
			CategoryName:  strPtr("Repuestos"),
			PurchasePrice: dec(purchase),
		},
	}
}

func newSale(id, total string, items ...entity.SaleItem) entity.Sale {
	if items == nil {
		items = []entity.SaleItem{}
	}
	return entity.Sale{
		ID:          id,
		CreatedAt:   time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC),
		TotalAmount: dec(total),
		Items:       items,
	}
}

// ledgerEntry busca el acumulado de un producto; falla el test si no existe.
func ledgerEntry(t *testing.T, l *report.Ledger, productID string) report.LedgerEntry {
	t.Helper()
	for _, e := range l.Entries() {
		if e.ProductID == productID {
			return e
		}
	}
	require.Failf(t, "producto ausente del libro", "id %q", productID)
	return report.LedgerEntry{}
}
