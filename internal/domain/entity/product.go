package entity

import "github.com/shopspring/decimal"

// Product representa un producto del catálogo de la tienda/taller con sus relaciones ya resueltas.
// Category y SupplierID son opcionales: un producto puede no tener categoría ni proveedor asignado.
type Product struct {
	ID            string
	Name          string
	Category      *Category       // nil si el producto no tiene categoría
	SupplierID    *string         // nil si el producto no tiene proveedor
	StockQuantity int             // unidades en existencia (≥ 0)
	MinStock      int             // umbral de stock bajo (≥ 0)
	PurchasePrice decimal.Decimal // precio de compra vigente
	SalePrice     decimal.Decimal // precio de venta vigente
}

// CategoryName devuelve el nombre de la categoría y true, o "" y false si el producto no tiene.
func (p Product) CategoryName() (string, bool) {
	if p.Category == nil || p.Category.Name == "" {
		return "", false
	}
	return p.Category.Name, true
}

// InventoryValue valor del stock a precio de compra: stock × precio de compra.
// Un producto agotado (stock <= 0) vale 0, igual que en la clasificación de stock.
func (p Product) InventoryValue() decimal.Decimal {
	if p.StockQuantity <= 0 {
		return decimal.Zero
	}
	return p.PurchasePrice.Mul(decimal.NewFromInt(int64(p.StockQuantity)))
}
