package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa una venta con sus líneas de detalle.
//
// Items nil significa que el detalle no se cargó (error del adaptador); una venta sin
// líneas debe traer un slice vacío.
type Sale struct {
	ID          string
	CreatedAt   time.Time
	TotalAmount decimal.Decimal // total cobrado; fuente autoritativa de ingresos
	Items       []SaleItem
}

// SaleItem línea de una venta.
// Product es nil cuando el producto referenciado ya no existe (join fallido).
type SaleItem struct {
	ProductID string
	Quantity  int
	Subtotal  decimal.Decimal
	Product   *ProductSnapshot
}

// ProductSnapshot datos del producto unidos a la línea de venta al momento de la consulta.
// PurchasePrice es el precio de compra vigente, no el histórico de la fecha de venta.
type ProductSnapshot struct {
	Name          string
	CategoryName  *string
	PurchasePrice decimal.Decimal
}
