package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType tipo de movimiento de inventario.
type MovementType string

// Tipos de movimiento de inventario.
const (
	MovementTypeInbound    MovementType = "inbound"    // entrada
	MovementTypeOutbound   MovementType = "outbound"   // salida
	MovementTypeAdjustment MovementType = "adjustment" // ajuste
	MovementTypeTransfer   MovementType = "transfer"   // traslado
)

// Valid indica si el tipo pertenece al catálogo conocido.
func (t MovementType) Valid() bool {
	switch t {
	case MovementTypeInbound, MovementTypeOutbound, MovementTypeAdjustment, MovementTypeTransfer:
		return true
	}
	return false
}

// Label etiqueta en español del tipo; un tipo desconocido se devuelve tal cual.
func (t MovementType) Label() string {
	switch t {
	case MovementTypeInbound:
		return "Entrada"
	case MovementTypeOutbound:
		return "Salida"
	case MovementTypeAdjustment:
		return "Ajuste"
	case MovementTypeTransfer:
		return "Traslado"
	}
	return string(t)
}

// StockMovement representa un movimiento de inventario.
// QuantityDelta es positivo para entradas y negativo para salidas.
type StockMovement struct {
	ID            string
	CreatedAt     time.Time
	Type          MovementType
	ProductID     string
	QuantityDelta int
	Reason        string
	Product       *MovementProduct // nil si el producto ya no existe
}

// MovementProduct datos del producto unidos al movimiento.
type MovementProduct struct {
	Name          string
	PurchasePrice decimal.Decimal
}
