package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-taller/internal/domain"
	"github.com/jhoicas/reportes-taller/internal/domain/entity"
)

// Dirección de un movimiento según el signo de QuantityDelta (para colorear en la UI).
const (
	DirectionIn      = "in"
	DirectionOut     = "out"
	DirectionNeutral = "neutral"
)

// MovementView movimiento de stock listo para mostrar.
type MovementView struct {
	ID             string              `json:"id"`
	CreatedAt      time.Time           `json:"created_at"`
	Type           entity.MovementType `json:"type"`
	ProductID      string              `json:"product_id"`
	ProductName    string              `json:"product_name"`
	QuantityDelta  int                 `json:"quantity_delta"` // conserva el signo original
	Direction      string              `json:"direction"`
	Reason         string              `json:"reason"`
	EstimatedValue decimal.Decimal     `json:"estimated_value"` // |delta| × precio de compra, nunca negativo
}

// FormatMovements convierte los movimientos, del más reciente al más antiguo, y trunca a
// limit. Un limit fuera de (0, MaxMovementLimit] se ajusta a ese rango.
func FormatMovements(movements []entity.StockMovement, limit int) ([]MovementView, error) {
	limit = ClampMovementLimit(limit)

	sorted := make([]entity.StockMovement, len(movements))
	copy(sorted, movements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}

	result := make([]MovementView, 0, len(sorted))
	for _, m := range sorted {
		if !m.Type.Valid() {
			return nil, &domain.AggregationError{Entity: "stock_movement", ID: m.ID, Reason: "tipo de movimiento desconocido: " + string(m.Type)}
		}
		view := MovementView{
			ID:            m.ID,
			CreatedAt:     m.CreatedAt,
			Type:          m.Type,
			ProductID:     m.ProductID,
			ProductName:   UnknownLabel,
			QuantityDelta: m.QuantityDelta,
			Direction:     directionOf(m.QuantityDelta),
			Reason:        m.Reason,
		}
		if m.Product != nil {
			view.ProductName = m.Product.Name
			view.EstimatedValue = m.Product.PurchasePrice.Mul(units(absInt(m.QuantityDelta))).Abs().Round(2)
		}
		result = append(result, view)
	}
	return result, nil
}

// ClampMovementLimit normaliza un límite de movimientos: <= 0 usa DefaultMovementLimit y
// nada supera MaxMovementLimit.
func ClampMovementLimit(n int) int {
	switch {
	case n <= 0:
		return DefaultMovementLimit
	case n > MaxMovementLimit:
		return MaxMovementLimit
	default:
		return n
	}
}

func directionOf(delta int) string {
	switch {
	case delta > 0:
		return DirectionIn
	case delta < 0:
		return DirectionOut
	default:
		return DirectionNeutral
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
