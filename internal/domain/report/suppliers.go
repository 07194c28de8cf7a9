package report

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/reportes-taller/internal/domain/entity"
)

// SupplierStatus nivel de desempeño derivado de la calificación.
type SupplierStatus string

// Niveles de desempeño de proveedor.
const (
	SupplierExcellent SupplierStatus = "excellent"
	SupplierGood      SupplierStatus = "good"
	SupplierAverage   SupplierStatus = "average"
)

// Label etiqueta en español para exportaciones.
func (s SupplierStatus) Label() string {
	switch s {
	case SupplierExcellent:
		return "Excelente"
	case SupplierGood:
		return "Bueno"
	default:
		return "Promedio"
	}
}

var (
	ratingExcellent = decimal.NewFromInt(4)
	ratingGood      = decimal.NewFromInt(3)
)

// SupplierPerformance desempeño de un proveedor.
//
// TotalOrders, TotalOrderValue y OnTimeDeliveryPercent quedan NotAvailable hasta que
// exista un historial de órdenes de compra; no se inventan valores.
type SupplierPerformance struct {
	SupplierID            string                  `json:"supplier_id"`
	Name                  string                  `json:"name"`
	Status                SupplierStatus          `json:"status"`
	Rating                Metric[decimal.Decimal] `json:"rating"`
	AverageDeliveryDays   Metric[int]             `json:"average_delivery_days"`
	ProductCount          int                     `json:"product_count"` // productos vivos de este proveedor
	TotalOrders           Metric[int]             `json:"total_orders"`
	TotalOrderValue       Metric[decimal.Decimal] `json:"total_order_value"`
	OnTimeDeliveryPercent Metric[decimal.Decimal] `json:"on_time_delivery_percent"`
}

// StatusFor rating >= 4 excelente, >= 3 bueno, en otro caso (o sin calificación) promedio.
func StatusFor(rating *decimal.Decimal) SupplierStatus {
	switch {
	case rating == nil:
		return SupplierAverage
	case rating.GreaterThanOrEqual(ratingExcellent):
		return SupplierExcellent
	case rating.GreaterThanOrEqual(ratingGood):
		return SupplierGood
	default:
		return SupplierAverage
	}
}

// SummarizeSuppliers mapea cada proveedor a su registro de desempeño, en el orden recibido.
func SummarizeSuppliers(suppliers []entity.Supplier, products []entity.Product) []SupplierPerformance {
	productCount := make(map[string]int)
	for _, p := range products {
		if p.SupplierID != nil {
			productCount[*p.SupplierID]++
		}
	}

	result := make([]SupplierPerformance, 0, len(suppliers))
	for _, s := range suppliers {
		perf := SupplierPerformance{
			SupplierID:            s.ID,
			Name:                  s.Name,
			Status:                StatusFor(s.Rating),
			Rating:                NotAvailable[decimal.Decimal](),
			AverageDeliveryDays:   NotAvailable[int](),
			ProductCount:          productCount[s.ID],
			TotalOrders:           NotAvailable[int](),
			TotalOrderValue:       NotAvailable[decimal.Decimal](),
			OnTimeDeliveryPercent: NotAvailable[decimal.Decimal](),
		}
		if s.Rating != nil {
			perf.Rating = Computed(*s.Rating)
		}
		if s.DeliveryTimeDays != nil {
			perf.AverageDeliveryDays = Computed(*s.DeliveryTimeDays)
		}
		result = append(result, perf)
	}
	return result
}
