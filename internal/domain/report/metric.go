package report

import (
	"encoding/json"
	"fmt"
)

// Estados serializados de un Metric.
const (
	MetricStatusComputed     = "computed"
	MetricStatusNotAvailable = "not_available"
)

// Metric valor que puede estar calculado o no disponible todavía.
// Distingue un cero real de un campo que aún no tiene respaldo en datos
// (tendencias, historial de órdenes de compra, etc.).
type Metric[T any] struct {
	value     T
	available bool
}

// Computed construye un Metric con valor calculado.
func Computed[T any](v T) Metric[T] {
	return Metric[T]{value: v, available: true}
}

// NotAvailable construye un Metric sin valor.
func NotAvailable[T any]() Metric[T] {
	return Metric[T]{}
}

// Get devuelve el valor y si está disponible.
func (m Metric[T]) Get() (T, bool) {
	return m.value, m.available
}

// Available indica si el valor fue calculado.
func (m Metric[T]) Available() bool { return m.available }

type metricJSON[T any] struct {
	Status string `json:"status"`
	Value  *T     `json:"value,omitempty"`
}

// MarshalJSON serializa como {"status":"computed","value":v} o {"status":"not_available"}.
func (m Metric[T]) MarshalJSON() ([]byte, error) {
	if !m.available {
		return json.Marshal(metricJSON[T]{Status: MetricStatusNotAvailable})
	}
	v := m.value
	return json.Marshal(metricJSON[T]{Status: MetricStatusComputed, Value: &v})
}

// UnmarshalJSON acepta el formato producido por MarshalJSON.
func (m *Metric[T]) UnmarshalJSON(data []byte) error {
	var raw metricJSON[T]
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch raw.Status {
	case MetricStatusNotAvailable:
		*m = NotAvailable[T]()
	case MetricStatusComputed:
		if raw.Value == nil {
			return fmt.Errorf("metric: valor ausente con status %q", raw.Status)
		}
		*m = Computed(*raw.Value)
	default:
		return fmt.Errorf("metric: status desconocido %q", raw.Status)
	}
	return nil
}
