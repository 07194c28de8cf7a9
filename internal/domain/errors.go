package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrFetch        = errors.New("error consultando el almacén de datos")
	ErrAggregation  = errors.New("error de agregación")
)

// FetchError falla de una de las consultas de entidades (productos, proveedores,
// movimientos o ventas). No se reintenta: se devuelve de inmediato al llamador.
type FetchError struct {
	Entity string // products, suppliers, stock_movements, sales
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("consulta de %s: %v", e.Entity, e.Err)
}

// Unwrap expone la causa original.
func (e *FetchError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrFetch).
func (e *FetchError) Is(target error) bool { return target == ErrFetch }

// NewFetchError envuelve err como FetchError; devuelve nil si err es nil.
func NewFetchError(entity string, err error) error {
	if err == nil {
		return nil
	}
	return &FetchError{Entity: entity, Err: err}
}

// AggregationError dato requerido ausente o inválido donde el contrato asume su presencia
// (ej. una venta sin su colección de líneas). Nunca se silencia.
type AggregationError struct {
	Entity string
	ID     string
	Reason string
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("agregación de %s %q: %s", e.Entity, e.ID, e.Reason)
}

// Is permite errors.Is(err, ErrAggregation).
func (e *AggregationError) Is(target error) bool { return target == ErrAggregation }
