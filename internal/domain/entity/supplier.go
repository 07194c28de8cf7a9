package entity

import "github.com/shopspring/decimal"

// Supplier representa un proveedor. Rating (0–5) y DeliveryTimeDays son opcionales.
type Supplier struct {
	ID               string
	Name             string
	Rating           *decimal.Decimal
	DeliveryTimeDays *int
}
