package entity

// Category representa una categoría de productos.
type Category struct {
	ID   string
	Name string
}
