package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductVariant representa una presentación concreta de un producto (pack,
// dosis, tamaño). Tiene precio de lista propio; si un caller cotiza la variante,
// ese precio es la base sobre la que se aplica el descuento resuelto.
type ProductVariant struct {
	ID        string
	ProductID string
	Name      string          // ej. "Frasco 500ml", "Caja x 12"
	SKU       string          // único por producto
	Price     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
