package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto de salud animal publicado por una empresa
// aliada. Price es el precio de lista base; las presentaciones (packs, dosis)
// viven en ProductVariant con precio propio.
type Product struct {
	ID          string
	CompanyID   string
	Slug        string // único por empresa, usado en URLs públicas
	Name        string
	Description string
	Category    string          // medicine, supplement, feed, accessory
	Price       decimal.Decimal // precio de lista si no se cotiza una variante
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
