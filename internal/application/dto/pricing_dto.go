package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRequest entrada para cotizar el precio de un producto o variante.
type QuoteRequest struct {
	ProductID string `json:"product_id" query:"product_id" validate:"required,uuid"`
	VariantID string `json:"variant_id" query:"variant_id" validate:"omitempty,uuid"`
}

// AppliedDiscountResponse descuento aplicado dentro de una cotización.
type AppliedDiscountResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Percentage decimal.Decimal `json:"percentage"`
	Scope      string          `json:"scope"`
	EndDate    time.Time       `json:"end_date"` // útil para "la oferta termina el..."
}

// QuoteResponse cotización: precio original, final y ahorro, con el descuento
// aplicado si lo hay. QuotedAt es el instante de resolución; si el caller
// congela el precio en un pedido, debe persistir estas cifras tal cual.
type QuoteResponse struct {
	ProductID     string                   `json:"product_id"`
	VariantID     string                   `json:"variant_id,omitempty"`
	OriginalPrice decimal.Decimal          `json:"original_price"`
	FinalPrice    decimal.Decimal          `json:"final_price"`
	Savings       decimal.Decimal          `json:"savings"`
	Discount      *AppliedDiscountResponse `json:"discount,omitempty"`
	QuotedAt      time.Time                `json:"quoted_at"`
}
