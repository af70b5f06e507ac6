package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateDiscountRequest entrada para crear un descuento. Exactamente uno de
// product_id / variant_id debe venir definido para alcance producto/variante;
// si ninguno viene, el alcance es la empresa del token.
type CreateDiscountRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description"`
	Percentage  decimal.Decimal `json:"percentage" validate:"required"`
	StartDate   time.Time       `json:"start_date" validate:"required"`
	EndDate     time.Time       `json:"end_date" validate:"required"`
	ProductID   string          `json:"product_id"`
	VariantID   string          `json:"variant_id"`
}

// UpdateDiscountRequest entrada para actualizar un descuento (campos
// opcionales). El alcance no es editable: se crea otro descuento.
type UpdateDiscountRequest struct {
	Name        *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string          `json:"description"`
	Percentage  *decimal.Decimal `json:"percentage"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
	IsActive    *bool            `json:"is_active"`
}

// DiscountResponse salida de un descuento con su estado derivado al momento de
// la consulta (active, scheduled, expired, disabled). El estado nunca se
// persiste.
type DiscountResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Percentage  decimal.Decimal `json:"percentage"`
	StartDate   time.Time       `json:"start_date"`
	EndDate     time.Time       `json:"end_date"`
	IsActive    bool            `json:"is_active"`
	Scope       string          `json:"scope"` // company, product, variant
	CompanyID   *string         `json:"company_id,omitempty"`
	ProductID   *string         `json:"product_id,omitempty"`
	VariantID   *string         `json:"variant_id,omitempty"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DiscountListResponse lista paginada de descuentos.
type DiscountListResponse struct {
	Items []DiscountResponse `json:"items"`
	Page  PageResponse       `json:"page"`
}
