package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/entity"
)

// Context es la clave de búsqueda que recibe el resolver: producto obligatorio,
// variante y empresa opcionales (cadena vacía = ausente). Es transitorio, nunca
// se persiste.
type Context struct {
	ProductID string
	VariantID string
	CompanyID string
}

// Validate verifica que el contexto sea usable: ProductID es obligatorio.
// La coherencia variante↔producto la valida el caso de uso, que es quien tiene
// los registros a la mano.
func (c Context) Validate() error {
	if c.ProductID == "" {
		return domain.ErrInvalidPricingContext
	}
	return nil
}

// ResolvedPrice es el resultado de cotizar un precio base contra el descuento
// resuelto (o ninguno). Transitorio.
type ResolvedPrice struct {
	FinalPrice      decimal.Decimal
	OriginalPrice   decimal.Decimal
	Savings         decimal.Decimal
	AppliedDiscount *entity.Discount
}
