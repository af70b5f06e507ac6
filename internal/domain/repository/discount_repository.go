package repository

import (
	"context"
	"time"

	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/entity"
)

// DiscountQuery value object tipado para consultar candidatos de descuento.
// Cada predicado nombra un nivel de alcance; el adaptador de persistencia
// compone el OR a partir de ellos en vez de armar fragmentos ad-hoc.
type DiscountQuery struct {
	VariantID string // alcance variante: variant_id = VariantID
	ProductID string // alcance producto: product_id = ProductID y demás punteros NULL
	CompanyID string // alcance empresa: company_id = CompanyID y demás punteros NULL
}

// ByVariant agrega el predicado de alcance variante.
func (q DiscountQuery) ByVariant(variantID string) DiscountQuery {
	q.VariantID = variantID
	return q
}

// ByProduct agrega el predicado de alcance producto.
func (q DiscountQuery) ByProduct(productID string) DiscountQuery {
	q.ProductID = productID
	return q
}

// ByCompany agrega el predicado de alcance empresa.
func (q DiscountQuery) ByCompany(companyID string) DiscountQuery {
	q.CompanyID = companyID
	return q
}

// IsEmpty indica si no hay ningún predicado de alcance.
func (q DiscountQuery) IsEmpty() bool {
	return q.VariantID == "" && q.ProductID == "" && q.CompanyID == ""
}

// DiscountCandidateFinder es el puerto de solo lectura que consume el resolver
// de precios. FindCandidates devuelve los descuentos habilitados (is_active,
// no retirados) cuya ventana [start_date, end_date] contiene now y cuyo alcance
// coincide con algún predicado de la query.
type DiscountCandidateFinder interface {
	FindCandidates(ctx context.Context, q DiscountQuery, now time.Time) ([]*entity.Discount, error)
}

// DiscountRepository define el puerto de persistencia para Discount (DIP).
// No expone borrado físico: el retiro es soft-delete para que los precios
// congelados en pedidos históricos sigan siendo reconstruibles.
type DiscountRepository interface {
	DiscountCandidateFinder
	Create(ctx context.Context, d *entity.Discount) error
	GetByID(ctx context.Context, id string) (*entity.Discount, error)
	Update(ctx context.Context, d *entity.Discount) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Discount, error)
	SoftDelete(ctx context.Context, id string, at time.Time) error
}
