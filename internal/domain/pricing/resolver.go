package pricing

import (
	gocontext "context"
	"fmt"
	"time"

	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/entity"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/repository"
	"github.com/WebCraftedByMonis/animal-nes-sub004/pkg/logger"
)

// Resolver selecciona el único descuento aplicable para un contexto de precio.
// Precedencia: el alcance más específico gana, independiente de la magnitud
// (una promoción dirigida a una variante nunca es pisada por una rebaja de toda
// la empresa). Sin estado mutable: seguro bajo concurrencia arbitraria.
type Resolver struct {
	finder repository.DiscountCandidateFinder
	log    *logger.Logger
}

// NewResolver construye el resolver. El finder se inyecta (nada de clientes
// globales); log puede ser nil en tests.
func NewResolver(finder repository.DiscountCandidateFinder, log *logger.Logger) *Resolver {
	return &Resolver{finder: finder, log: log}
}

// Resolve devuelve el descuento aplicable para el contexto en el instante now,
// o nil si no hay ninguno.
//
//  1. variante: candidato con variant_id == ctx.VariantID
//  2. producto: candidato con product_id == ctx.ProductID y demás punteros NULL
//  3. empresa:  candidato con company_id == ctx.CompanyID y demás punteros NULL
//  4. fallback: mayor porcentaje entre los candidatos restantes
//
// Un fallo del repositorio se propaga envuelto en domain.ErrDiscountLookup;
// tratarlo como "sin descuento" cobraría precio lleno en silencio.
func (r *Resolver) Resolve(ctx gocontext.Context, pctx Context, now time.Time) (*entity.Discount, error) {
	if err := pctx.Validate(); err != nil {
		return nil, err
	}

	query := repository.DiscountQuery{}.ByProduct(pctx.ProductID)
	if pctx.VariantID != "" {
		query = query.ByVariant(pctx.VariantID)
	}
	if pctx.CompanyID != "" {
		query = query.ByCompany(pctx.CompanyID)
	}

	fetched, err := r.finder.FindCandidates(ctx, query, now)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDiscountLookup, err)
	}

	candidates := r.filterActive(fetched, now)
	if len(candidates) == 0 {
		return nil, nil
	}

	if pctx.VariantID != "" {
		if d := bestOf(candidates, func(d *entity.Discount) bool {
			return d.VariantID != nil && *d.VariantID == pctx.VariantID
		}); d != nil {
			return d, nil
		}
	}
	if d := bestOf(candidates, func(d *entity.Discount) bool {
		return d.Scope() == entity.ScopeProduct && *d.ProductID == pctx.ProductID
	}); d != nil {
		return d, nil
	}
	if pctx.CompanyID != "" {
		if d := bestOf(candidates, func(d *entity.Discount) bool {
			return d.Scope() == entity.ScopeCompany && *d.CompanyID == pctx.CompanyID
		}); d != nil {
			return d, nil
		}
	}
	// El repositorio pudo devolver coincidencias más amplias que los tres
	// niveles; entre ellas gana el mayor porcentaje.
	return bestOf(candidates, func(*entity.Discount) bool { return true }), nil
}

// filterActive re-verifica defensivamente que cada candidato esté activo en now.
// El contrato del repositorio ya filtra por ventana, pero no se asume: una fila
// con ventana malformada (end <= start) se descarta y se registra como problema
// de calidad de datos, nunca se lanza.
func (r *Resolver) filterActive(in []*entity.Discount, now time.Time) []*entity.Discount {
	out := make([]*entity.Discount, 0, len(in))
	for _, d := range in {
		if !d.HasValidWindow() {
			if r.log != nil {
				r.log.Warn().
					Str("discount_id", d.ID).
					Time("start_date", d.StartDate).
					Time("end_date", d.EndDate).
					Msg("descuento con ventana malformada, se ignora")
			}
			continue
		}
		if d.ActiveAt(now) {
			out = append(out, d)
		}
	}
	return out
}

// bestOf devuelve el mejor candidato que cumple match. Sobre múltiples filas
// del mismo nivel (la tienda no garantiza unicidad) el desempate es
// determinista: mayor porcentaje, luego CreatedAt más reciente, luego menor ID,
// para que el resultado sea reproducible en tests.
func bestOf(candidates []*entity.Discount, match func(*entity.Discount) bool) *entity.Discount {
	var best *entity.Discount
	for _, d := range candidates {
		if !match(d) {
			continue
		}
		if best == nil || beats(d, best) {
			best = d
		}
	}
	return best
}

func beats(a, b *entity.Discount) bool {
	if !a.Percentage.Equal(b.Percentage) {
		return a.Percentage.GreaterThan(b.Percentage)
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID < b.ID
}
