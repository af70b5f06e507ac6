package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/application/dto"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/entity"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/pricing"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/repository"
	"github.com/WebCraftedByMonis/animal-nes-sub004/pkg/logger"
)

// PricingUseCase cotiza precios: arma el contexto de precio desde los
// registros, resuelve el descuento aplicable y calcula las cifras finales.
// Dos caminos con semántica de fallo distinta:
//
//   - Quote (checkout): un fallo de consulta bloquea la operación; cobrar un
//     precio no intencionado es peor que fallar la petición.
//   - QuoteForDisplay (vitrina): un fallo de consulta degrada a precio lleno
//     con warning en el log; la página nunca se cae por el motor de descuentos.
type PricingUseCase struct {
	productRepo repository.ProductRepository
	variantRepo repository.VariantRepository
	resolver    *pricing.Resolver
	log         *logger.Logger
	now         func() time.Time // inyectable en tests
}

// NewPricingUseCase construye el caso de uso.
func NewPricingUseCase(
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
	resolver *pricing.Resolver,
	log *logger.Logger,
) *PricingUseCase {
	return &PricingUseCase{
		productRepo: productRepo,
		variantRepo: variantRepo,
		resolver:    resolver,
		log:         log,
		now:         time.Now,
	}
}

// Quote cotiza con semántica estricta (camino de checkout). El caller debe
// congelar las cifras devueltas en el pedido: re-resolver después no puede
// cambiar el precio registrado de un pedido histórico.
func (uc *PricingUseCase) Quote(ctx context.Context, in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	base, pctx, err := uc.buildContext(ctx, in)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	d, err := uc.resolver.Resolve(ctx, pctx, now)
	if err != nil {
		return nil, err
	}
	return toQuoteResponse(in, base, pricing.Quote(base, d, now), now), nil
}

// QuoteForDisplay cotiza para vitrina/catálogo: si la consulta de descuentos
// falla, degrada a precio lleno y deja warning. Errores de contexto (producto
// inexistente, variante ajena) sí se propagan: son bugs del caller, no fallos
// de infraestructura.
func (uc *PricingUseCase) QuoteForDisplay(ctx context.Context, in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	base, pctx, err := uc.buildContext(ctx, in)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	d, err := uc.resolver.Resolve(ctx, pctx, now)
	if err != nil {
		if !errors.Is(err, domain.ErrDiscountLookup) {
			return nil, err
		}
		if uc.log != nil {
			uc.log.Warn().Err(err).
				Str("product_id", in.ProductID).
				Str("variant_id", in.VariantID).
				Msg("consulta de descuentos falló, se muestra precio lleno")
		}
		d = nil
	}
	return toQuoteResponse(in, base, pricing.Quote(base, d, now), now), nil
}

// buildContext resuelve precio base y contexto: el precio de la variante si se
// cotiza una, si no el del producto; la empresa se deriva del producto dueño.
func (uc *PricingUseCase) buildContext(ctx context.Context, in dto.QuoteRequest) (decimal.Decimal, pricing.Context, error) {
	_ = ctx
	if in.ProductID == "" {
		return decimal.Zero, pricing.Context{}, domain.ErrInvalidPricingContext
	}
	product, err := uc.productRepo.GetByID(in.ProductID)
	if err != nil {
		return decimal.Zero, pricing.Context{}, err
	}
	if product == nil {
		return decimal.Zero, pricing.Context{}, domain.ErrNotFound
	}

	base := product.Price
	if in.VariantID != "" {
		variant, err := uc.variantRepo.GetByID(in.VariantID)
		if err != nil {
			return decimal.Zero, pricing.Context{}, err
		}
		if variant == nil {
			return decimal.Zero, pricing.Context{}, domain.ErrNotFound
		}
		if variant.ProductID != product.ID {
			// Bug del caller: la variante no pertenece al producto cotizado.
			return decimal.Zero, pricing.Context{}, domain.ErrInvalidPricingContext
		}
		base = variant.Price
	}

	return base, pricing.Context{
		ProductID: product.ID,
		VariantID: in.VariantID,
		CompanyID: product.CompanyID,
	}, nil
}

func toQuoteResponse(in dto.QuoteRequest, base decimal.Decimal, rp pricing.ResolvedPrice, now time.Time) *dto.QuoteResponse {
	out := &dto.QuoteResponse{
		ProductID:     in.ProductID,
		VariantID:     in.VariantID,
		OriginalPrice: base,
		FinalPrice:    rp.FinalPrice,
		Savings:       rp.Savings,
		QuotedAt:      now,
	}
	if rp.AppliedDiscount != nil {
		out.Discount = toAppliedDiscount(rp.AppliedDiscount)
	}
	return out
}

func toAppliedDiscount(d *entity.Discount) *dto.AppliedDiscountResponse {
	return &dto.AppliedDiscountResponse{
		ID:         d.ID,
		Name:       d.Name,
		Percentage: d.Percentage,
		Scope:      string(d.Scope()),
		EndDate:    d.EndDate,
	}
}
