package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/application/dto"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/entity"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/pricing"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/repository"
)

// DiscountUseCase administra el ciclo de vida de los descuentos de una empresa.
// Las reglas de escritura viven aquí: porcentaje en (0, 100], end_date posterior
// a start_date y exactamente un nivel de alcance por registro (las filas de
// alcance mixto se rechazan al escribir, no se desempatan en runtime). El retiro
// es siempre soft-delete para que los pedidos históricos sigan auditables.
type DiscountUseCase struct {
	discountRepo repository.DiscountRepository
	productRepo  repository.ProductRepository
	variantRepo  repository.VariantRepository
	now          func() time.Time // inyectable en tests
}

// NewDiscountUseCase construye el caso de uso.
func NewDiscountUseCase(
	discountRepo repository.DiscountRepository,
	productRepo repository.ProductRepository,
	variantRepo repository.VariantRepository,
) *DiscountUseCase {
	return &DiscountUseCase{
		discountRepo: discountRepo,
		productRepo:  productRepo,
		variantRepo:  variantRepo,
		now:          time.Now,
	}
}

// Create crea un descuento para la empresa del token. El alcance se decide por
// los campos de la petición: variant_id → variante, product_id → producto,
// ninguno → toda la empresa. Mandar ambos es alcance mixto y se rechaza.
func (uc *DiscountUseCase) Create(ctx context.Context, companyID string, in dto.CreateDiscountRequest) (*dto.DiscountResponse, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := validatePercentage(in.Percentage); err != nil {
		return nil, err
	}
	if !in.EndDate.After(in.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductID != "" && in.VariantID != "" {
		return nil, domain.ErrInvalidDiscountScope
	}

	now := uc.now()
	d := &entity.Discount{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
		Percentage:  in.Percentage,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	switch {
	case in.VariantID != "":
		variant, err := uc.variantRepo.GetByID(in.VariantID)
		if err != nil {
			return nil, err
		}
		if variant == nil {
			return nil, domain.ErrNotFound
		}
		if err := uc.checkProductOwnership(variant.ProductID, companyID); err != nil {
			return nil, err
		}
		d.VariantID = &in.VariantID
	case in.ProductID != "":
		if err := uc.checkProductOwnership(in.ProductID, companyID); err != nil {
			return nil, err
		}
		d.ProductID = &in.ProductID
	default:
		d.CompanyID = &companyID
	}

	if err := uc.discountRepo.Create(ctx, d); err != nil {
		return nil, err
	}
	return uc.toResponse(d), nil
}

// GetByID obtiene un descuento con su estado derivado al momento de la consulta.
func (uc *DiscountUseCase) GetByID(ctx context.Context, id string) (*dto.DiscountResponse, error) {
	d, err := uc.discountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	return uc.toResponse(d), nil
}

// Update actualiza metadatos, porcentaje, ventana o kill-switch. El alcance no
// es editable. Re-valida los invariantes de escritura sobre el resultado.
func (uc *DiscountUseCase) Update(ctx context.Context, id string, in dto.UpdateDiscountRequest) (*dto.DiscountResponse, error) {
	d, err := uc.discountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, nil
	}
	if in.Name != nil {
		d.Name = *in.Name
	}
	if in.Description != nil {
		d.Description = *in.Description
	}
	if in.Percentage != nil {
		if err := validatePercentage(*in.Percentage); err != nil {
			return nil, err
		}
		d.Percentage = *in.Percentage
	}
	if in.StartDate != nil {
		d.StartDate = *in.StartDate
	}
	if in.EndDate != nil {
		d.EndDate = *in.EndDate
	}
	if !d.EndDate.After(d.StartDate) {
		return nil, domain.ErrInvalidInput
	}
	if in.IsActive != nil {
		d.IsActive = *in.IsActive
	}
	d.UpdatedAt = uc.now()
	if err := uc.discountRepo.Update(ctx, d); err != nil {
		return nil, err
	}
	return uc.toResponse(d), nil
}

// ListByCompany lista los descuentos de una empresa (todos sus alcances) con el
// estado calculado por fila.
func (uc *DiscountUseCase) ListByCompany(ctx context.Context, companyID string, limit, offset int) (*dto.DiscountListResponse, error) {
	list, err := uc.discountRepo.ListByCompany(ctx, companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.DiscountResponse, 0, len(list))
	for _, d := range list {
		items = append(items, *uc.toResponse(d))
	}
	return &dto.DiscountListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Disable apaga el kill-switch sin retirar el registro.
func (uc *DiscountUseCase) Disable(ctx context.Context, id string) (*dto.DiscountResponse, error) {
	off := false
	return uc.Update(ctx, id, dto.UpdateDiscountRequest{IsActive: &off})
}

// Delete retira un descuento vía soft-delete (is_active=false + deleted_at).
// Nunca hay borrado físico: los line items de pedidos históricos referencian
// el descuento aplicado y deben poder reconstruirse para auditoría.
func (uc *DiscountUseCase) Delete(ctx context.Context, id string) error {
	d, err := uc.discountRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if d == nil {
		return domain.ErrNotFound
	}
	return uc.discountRepo.SoftDelete(ctx, id, uc.now())
}

// checkProductOwnership verifica que el producto exista y pertenezca a la
// empresa que crea el descuento.
func (uc *DiscountUseCase) checkProductOwnership(productID, companyID string) error {
	product, err := uc.productRepo.GetByID(productID)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	if product.CompanyID != companyID {
		return domain.ErrForbidden
	}
	return nil
}

func validatePercentage(pct decimal.Decimal) error {
	if !pct.IsPositive() || pct.GreaterThan(decimal.NewFromInt(100)) {
		return domain.ErrInvalidInput
	}
	return nil
}

func (uc *DiscountUseCase) toResponse(d *entity.Discount) *dto.DiscountResponse {
	return &dto.DiscountResponse{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Percentage:  d.Percentage,
		StartDate:   d.StartDate,
		EndDate:     d.EndDate,
		IsActive:    d.IsActive,
		Scope:       string(d.Scope()),
		CompanyID:   d.CompanyID,
		ProductID:   d.ProductID,
		VariantID:   d.VariantID,
		Status:      string(pricing.StatusOf(d, uc.now())),
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}
