package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/application/dto"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/application/usecase"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/entity"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/repository"
)

// fakeDiscountRepo implementa repository.DiscountRepository en memoria.
type fakeDiscountRepo struct {
	discounts map[string]*entity.Discount
}

func newFakeDiscountRepo() *fakeDiscountRepo {
	return &fakeDiscountRepo{discounts: map[string]*entity.Discount{}}
}

func (f *fakeDiscountRepo) FindCandidates(context.Context, repository.DiscountQuery, time.Time) ([]*entity.Discount, error) {
	return nil, nil
}
func (f *fakeDiscountRepo) Create(_ context.Context, d *entity.Discount) error {
	cp := *d
	f.discounts[d.ID] = &cp
	return nil
}
func (f *fakeDiscountRepo) GetByID(_ context.Context, id string) (*entity.Discount, error) {
	d, ok := f.discounts[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}
func (f *fakeDiscountRepo) Update(_ context.Context, d *entity.Discount) error {
	cp := *d
	f.discounts[d.ID] = &cp
	return nil
}
func (f *fakeDiscountRepo) ListByCompany(context.Context, string, int, int) ([]*entity.Discount, error) {
	out := make([]*entity.Discount, 0, len(f.discounts))
	for _, d := range f.discounts {
		cp := *d
		out = append(out, &cp)
	}
	return out, nil
}
func (f *fakeDiscountRepo) SoftDelete(_ context.Context, id string, at time.Time) error {
	d, ok := f.discounts[id]
	if !ok {
		return domain.ErrNotFound
	}
	d.IsActive = false
	d.DeletedAt = &at
	return nil
}

func newDiscountUC(repo *fakeDiscountRepo) *usecase.DiscountUseCase {
	productRepo, variantRepo := fixtureRepos()
	return usecase.NewDiscountUseCase(repo, productRepo, variantRepo)
}

func validCreateReq() dto.CreateDiscountRequest {
	return dto.CreateDiscountRequest{
		Name:       "Mes del ganado",
		Percentage: dec("15"),
		StartDate:  time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create: reglas de escritura
// ──────────────────────────────────────────────────────────────────────────────

// Sin product_id ni variant_id el alcance es la empresa del token.
func TestDiscountCreate_AlcanceEmpresa(t *testing.T) {
	repo := newFakeDiscountRepo()
	uc := newDiscountUC(repo)

	out, err := uc.Create(context.Background(), "comp-7", validCreateReq())
	require.NoError(t, err)

	assert.Equal(t, "company", out.Scope)
	require.NotNil(t, out.CompanyID)
	assert.Equal(t, "comp-7", *out.CompanyID)
	assert.Nil(t, out.ProductID)
	assert.Nil(t, out.VariantID)
	assert.True(t, out.IsActive)
}

// Con product_id el alcance es producto y se exige pertenencia a la empresa.
func TestDiscountCreate_AlcanceProducto(t *testing.T) {
	uc := newDiscountUC(newFakeDiscountRepo())

	in := validCreateReq()
	in.ProductID = "prod-5"
	out, err := uc.Create(context.Background(), "comp-7", in)
	require.NoError(t, err)

	assert.Equal(t, "product", out.Scope)
	require.NotNil(t, out.ProductID)
	assert.Equal(t, "prod-5", *out.ProductID)
	assert.Nil(t, out.CompanyID, "alcance producto no debe llevar company_id")
}

// Con variant_id el alcance es variante; la pertenencia se verifica vía el
// producto dueño de la variante.
func TestDiscountCreate_AlcanceVariante(t *testing.T) {
	uc := newDiscountUC(newFakeDiscountRepo())

	in := validCreateReq()
	in.VariantID = "var-42"
	out, err := uc.Create(context.Background(), "comp-7", in)
	require.NoError(t, err)

	assert.Equal(t, "variant", out.Scope)
	require.NotNil(t, out.VariantID)
	assert.Equal(t, "var-42", *out.VariantID)
}

// Alcance mixto (product_id y variant_id a la vez) se rechaza en escritura;
// nunca llega una fila ambigua al resolver.
func TestDiscountCreate_AlcanceMixtoRechazado(t *testing.T) {
	uc := newDiscountUC(newFakeDiscountRepo())

	in := validCreateReq()
	in.ProductID = "prod-5"
	in.VariantID = "var-42"
	_, err := uc.Create(context.Background(), "comp-7", in)
	assert.ErrorIs(t, err, domain.ErrInvalidDiscountScope)
}

// Producto de otra empresa → 403.
func TestDiscountCreate_ProductoAjeno(t *testing.T) {
	uc := newDiscountUC(newFakeDiscountRepo())

	in := validCreateReq()
	in.ProductID = "prod-5"
	_, err := uc.Create(context.Background(), "otra-empresa", in)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Porcentaje fuera de (0, 100] se rechaza.
func TestDiscountCreate_PorcentajeInvalido(t *testing.T) {
	uc := newDiscountUC(newFakeDiscountRepo())

	for _, pct := range []string{"0", "-5", "100.01", "150"} {
		in := validCreateReq()
		in.Percentage = dec(pct)
		_, err := uc.Create(context.Background(), "comp-7", in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "pct=%s debe rechazarse", pct)
	}
}

// El porcentaje 100 sí es válido (borde superior inclusivo).
func TestDiscountCreate_CienPorCientoValido(t *testing.T) {
	uc := newDiscountUC(newFakeDiscountRepo())

	in := validCreateReq()
	in.Percentage = dec("100")
	_, err := uc.Create(context.Background(), "comp-7", in)
	assert.NoError(t, err)
}

// end_date <= start_date se rechaza en escritura.
func TestDiscountCreate_VentanaInvertidaRechazada(t *testing.T) {
	uc := newDiscountUC(newFakeDiscountRepo())

	in := validCreateReq()
	in.EndDate = in.StartDate
	_, err := uc.Create(context.Background(), "comp-7", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Disable / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestDiscountUpdate_ReValidaInvariantes(t *testing.T) {
	repo := newFakeDiscountRepo()
	uc := newDiscountUC(repo)
	created, err := uc.Create(context.Background(), "comp-7", validCreateReq())
	require.NoError(t, err)

	// Mover end_date antes de start_date debe rechazarse.
	mal := created.StartDate.Add(-time.Hour)
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateDiscountRequest{EndDate: &mal})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Un porcentaje válido sí se acepta.
	nuevo := dec("20")
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateDiscountRequest{Percentage: &nuevo})
	require.NoError(t, err)
	assert.True(t, out.Percentage.Equal(dec("20")))
}

func TestDiscountDisable_ApagaKillSwitch(t *testing.T) {
	repo := newFakeDiscountRepo()
	uc := newDiscountUC(repo)
	created, err := uc.Create(context.Background(), "comp-7", validCreateReq())
	require.NoError(t, err)

	out, err := uc.Disable(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, out.IsActive)
	assert.Equal(t, "disabled", out.Status, "deshabilitado manda sobre la ventana")
}

// Delete es soft-delete: la fila sobrevive con deleted_at y is_active=false.
func TestDiscountDelete_EsSoftDelete(t *testing.T) {
	repo := newFakeDiscountRepo()
	uc := newDiscountUC(repo)
	created, err := uc.Create(context.Background(), "comp-7", validCreateReq())
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))

	row := repo.discounts[created.ID]
	require.NotNil(t, row, "el registro debe sobrevivir para auditoría de pedidos históricos")
	assert.False(t, row.IsActive)
	assert.NotNil(t, row.DeletedAt)
}

func TestDiscountDelete_NoExiste(t *testing.T) {
	uc := newDiscountUC(newFakeDiscountRepo())
	err := uc.Delete(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
