package pricing_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/entity"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/pricing"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

var (
	testNow   = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
)

// fakeFinder implementa repository.DiscountCandidateFinder en memoria.
type fakeFinder struct {
	candidates []*entity.Discount
	err        error
	lastQuery  repository.DiscountQuery
}

func (f *fakeFinder) FindCandidates(_ context.Context, q repository.DiscountQuery, _ time.Time) ([]*entity.Discount, error) {
	f.lastQuery = q
	if f.err != nil {
		return nil, f.err
	}
	return f.candidates, nil
}

func strPtr(s string) *string { return &s }

// variantDiscount descuento vigente a nivel variante.
func variantDiscount(id, variantID, pct string) *entity.Discount {
	return &entity.Discount{
		ID: id, VariantID: strPtr(variantID), Percentage: dec(pct),
		StartDate: testStart, EndDate: testEnd, IsActive: true,
		CreatedAt: testStart,
	}
}

func productDiscount(id, productID, pct string) *entity.Discount {
	return &entity.Discount{
		ID: id, ProductID: strPtr(productID), Percentage: dec(pct),
		StartDate: testStart, EndDate: testEnd, IsActive: true,
		CreatedAt: testStart,
	}
}

func companyDiscount(id, companyID, pct string) *entity.Discount {
	return &entity.Discount{
		ID: id, CompanyID: strPtr(companyID), Percentage: dec(pct),
		StartDate: testStart, EndDate: testEnd, IsActive: true,
		CreatedAt: testStart,
	}
}

func resolve(t *testing.T, f *fakeFinder, pctx pricing.Context) (*entity.Discount, error) {
	t.Helper()
	r := pricing.NewResolver(f, nil)
	return r.Resolve(context.Background(), pctx, testNow)
}

// ──────────────────────────────────────────────────────────────────────────────
// Precedencia: el alcance más específico gana, no el porcentaje más grande
// ──────────────────────────────────────────────────────────────────────────────

// Escenario B del diseño: con candidatos en los tres niveles gana la variante
// aunque su porcentaje (10%) sea el menor.
func TestResolve_EspecificidadGanaSobreMagnitud(t *testing.T) {
	f := &fakeFinder{candidates: []*entity.Discount{
		variantDiscount("d-var", "var-42", "10"),
		productDiscount("d-prod", "prod-5", "30"),
		companyDiscount("d-comp", "comp-7", "50"),
	}}

	got, err := resolve(t, f, pricing.Context{ProductID: "prod-5", VariantID: "var-42", CompanyID: "comp-7"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "d-var", got.ID, "la promoción de variante no debe ser pisada por la rebaja de empresa")
}

// Sin descuento de variante, gana el de producto sobre el de empresa.
func TestResolve_ProductoGanaSobreEmpresa(t *testing.T) {
	f := &fakeFinder{candidates: []*entity.Discount{
		productDiscount("d-prod", "prod-5", "20"),
		companyDiscount("d-comp", "comp-7", "60"),
	}}

	got, err := resolve(t, f, pricing.Context{ProductID: "prod-5", VariantID: "var-42", CompanyID: "comp-7"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "d-prod", got.ID)
}

// Solo descuento de empresa → se aplica el de empresa.
func TestResolve_SoloEmpresa(t *testing.T) {
	f := &fakeFinder{candidates: []*entity.Discount{
		companyDiscount("d-comp", "comp-7", "25"),
	}}

	got, err := resolve(t, f, pricing.Context{ProductID: "prod-5", CompanyID: "comp-7"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "d-comp", got.ID)
}

// Sin candidatos → nil, sin error (escenario D).
func TestResolve_SinCandidatos(t *testing.T) {
	f := &fakeFinder{}
	got, err := resolve(t, f, pricing.Context{ProductID: "prod-5"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

// El resolver devuelve a lo sumo UN descuento; nunca acumula varios.
func TestResolve_AloSumoUno(t *testing.T) {
	f := &fakeFinder{candidates: []*entity.Discount{
		productDiscount("d1", "prod-5", "10"),
		productDiscount("d2", "prod-5", "20"),
		companyDiscount("d3", "comp-7", "30"),
	}}

	got, err := resolve(t, f, pricing.Context{ProductID: "prod-5", CompanyID: "comp-7"})
	require.NoError(t, err)
	require.NotNil(t, got)
	// d2 gana dentro del nivel producto por mayor porcentaje; d3 ni se considera.
	assert.Equal(t, "d2", got.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Desempate determinista dentro de un mismo nivel
// ──────────────────────────────────────────────────────────────────────────────

// Con porcentajes iguales gana el creado más recientemente.
func TestResolve_DesempatePorCreacion(t *testing.T) {
	viejo := productDiscount("d-viejo", "prod-5", "15")
	nuevo := productDiscount("d-nuevo", "prod-5", "15")
	nuevo.CreatedAt = testStart.Add(48 * time.Hour)

	f := &fakeFinder{candidates: []*entity.Discount{viejo, nuevo}}
	got, err := resolve(t, f, pricing.Context{ProductID: "prod-5"})
	require.NoError(t, err)
	assert.Equal(t, "d-nuevo", got.ID)
}

// Con porcentaje y fecha de creación iguales gana el menor ID; el orden de
// llegada de los candidatos no altera el resultado.
func TestResolve_DesempatePorIDEsReproducible(t *testing.T) {
	a := productDiscount("d-aaa", "prod-5", "15")
	b := productDiscount("d-zzz", "prod-5", "15")

	f1 := &fakeFinder{candidates: []*entity.Discount{a, b}}
	f2 := &fakeFinder{candidates: []*entity.Discount{b, a}}

	got1, err := resolve(t, f1, pricing.Context{ProductID: "prod-5"})
	require.NoError(t, err)
	got2, err := resolve(t, f2, pricing.Context{ProductID: "prod-5"})
	require.NoError(t, err)

	assert.Equal(t, "d-aaa", got1.ID)
	assert.Equal(t, got1.ID, got2.ID, "el desempate debe ser independiente del orden de los candidatos")
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventana de vigencia y kill-switch
// ──────────────────────────────────────────────────────────────────────────────

// Un descuento agendado a futuro nunca se devuelve aunque esté habilitado.
func TestResolve_AgendadoNoAplica(t *testing.T) {
	d := productDiscount("d1", "prod-5", "15")
	d.StartDate = testNow.Add(24 * time.Hour)
	d.EndDate = testNow.Add(30 * 24 * time.Hour)

	f := &fakeFinder{candidates: []*entity.Discount{d}}
	got, err := resolve(t, f, pricing.Context{ProductID: "prod-5"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Un descuento vencido nunca se devuelve (escenario C).
func TestResolve_VencidoNoAplica(t *testing.T) {
	d := productDiscount("d1", "prod-5", "15")
	d.StartDate = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	d.EndDate = time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

	f := &fakeFinder{candidates: []*entity.Discount{d}}
	got, err := resolve(t, f, pricing.Context{ProductID: "prod-5"})
	require.NoError(t, err)
	assert.Nil(t, got, "now=2025-06-15 está después de end_date")
}

// La ventana es inclusiva en ambos extremos.
func TestResolve_VentanaInclusiva(t *testing.T) {
	d := productDiscount("d1", "prod-5", "15")
	d.StartDate = testNow
	d.EndDate = testNow.Add(time.Hour)

	f := &fakeFinder{candidates: []*entity.Discount{d}}
	got, err := resolve(t, f, pricing.Context{ProductID: "prod-5"})
	require.NoError(t, err)
	require.NotNil(t, got, "now == start_date debe estar dentro de la ventana")

	r := pricing.NewResolver(f, nil)
	got, err = r.Resolve(context.Background(), pricing.Context{ProductID: "prod-5"}, d.EndDate)
	require.NoError(t, err)
	assert.NotNil(t, got, "now == end_date debe estar dentro de la ventana")
}

// IsActive=false manda sobre la ventana: deshabilitado nunca se devuelve.
func TestResolve_DeshabilitadoNoAplica(t *testing.T) {
	d := productDiscount("d1", "prod-5", "50")
	d.IsActive = false

	f := &fakeFinder{candidates: []*entity.Discount{d}}
	got, err := resolve(t, f, pricing.Context{ProductID: "prod-5"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

// Un registro con ventana malformada (end <= start) se ignora sin crashear.
func TestResolve_VentanaMalformadaSeIgnora(t *testing.T) {
	malo := productDiscount("d-malo", "prod-5", "90")
	malo.StartDate = testEnd
	malo.EndDate = testStart // invertida

	bueno := productDiscount("d-bueno", "prod-5", "10")

	f := &fakeFinder{candidates: []*entity.Discount{malo, bueno}}
	got, err := resolve(t, f, pricing.Context{ProductID: "prod-5"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "d-bueno", got.ID, "la fila malformada se trata como nunca-activa")
}

// Un descuento retirado (soft-delete) nunca se devuelve.
func TestResolve_RetiradoNoAplica(t *testing.T) {
	d := productDiscount("d1", "prod-5", "15")
	borrado := testStart.Add(time.Hour)
	d.DeletedAt = &borrado

	f := &fakeFinder{candidates: []*entity.Discount{d}}
	got, err := resolve(t, f, pricing.Context{ProductID: "prod-5"})
	require.NoError(t, err)
	assert.Nil(t, got)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fallos y contexto inválido
// ──────────────────────────────────────────────────────────────────────────────

// Un fallo del repositorio se propaga envuelto, jamás se trata como "sin descuento".
func TestResolve_FalloDeRepositorioSePropaga(t *testing.T) {
	f := &fakeFinder{err: errors.New("conexión rechazada")}
	got, err := resolve(t, f, pricing.Context{ProductID: "prod-5"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDiscountLookup)
	assert.Nil(t, got)
}

// Contexto sin product_id → ErrInvalidPricingContext, sin tocar el repositorio.
func TestResolve_ContextoInvalido(t *testing.T) {
	f := &fakeFinder{candidates: []*entity.Discount{productDiscount("d1", "prod-5", "15")}}
	got, err := resolve(t, f, pricing.Context{VariantID: "var-42"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidPricingContext)
	assert.Nil(t, got)
	assert.True(t, f.lastQuery.IsEmpty(), "no debe consultarse el repositorio con contexto inválido")
}

// La query enviada al repositorio lleva los predicados del contexto.
func TestResolve_QueryConPredicadosDelContexto(t *testing.T) {
	f := &fakeFinder{}
	_, err := resolve(t, f, pricing.Context{ProductID: "prod-5", VariantID: "var-42", CompanyID: "comp-7"})
	require.NoError(t, err)

	assert.Equal(t, "prod-5", f.lastQuery.ProductID)
	assert.Equal(t, "var-42", f.lastQuery.VariantID)
	assert.Equal(t, "comp-7", f.lastQuery.CompanyID)
}
