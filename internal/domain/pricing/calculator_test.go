package pricing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/entity"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del cálculo puro de precios. Todo el dinero se maneja con decimal;
// estos tests son el canario contra errores de redondeo acumulado.
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Escenario A del diseño: base 1000, 15% → final 850.00, ahorro 150.00.
func TestDiscountedPrice_EscenarioBase(t *testing.T) {
	final := pricing.DiscountedPrice(dec("1000"), dec("15"))
	ahorro := pricing.Savings(dec("1000"), dec("15"))

	assert.True(t, final.Equal(dec("850.00")), "precio final esperado 850.00, fue %s", final)
	assert.True(t, ahorro.Equal(dec("150.00")), "ahorro esperado 150.00, fue %s", ahorro)
}

// El redondeo es half-up a 2 decimales, escala de moneda.
func TestDiscountedPrice_RedondeoHalfUp(t *testing.T) {
	// 10.01 con 5% → 10.01 - 0.5005 = 9.5095 → 9.51
	final := pricing.DiscountedPrice(dec("10.01"), dec("5"))
	assert.True(t, final.Equal(dec("9.51")), "esperado 9.51, fue %s", final)

	// ahorro 0.5005 → 0.50 (la mitad exacta sube: 0.505 → 0.51)
	ahorro := pricing.Savings(dec("10.1"), dec("5"))
	assert.True(t, ahorro.Equal(dec("0.51")), "esperado 0.51, fue %s", ahorro)
}

// Aplicar 0% a un precio ya descontado es un no-op (idempotencia de redondeo).
func TestDiscountedPrice_CeroPorCientoEsNoOp(t *testing.T) {
	casos := []struct{ base, pct string }{
		{"1000", "15"},
		{"99.99", "33"},
		{"0.01", "50"},
		{"123456.78", "7.5"},
	}
	for _, c := range casos {
		descontado := pricing.DiscountedPrice(dec(c.base), dec(c.pct))
		otraVez := pricing.DiscountedPrice(descontado, decimal.Zero)
		assert.True(t, otraVez.Equal(descontado),
			"base=%s pct=%s: aplicar 0%% debe ser no-op (%s vs %s)", c.base, c.pct, otraVez, descontado)
	}
}

// Para todo pct en [0,100] y base >= 0: 0 <= final <= base.
func TestDiscountedPrice_Acotado(t *testing.T) {
	bases := []string{"0", "0.01", "1", "999.99", "1000000"}
	pcts := []string{"0", "0.5", "15", "50", "99.99", "100"}
	for _, b := range bases {
		for _, p := range pcts {
			final := pricing.DiscountedPrice(dec(b), dec(p))
			assert.False(t, final.IsNegative(), "base=%s pct=%s: final negativo %s", b, p, final)
			assert.True(t, final.LessThanOrEqual(dec(b)), "base=%s pct=%s: final %s supera la base", b, p, final)
		}
	}
}

// Con 100% el precio queda exactamente en 0, nunca negativo.
func TestDiscountedPrice_CienPorCiento(t *testing.T) {
	final := pricing.DiscountedPrice(dec("59.90"), dec("100"))
	assert.True(t, final.IsZero(), "100%% debe dejar el precio en 0, fue %s", final)
}

// Quote con descuento nil devuelve la cotización identidad (escenario D).
func TestQuote_SinDescuento(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	q := pricing.Quote(dec("1000"), nil, now)

	assert.True(t, q.FinalPrice.Equal(dec("1000")))
	assert.True(t, q.OriginalPrice.Equal(dec("1000")))
	assert.True(t, q.Savings.IsZero())
	assert.Nil(t, q.AppliedDiscount)
}

// Quote re-verifica la ventana: un descuento vencido en now no se aplica aunque
// el caller lo pase adjunto.
func TestQuote_DescuentoFueraDeVentana(t *testing.T) {
	d := &entity.Discount{
		ID:         "d1",
		Percentage: dec("20"),
		StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC),
		IsActive:   true,
	}
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	q := pricing.Quote(dec("500"), d, now)
	require.Nil(t, q.AppliedDiscount, "descuento vencido no debe aplicarse")
	assert.True(t, q.FinalPrice.Equal(dec("500")))
	assert.True(t, q.Savings.IsZero())
}

// Quote con descuento vigente adjunta el descuento y calcula las cifras.
func TestQuote_DescuentoVigente(t *testing.T) {
	d := &entity.Discount{
		ID:         "d1",
		Percentage: dec("10"),
		StartDate:  time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC),
		IsActive:   true,
	}
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	q := pricing.Quote(dec("200"), d, now)
	require.NotNil(t, q.AppliedDiscount)
	assert.Equal(t, "d1", q.AppliedDiscount.ID)
	assert.True(t, q.FinalPrice.Equal(dec("180.00")), "esperado 180.00, fue %s", q.FinalPrice)
	assert.True(t, q.Savings.Equal(dec("20.00")))
	assert.True(t, q.OriginalPrice.Equal(dec("200")))
}
