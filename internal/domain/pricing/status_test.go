package pricing_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/entity"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/pricing"
)

// StatusOf es una partición total: cada descuento cae en exactamente uno de los
// cuatro estados según now, IsActive y la ventana.
func TestStatusOf_ParticionDeEstados(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

	base := func() *entity.Discount {
		return &entity.Discount{ID: "d1", StartDate: start, EndDate: end, IsActive: true}
	}

	casos := []struct {
		nombre   string
		mutate   func(*entity.Discount)
		now      time.Time
		esperado entity.DiscountStatus
	}{
		{"dentro de la ventana → active", func(*entity.Discount) {}, start.Add(12 * time.Hour), entity.StatusActive},
		{"antes de start → scheduled", func(*entity.Discount) {}, start.Add(-time.Hour), entity.StatusScheduled},
		// Escenario C del diseño: now=2025-02-01 con end=2025-01-31 → expired.
		{"después de end → expired", func(*entity.Discount) {}, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), entity.StatusExpired},
		{"is_active=false manda sobre la ventana", func(d *entity.Discount) { d.IsActive = false }, start.Add(12 * time.Hour), entity.StatusDisabled},
		{"is_active=false aunque esté agendado", func(d *entity.Discount) { d.IsActive = false }, start.Add(-time.Hour), entity.StatusDisabled},
		{"retirado (soft-delete) → disabled", func(d *entity.Discount) {
			at := start.Add(time.Hour)
			d.DeletedAt = &at
		}, start.Add(12 * time.Hour), entity.StatusDisabled},
		{"borde inicial inclusivo → active", func(*entity.Discount) {}, start, entity.StatusActive},
		{"borde final inclusivo → active", func(*entity.Discount) {}, end, entity.StatusActive},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			d := base()
			c.mutate(d)
			assert.Equal(t, c.esperado, pricing.StatusOf(d, c.now))
		})
	}
}

// El estado se deriva en cada consulta: el mismo descuento cambia de scheduled
// a active a expired conforme avanza now, sin mutar el registro.
func TestStatusOf_DerivadoDeNow(t *testing.T) {
	d := &entity.Discount{
		ID:        "d1",
		StartDate: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		IsActive:  true,
	}

	assert.Equal(t, entity.StatusScheduled, pricing.StatusOf(d, time.Date(2025, 2, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, entity.StatusActive, pricing.StatusOf(d, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, entity.StatusExpired, pricing.StatusOf(d, time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)))
}
