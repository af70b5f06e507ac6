package pricing

import (
	"time"

	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/entity"
)

// StatusOf deriva el estado de exhibición de un descuento en el instante now.
// Partición total y mutuamente excluyente, chequeada en este orden:
//
//	disabled  → IsActive == false o retirado (independiente de las fechas)
//	scheduled → now < StartDate
//	expired   → now > EndDate
//	active    → en cualquier otro caso
//
// Es una propiedad calculada: nunca se almacena, se recalcula en cada consulta.
func StatusOf(d *entity.Discount, now time.Time) entity.DiscountStatus {
	if !d.IsActive || d.DeletedAt != nil {
		return entity.StatusDisabled
	}
	if now.Before(d.StartDate) {
		return entity.StatusScheduled
	}
	if now.After(d.EndDate) {
		return entity.StatusExpired
	}
	return entity.StatusActive
}
