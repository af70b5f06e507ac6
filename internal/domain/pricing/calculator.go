package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/entity"
)

// Funciones puras de cálculo de precio. Todo el dinero es decimal de 2 cifras;
// el porcentaje es un decimal plano (15 significa 15%, no 0.15). El redondeo
// half-up ocurre solo en la frontera final, nunca acumulando float binario.

var hundred = decimal.NewFromInt(100)

// DiscountedPrice calcula round2(base - base*pct/100), acotado a >= 0 aunque
// el porcentaje esté validado a <= 100 en escritura.
func DiscountedPrice(basePrice, percentage decimal.Decimal) decimal.Decimal {
	final := basePrice.Sub(basePrice.Mul(percentage).Div(hundred)).Round(2)
	if final.IsNegative() {
		return decimal.Zero.Round(2)
	}
	return final
}

// Savings calcula round2(base*pct/100).
func Savings(basePrice, percentage decimal.Decimal) decimal.Decimal {
	return basePrice.Mul(percentage).Div(hundred).Round(2)
}

// Quote aplica el descuento resuelto (o ninguno) al precio base. Si discount es
// nil, o no está activo en now, devuelve la cotización identidad: precio lleno,
// sin ahorro, sin descuento adjunto.
func Quote(basePrice decimal.Decimal, discount *entity.Discount, now time.Time) ResolvedPrice {
	if discount == nil || !discount.ActiveAt(now) {
		return ResolvedPrice{
			FinalPrice:    basePrice,
			OriginalPrice: basePrice,
			Savings:       decimal.Zero,
		}
	}
	return ResolvedPrice{
		FinalPrice:      DiscountedPrice(basePrice, discount.Percentage),
		OriginalPrice:   basePrice,
		Savings:         Savings(basePrice, discount.Percentage),
		AppliedDiscount: discount,
	}
}
