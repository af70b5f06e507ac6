package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiscountScope niveles de alcance de un descuento. Exactamente un puntero de
// alcance debe estar definido por registro; combinaciones mixtas se rechazan
// al crear/editar (ScopeInvalid solo puede aparecer en datos legados).
type DiscountScope string

const (
	ScopeVariant DiscountScope = "variant"
	ScopeProduct DiscountScope = "product"
	ScopeCompany DiscountScope = "company"
	ScopeInvalid DiscountScope = "invalid"
)

// DiscountStatus estado derivado de un descuento. Nunca se persiste: se
// recalcula en cada consulta a partir de IsActive y la ventana de vigencia.
type DiscountStatus string

const (
	StatusActive    DiscountStatus = "active"
	StatusScheduled DiscountStatus = "scheduled"
	StatusExpired   DiscountStatus = "expired"
	StatusDisabled  DiscountStatus = "disabled"
)

// Discount representa un descuento porcentual acotado en el tiempo, definido a
// nivel de empresa, producto o variante. El retiro es soft-delete (IsActive=false
// + DeletedAt) para que los precios congelados en pedidos históricos sigan
// siendo auditables.
type Discount struct {
	ID          string
	Name        string
	Description string
	Percentage  decimal.Decimal // en (0, 100]; 15 significa 15%
	StartDate   time.Time       // ventana inclusiva
	EndDate     time.Time       // invariante EndDate > StartDate (validado en escritura)
	IsActive    bool            // kill-switch independiente de la ventana
	CompanyID   *string         // alcance empresa: solo CompanyID definido
	ProductID   *string         // alcance producto: solo ProductID definido
	VariantID   *string         // alcance variante: solo VariantID definido
	DeletedAt   *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Scope clasifica el alcance del descuento según sus punteros. Una fila con más
// de un puntero definido (o ninguno) es ScopeInvalid y nunca aplica.
func (d *Discount) Scope() DiscountScope {
	set := 0
	if d.VariantID != nil && *d.VariantID != "" {
		set++
	}
	if d.ProductID != nil && *d.ProductID != "" {
		set++
	}
	if d.CompanyID != nil && *d.CompanyID != "" {
		set++
	}
	if set != 1 {
		return ScopeInvalid
	}
	switch {
	case d.VariantID != nil && *d.VariantID != "":
		return ScopeVariant
	case d.ProductID != nil && *d.ProductID != "":
		return ScopeProduct
	default:
		return ScopeCompany
	}
}

// HasValidWindow verifica el invariante EndDate > StartDate. Una fila con
// ventana malformada se trata como nunca-activa, no como error.
func (d *Discount) HasValidWindow() bool {
	return d.EndDate.After(d.StartDate)
}

// WindowContains indica si now cae dentro de [StartDate, EndDate] (inclusivo).
func (d *Discount) WindowContains(now time.Time) bool {
	return !now.Before(d.StartDate) && !now.After(d.EndDate)
}

// ActiveAt indica si el descuento es aplicable en el instante now: habilitado,
// no retirado, ventana bien formada y que contiene now.
func (d *Discount) ActiveAt(now time.Time) bool {
	if !d.IsActive || d.DeletedAt != nil {
		return false
	}
	if !d.HasValidWindow() {
		return false
	}
	return d.WindowContains(now)
}
