package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrDiscountLookup indica que la consulta de descuentos al almacén falló.
	// Nunca se trata como "sin descuento": el caller decide si degrada a precio
	// lleno (vitrina) o bloquea la operación (checkout).
	ErrDiscountLookup = errors.New("consulta de descuentos fallida")

	// ErrInvalidPricingContext indica un contexto de precio mal construido por el
	// caller (product_id vacío o variante que no pertenece al producto).
	ErrInvalidPricingContext = errors.New("contexto de precio inválido")

	// ErrInvalidDiscountScope indica un descuento con combinación de alcance
	// inválida (más de un nivel a la vez, o ninguno). Se rechaza en escritura.
	ErrInvalidDiscountScope = errors.New("alcance de descuento inválido")
)
