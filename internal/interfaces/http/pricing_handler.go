package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/application/dto"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/application/usecase"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain"
)

// PricingHandler expone la cotización de precios. El endpoint de vitrina es
// público y degrada ante fallos del motor; el de checkout es protegido y
// estricto: un fallo de consulta bloquea la petición.
type PricingHandler struct {
	uc *usecase.PricingUseCase
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *usecase.PricingUseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// Quote godoc
// @Summary      Cotizar precio para vitrina (degrada ante fallos)
// @Tags         pricing
// @Produce      json
// @Param        product_id  query  string  true   "ID del producto"
// @Param        variant_id  query  string  false  "ID de la presentación"
// @Success      200  {object}  dto.QuoteResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/pricing/quote [get]
func (h *PricingHandler) Quote(c *fiber.Ctx) error {
	in := dto.QuoteRequest{
		ProductID: c.Query("product_id"),
		VariantID: c.Query("variant_id"),
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.uc.QuoteForDisplay(c.Context(), in)
	if err != nil {
		return quoteError(c, err)
	}
	return c.JSON(out)
}

// CheckoutQuote godoc
// @Summary      Cotizar precio para checkout (estricto, cifras para congelar en el pedido)
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "product_id y variant_id opcional"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/pricing/checkout-quote [post]
func (h *PricingHandler) CheckoutQuote(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.ProductID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id es requerido"})
	}
	out, err := h.uc.Quote(c.Context(), in)
	if err != nil {
		return quoteError(c, err)
	}
	return c.JSON(out)
}

// quoteError mapea los errores de cotización a HTTP. Un fallo de consulta de
// descuentos es 503: la transacción se bloquea en vez de arriesgar un cobro a
// precio no intencionado.
func quoteError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto o presentación no encontrada"})
	case errors.Is(err, domain.ErrInvalidPricingContext):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_CONTEXT", Message: "la presentación no pertenece al producto"})
	case errors.Is(err, domain.ErrDiscountLookup):
		return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DISCOUNT_LOOKUP_FAILED", Message: "no se pudo consultar descuentos, intente más tarde"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
