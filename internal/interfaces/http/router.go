package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/application/auth"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/application/usecase"
	"github.com/WebCraftedByMonis/animal-nes-sub004/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	ProductUC  *usecase.ProductUseCase
	DiscountUC *usecase.DiscountUseCase
	PricingUC  *usecase.PricingUseCase
	AuthUC     *auth.AuthUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Pricing (cotización pública para vitrina)
	pricingHandler := NewPricingHandler(deps.PricingUC)
	api.Get("/pricing/quote", pricingHandler.Quote)

	// Catálogo público (lectura)
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	api.Get("/companies", companyHandler.List)
	api.Get("/companies/:id", companyHandler.GetByID)

	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/products", productHandler.List)
	api.Get("/products/:id", productHandler.GetByID)
	api.Get("/products/:id/variants", productHandler.ListVariants)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cotización estricta de checkout: falla cerrado ante errores de lectura
	protected.Post("/pricing/checkout-quote", pricingHandler.CheckoutQuote)

	// Companies (escritura, solo back-office)
	protected.Post("/companies", RequireRole(entity.RoleAdmin), companyHandler.Create)

	// Products (escritura, empresa o back-office)
	companyOrAdmin := RequireRole(entity.RoleCompany, entity.RoleAdmin)
	protected.Post("/products", companyOrAdmin, productHandler.Create)
	protected.Put("/products/:id", companyOrAdmin, productHandler.Update)
	protected.Post("/products/:id/variants", companyOrAdmin, productHandler.CreateVariant)

	// Discounts (protegido, empresa o back-office)
	discountHandler := NewDiscountHandler(deps.DiscountUC)
	discounts := protected.Group("/discounts", companyOrAdmin)
	discounts.Post("/", discountHandler.Create)
	discounts.Get("/", discountHandler.List)
	discounts.Get("/:id", discountHandler.GetByID)
	discounts.Put("/:id", discountHandler.Update)
	discounts.Post("/:id/disable", discountHandler.Disable)
	discounts.Delete("/:id", discountHandler.Delete)
}
