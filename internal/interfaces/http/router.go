package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wb-dev/mayoreo-api/internal/application/auth"
	"github.com/wb-dev/mayoreo-api/internal/application/credit"
	"github.com/wb-dev/mayoreo-api/internal/application/usecase"
	"github.com/wb-dev/mayoreo-api/internal/application/wholesale"
	"github.com/wb-dev/mayoreo-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CompanyUC  *usecase.CompanyUseCase
	CustomerUC *credit.CustomerUseCase
	OrderUC    *wholesale.UseCase
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

	// Companies (público por ahora; se puede proteger con AuthMiddleware(deps.JWTSecret))
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Customers y perfil de crédito (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Get("/:id/credit", customerHandler.GetCreditProfile)
	// Solo finanzas modifica aprobación y límite de crédito; el caso de uso no
	// valida permisos, el control de acceso vive aquí.
	customers.Patch("/:id/credit", RequireGroup(entity.GroupFinanzas), customerHandler.UpdateCredit)

	// Orders y flujo de aprobación financiera (protegido)
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders.Get("/wholesale-defaults", orderHandler.WholesaleDefaults)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Patch("/:id", orderHandler.Update)
	orders.Post("/:id/confirm", orderHandler.Confirm)
	orders.Post("/:id/cancel", orderHandler.Cancel)

	// Botones del flujo financiero. "Recibido" lo marca también el equipo de
	// mayoreo (recepción del comprobante); el resto es exclusivo de finanzas.
	orders.Post("/:id/received", RequireGroup(entity.GroupFinanzas, entity.GroupVentasMayoreo), orderHandler.SetToReceived)
	orders.Post("/:id/validation", RequireGroup(entity.GroupFinanzas), orderHandler.SetToValidation)
	orders.Post("/:id/partially-collected", RequireGroup(entity.GroupFinanzas), orderHandler.SetToPartiallyCollected)
	orders.Post("/:id/collected", RequireGroup(entity.GroupFinanzas), orderHandler.SetToCollected)
	orders.Post("/:id/rejected", RequireGroup(entity.GroupFinanzas), orderHandler.SetToRejected)
}
