package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/gestor-irrigacion/internal/application/auth"
	"github.com/jhoicas/gestor-irrigacion/internal/application/purchasing"
	"github.com/jhoicas/gestor-irrigacion/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ThresholdUC   *purchasing.ThresholdUseCase
	SupplierUC    *purchasing.SupplierUseCase
	CreateOrderUC *purchasing.CreatePurchaseOrderUseCase
	DraftUC       *purchasing.DraftUseCase
	OrderQueryUC  *purchasing.OrderQueryUseCase
	SummaryUC     *purchasing.SummaryUseCase
	DocumentUC    *purchasing.DocumentUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	authMW := AuthMiddleware(deps.JWTSecret)
	adminOnly := RequireRole(entity.RoleAdmin)
	canPurchase := RequireRole(entity.RoleAdmin, entity.RoleCompras)

	// Auth: login público, registro solo admin
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authMW, adminOnly, authHandler.Register)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", authMW)

	// Topes de contratación
	thresholds := protected.Group("/thresholds")
	thresholdHandler := NewThresholdHandler(deps.ThresholdUC)
	thresholds.Get("/", thresholdHandler.List)
	thresholds.Put("/:id", adminOnly, thresholdHandler.Update)

	// Proveedores
	suppliers := protected.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Post("/", canPurchase, supplierHandler.Create)
	suppliers.Get("/:id", supplierHandler.GetByID)

	// Órdenes de Compra (rutas fijas antes de /:id)
	orders := protected.Group("/purchase-orders")
	orderHandler := NewPurchaseOrderHandler(deps.CreateOrderUC, deps.DraftUC, deps.OrderQueryUC, deps.SummaryUC, deps.DocumentUC)
	orders.Post("/draft", orderHandler.Draft)
	orders.Get("/summary", orderHandler.Summary)
	orders.Post("/", canPurchase, orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/document", orderHandler.Document)
}
