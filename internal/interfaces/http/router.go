package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sathyaAB/DairyX/internal/application/ledger"
	"github.com/sathyaAB/DairyX/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	TruckUC     *usecase.TruckUseCase
	ShopUC      *usecase.ShopUseCase
	UserUC      *usecase.UserUseCase
	DeliveryUC  *ledger.DeliveryUseCase
	TruckLoadUC *ledger.TruckLoadUseCase
	SaleUC      *ledger.SaleUseCase
	PaymentUC   *ledger.PaymentUseCase
	AllowanceUC *ledger.AllowanceUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Trucks
	trucks := api.Group("/trucks")
	truckHandler := NewTruckHandler(deps.TruckUC)
	trucks.Post("/", truckHandler.Create)
	trucks.Get("/", truckHandler.List)
	trucks.Put("/max-allowance", truckHandler.UpdateMaxAllowance)
	trucks.Get("/:id", truckHandler.GetByID)

	// Shops
	shops := api.Group("/shops")
	shopHandler := NewShopHandler(deps.ShopUC)
	shops.Post("/", shopHandler.Create)
	shops.Get("/", shopHandler.List)
	shops.Get("/:id", shopHandler.GetByID)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)

	// Deliveries (entradas a bodega)
	deliveries := api.Group("/delivery")
	deliveryHandler := NewDeliveryHandler(deps.DeliveryUC)
	deliveries.Post("/", deliveryHandler.Create)
	deliveries.Get("/history", deliveryHandler.History)
	deliveries.Get("/:id/products", deliveryHandler.Lines)

	// Truck loads (salidas de bodega)
	loads := api.Group("/truck-load")
	truckLoadHandler := NewTruckLoadHandler(deps.TruckLoadUC)
	loads.Post("/", truckLoadHandler.Create)
	loads.Get("/history", truckLoadHandler.History)
	loads.Get("/:id", truckLoadHandler.GetByID)
	loads.Get("/:id/products", truckLoadHandler.Lines)

	// Sales (cuentas por cobrar)
	sales := api.Group("/sales")
	saleHandler := NewSaleHandler(deps.SaleUC)
	sales.Post("/", saleHandler.Create)
	sales.Get("/", saleHandler.ListByShop)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/products", saleHandler.Lines)

	// Payments
	payments := api.Group("/payment")
	paymentHandler := NewPaymentHandler(deps.PaymentUC)
	payments.Post("/", paymentHandler.Create)
	payments.Get("/", paymentHandler.ListBySale)

	// Allowances (viáticos)
	allowances := api.Group("/allowance")
	allowanceHandler := NewAllowanceHandler(deps.AllowanceUC)
	allowances.Post("/", allowanceHandler.Create)
	allowances.Get("/", allowanceHandler.List)
	allowances.Post("/truck", allowanceHandler.CreateTruckAllowance)
	allowances.Get("/:id/trucks", allowanceHandler.ListTruckAllowances)
}
