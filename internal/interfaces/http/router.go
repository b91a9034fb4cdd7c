package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stock-api/internal/application/inventory"
	"github.com/jhoicas/stock-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Inventory *inventory.StockUseCase
	Catalog   *usecase.StockCatalogUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	stockHandler := NewStockHandler(deps.Catalog)
	productHandler := NewProductHandler(deps.Inventory)

	// Products
	product := app.Group("/product")
	product.Put("/sell/:serial", productHandler.Sell)
	product.Put("/reserve/:serial", productHandler.Reserve)
	product.Put("/unreserve/:serial", productHandler.Unreserve)
	product.Get("/:serial", productHandler.GetBySerial)

	// Stocks
	app.Get("/stocks/report", stockHandler.Report)
	app.Get("/stocks", stockHandler.List)

	stock := app.Group("/stock")
	stock.Put("/", stockHandler.Create)
	stock.Get("/:idstock/products", productHandler.ListByStock)
	stock.Post("/:idstock/products", productHandler.AddMany)
	stock.Put("/:idstock/:serial", productHandler.AddToStock)
	stock.Put("/:idStock", stockHandler.Update)
	stock.Get("/:idStock", stockHandler.GetByID)
}
