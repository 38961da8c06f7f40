package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Planta-api/internal/application/auth"
	"github.com/jhoicas/Planta-api/internal/application/inventory"
	"github.com/jhoicas/Planta-api/internal/application/orders"
	"github.com/jhoicas/Planta-api/internal/application/production"
	"github.com/jhoicas/Planta-api/internal/application/scrap"
	"github.com/jhoicas/Planta-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	MovementUC *inventory.MovementUseCase
	MachineUC  *production.MachineUseCase
	TallyUC    *production.TallyUseCase
	ScrapUC    *scrap.UseCase
	OrderUC    *orders.UseCase
	CommentUC  *usecase.ShiftCommentUseCase
	ReportUC   *usecase.ProductionReportUseCase
	AuthUC     *auth.UseCase
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

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products + movimientos de inventario (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.MovementUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/:id/movements", inventoryHandler.RegisterMovement)
	products.Get("/:id/movements", inventoryHandler.ListMovements)

	protected.Get("/movements", inventoryHandler.ListAllMovements)

	// Machines + tally de producción (protegido)
	machines := protected.Group("/machines")
	machineHandler := NewMachineHandler(deps.MachineUC, deps.TallyUC)
	machines.Post("/", machineHandler.Create)
	machines.Get("/", machineHandler.List)
	machines.Get("/:id", machineHandler.GetByID)
	machines.Put("/:id", machineHandler.Update)
	machines.Put("/:id/status", machineHandler.SetStatus)
	machines.Put("/:id/product", machineHandler.AssignProduct)
	machines.Post("/:id/production", machineHandler.AddProduction)
	machines.Get("/:id/production", machineHandler.GetProduction)

	// Vista de mapa de planta: buckets agregados desde una hora dada
	protected.Get("/production", machineHandler.ListProduction)

	// Scrap (protegido)
	scrapGroup := protected.Group("/scrap")
	scrapHandler := NewScrapHandler(deps.ScrapUC)
	scrapGroup.Post("/", scrapHandler.Record)
	scrapGroup.Get("/", scrapHandler.List)
	scrapGroup.Get("/summary", scrapHandler.Summary)
	scrapGroup.Put("/:id", scrapHandler.Update)
	scrapGroup.Delete("/:id", scrapHandler.Delete)

	// Orders (protegido)
	ordersGroup := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	ordersGroup.Post("/", orderHandler.Create)
	ordersGroup.Get("/", orderHandler.List)
	ordersGroup.Put("/:id/complete", orderHandler.Complete)
	ordersGroup.Delete("/:id", orderHandler.Delete)

	// Comentarios de turno y reportes de producción (protegido)
	reportHandler := NewReportHandler(deps.CommentUC, deps.ReportUC)
	comments := protected.Group("/shift-comments")
	comments.Put("/", reportHandler.UpsertShiftComment)
	comments.Get("/", reportHandler.GetShiftComment)

	reports := protected.Group("/production-reports")
	reports.Post("/", reportHandler.CreateReport)
	reports.Get("/", reportHandler.ListReports)
	reports.Put("/:id", reportHandler.UpdateReport)
	reports.Delete("/:id", reportHandler.DeleteReport)
}
