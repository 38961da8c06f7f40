package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Planta-api/internal/application/auth"
	"github.com/jhoicas/Planta-api/internal/application/inventory"
	"github.com/jhoicas/Planta-api/internal/application/orders"
	"github.com/jhoicas/Planta-api/internal/application/production"
	"github.com/jhoicas/Planta-api/internal/application/scrap"
	"github.com/jhoicas/Planta-api/internal/application/usecase"
	"github.com/jhoicas/Planta-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Planta-api/internal/interfaces/http"
	"github.com/jhoicas/Planta-api/pkg/config"
	"github.com/jhoicas/Planta-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	machineRepo := postgres.NewMachineRepository(pool)
	productionRepo := postgres.NewProductionRepository(pool)
	scrapRepo := postgres.NewScrapRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	commentRepo := postgres.NewShiftCommentRepository(pool)
	reportRepo := postgres.NewProductionReportRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	movementUC := inventory.NewMovementUseCase(txRunner, productRepo, movementRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	machineUC := production.NewMachineUseCase(machineRepo, productRepo)
	tallyUC := production.NewTallyUseCase(productionRepo, machineRepo)
	scrapUC := scrap.NewUseCase(scrapRepo, productRepo)
	orderUC := orders.NewUseCase(orderRepo, productRepo)
	commentUC := usecase.NewShiftCommentUseCase(commentRepo)
	reportUC := usecase.NewProductionReportUseCase(reportRepo)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Planta API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		MovementUC: movementUC,
		MachineUC:  machineUC,
		TallyUC:    tallyUC,
		ScrapUC:    scrapUC,
		OrderUC:    orderUC,
		CommentUC:  commentUC,
		ReportUC:   reportUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
