package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sathyaAB/DairyX/internal/application/ledger"
	"github.com/sathyaAB/DairyX/internal/application/usecase"
	"github.com/sathyaAB/DairyX/internal/infrastructure/postgres"
	httpRouter "github.com/sathyaAB/DairyX/internal/interfaces/http"
	"github.com/sathyaAB/DairyX/pkg/config"
	"github.com/sathyaAB/DairyX/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
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
	truckRepo := postgres.NewTruckRepository(pool)
	shopRepo := postgres.NewShopRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	truckLoadRepo := postgres.NewTruckLoadRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	allowanceRepo := postgres.NewAllowanceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	truckUC := usecase.NewTruckUseCase(truckRepo)
	shopUC := usecase.NewShopUseCase(shopRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	deliveryUC := ledger.NewDeliveryUseCase(txRunner, deliveryRepo, productRepo)
	truckLoadUC := ledger.NewTruckLoadUseCase(txRunner, truckLoadRepo, productRepo)
	saleUC := ledger.NewSaleUseCase(txRunner, saleRepo)
	paymentUC := ledger.NewPaymentUseCase(txRunner, paymentRepo)
	allowanceUC := ledger.NewAllowanceUseCase(txRunner, allowanceRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		TruckUC:     truckUC,
		ShopUC:      shopUC,
		UserUC:      userUC,
		DeliveryUC:  deliveryUC,
		TruckLoadUC: truckLoadUC,
		SaleUC:      saleUC,
		PaymentUC:   paymentUC,
		AllowanceUC: allowanceUC,
	})

	httpLog := log.Component("http")
	go func() {
		httpLog.Info().Str("addr", cfg.HTTP.Addr()).Msg("escuchando")
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			httpLog.Error().Err(err).Msg("servidor HTTP finalizado")
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
