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

	"github.com/Michaeloduah/BookTree-Backend/internal/application/auth"
	"github.com/Michaeloduah/BookTree-Backend/internal/application/cart"
	"github.com/Michaeloduah/BookTree-Backend/internal/application/catalog"
	"github.com/Michaeloduah/BookTree-Backend/internal/application/order"
	infrapdf "github.com/Michaeloduah/BookTree-Backend/internal/infrastructure/pdf"
	"github.com/Michaeloduah/BookTree-Backend/internal/infrastructure/postgres"
	httpRouter "github.com/Michaeloduah/BookTree-Backend/internal/interfaces/http"
	"github.com/Michaeloduah/BookTree-Backend/pkg/config"
	"github.com/Michaeloduah/BookTree-Backend/pkg/logger"
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

	userRepo := postgres.NewUserRepository(pool)
	cartRepo := postgres.NewCartRepository(pool)
	bookRepo := postgres.NewBookRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	cartUC := cart.NewCartUseCase(cartRepo)
	bookUC := catalog.NewBookUseCase(bookRepo, categoryRepo)
	categoryUC := catalog.NewCategoryUseCase(categoryRepo, bookRepo, txRunner)
	orderUC := order.NewOrderUseCase(txRunner, orderRepo, cartRepo, bookRepo, userRepo)

	// PDF: comprobante del pedido
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := order.NewReceiptUseCase(orderRepo, userRepo, receiptGenerator)

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
		Title:    "BookTree API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CartUC:     cartUC,
		BookUC:     bookUC,
		CategoryUC: categoryUC,
		OrderUC:    orderUC,
		ReceiptUC:  receiptUC,
		Users:      userRepo,
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
