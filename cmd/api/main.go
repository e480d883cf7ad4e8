package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/wb-dev/mayoreo-api/internal/application/auth"
	appcredit "github.com/wb-dev/mayoreo-api/internal/application/credit"
	"github.com/wb-dev/mayoreo-api/internal/application/usecase"
	"github.com/wb-dev/mayoreo-api/internal/application/wholesale"
	"github.com/wb-dev/mayoreo-api/internal/infrastructure/chatter"
	"github.com/wb-dev/mayoreo-api/internal/infrastructure/postgres"
	cronSched "github.com/wb-dev/mayoreo-api/internal/interfaces/cron"
	httpRouter "github.com/wb-dev/mayoreo-api/internal/interfaces/http"
	"github.com/wb-dev/mayoreo-api/pkg/config"
	"github.com/wb-dev/mayoreo-api/pkg/logger"
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	teamRepo := postgres.NewTeamRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	messageRepo := postgres.NewMessageRepository(pool)
	followerRepo := postgres.NewFollowerRepository(pool)

	chatterSvc := chatter.NewService(messageRepo, followerRepo, log)

	companyUC := usecase.NewCompanyUseCase(companyRepo)
	customerUC := appcredit.NewCustomerUseCase(customerRepo, companyRepo)
	orderUC := wholesale.NewUseCase(
		orderRepo, customerRepo, companyRepo, activityRepo,
		userRepo, teamRepo, warehouseRepo, chatterSvc,
		wholesale.Config{
			ReviewDueHours:  cfg.Wholesale.ReviewDueHours,
			AutoCancelHours: cfg.Wholesale.AutoCancelHours,
			TeamName:        cfg.Wholesale.TeamName,
			WarehouseName:   cfg.Wholesale.WarehouseName,
		},
		log,
	)
	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
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

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CompanyUC:  companyUC,
		CustomerUC: customerUC,
		OrderUC:    orderUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	// Barridos periódicos: cancelación automática y recordatorios de pago.
	scheduler := cronSched.NewScheduler(orderUC, cfg.Wholesale, log)
	if err := scheduler.Start(); err != nil {
		log.Fatal().Err(err).Msg("agendar barridos periódicos")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
