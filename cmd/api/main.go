package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/crm-eventos/internal/application/auth"
	"github.com/tu-usuario/crm-eventos/internal/application/usecase"
	"github.com/tu-usuario/crm-eventos/internal/infrastructure/postgres"
	"github.com/tu-usuario/crm-eventos/internal/infrastructure/telemetry"
	httpRouter "github.com/tu-usuario/crm-eventos/internal/interfaces/http"
	"github.com/tu-usuario/crm-eventos/pkg/config"
	"github.com/tu-usuario/crm-eventos/pkg/logger"
)

func main() {
	// Sin JWT_SECRET no hay arranque: emitir tokens sin firma sería un fallo
	// de seguridad silencioso.
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
	clientRepo := postgres.NewClientRepository(pool)
	contractRepo := postgres.NewContractRepository(pool)
	eventRepo := postgres.NewEventRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recorder := telemetry.NewRecorder(log)

	authUC := auth.NewUseCase(userRepo, cfg.JWT.Secret, recorder)
	userUC := usecase.NewUserUseCase(userRepo, recorder)
	clientUC := usecase.NewClientUseCase(clientRepo, recorder)
	contractUC := usecase.NewContractUseCase(contractRepo, clientRepo, recorder)
	eventUC := usecase.NewEventUseCase(eventRepo, userRepo, txRunner, recorder)

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
		AuthUC:     authUC,
		UserUC:     userUC,
		ClientUC:   clientUC,
		ContractUC: contractUC,
		EventUC:    eventUC,
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
