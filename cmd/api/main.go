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

	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/auth"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/navigation"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/application/usecase"
	infracache "github.com/Guimi21/Camaronera-SG-sub001/internal/infrastructure/cache"
	infrapdf "github.com/Guimi21/Camaronera-SG-sub001/internal/infrastructure/pdf"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/infrastructure/postgres"
	infraqueue "github.com/Guimi21/Camaronera-SG-sub001/internal/infrastructure/queue"
	"github.com/Guimi21/Camaronera-SG-sub001/internal/infrastructure/storage"
	httpRouter "github.com/Guimi21/Camaronera-SG-sub001/internal/interfaces/http"
	"github.com/Guimi21/Camaronera-SG-sub001/pkg/config"
	"github.com/Guimi21/Camaronera-SG-sub001/pkg/logger"
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

	piscinaRepo := postgres.NewPiscinaRepository(pool)
	cicloRepo := postgres.NewCicloRepository(pool)
	muestraRepo := postgres.NewMuestraRepository(pool)
	consumoRepo := postgres.NewConsumoAlimentoRepository(pool)
	alimentoRepo := postgres.NewAlimentoRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	perfilRepo := postgres.NewPerfilRepository(pool)
	grupoRepo := postgres.NewGrupoEmpresarialRepository(pool)
	companiaRepo := postgres.NewCompaniaRepository(pool)
	menuRepo := postgres.NewMenuRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Cache de menús: opcional, degrada a consultar siempre la base.
	var menuCache auth.MenuCache
	if client := infracache.NewRedisClient(cfg.Redis, log); client != nil {
		menuCache = infracache.NewMenuCache(client, cfg.Redis.TTLSecs, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("cache de menús habilitado")
	}

	// Publicador de eventos: opcional, los cierres de ciclo se publican
	// best-effort cuando hay broker configurado.
	var publisher usecase.EventPublisher
	if cfg.AMQP.URL != "" {
		publisher = infraqueue.NewPublisher(cfg.AMQP.URL)
		log.Info().Msg("publicador de eventos habilitado")
	}

	archivoStore, err := storage.NewLocalStore(cfg.Upload.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento de documentos")
	}

	sessionUC := auth.NewSessionUseCase(
		usuarioRepo, perfilRepo, companiaRepo, grupoRepo, menuRepo,
		menuCache, navigation.NewIconRegistry(),
		auth.JWTConfig{
			Secret:     cfg.JWT.Secret,
			ExpMinutes: cfg.JWT.Expiration,
			Issuer:     cfg.JWT.Issuer,
		},
	)
	piscinaUC := usecase.NewPiscinaUseCase(piscinaRepo)
	cicloUC := usecase.NewCicloUseCase(
		cicloRepo, piscinaRepo, muestraRepo,
		archivoStore, publisher, infrapdf.NewReporteCosechaGenerator(), log,
	)
	muestraUC := usecase.NewMuestraUseCase(txRunner, muestraRepo, consumoRepo, cicloRepo, alimentoRepo)
	alimentoUC := usecase.NewAlimentoUseCase(alimentoRepo)
	companiaUC := usecase.NewCompaniaUseCase(companiaRepo, usuarioRepo, grupoRepo)

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
		Title:    "Camaronera SG API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SessionUC:  sessionUC,
		PiscinaUC:  piscinaUC,
		CicloUC:    cicloUC,
		MuestraUC:  muestraUC,
		AlimentoUC: alimentoUC,
		CompaniaUC: companiaUC,
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
