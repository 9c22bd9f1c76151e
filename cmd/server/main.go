// server hosts chess games over HTTP with validated moves.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/apex/log"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/controller"
	"github.com/lgbarn/chessrules-go/internal/logging"
	"github.com/lgbarn/chessrules-go/internal/service"
)

var (
	addr      = flag.String("addr", ":8080", "Listen address")
	origins   = flag.String("origins", "*", "Allowed CORS origins")
	cacheSize = flag.Int("cache", 4096, "Legal-move cache capacity (0 = unlimited)")
	logLevel  = flag.String("loglevel", "info", "Log level: debug, info, warn, error")
	logFormat = flag.String("logformat", "text", "Log format: text, json, discard")
	quiet     = flag.Bool("quiet", false, "Suppress rule diagnostics")
)

func main() {
	flag.Parse()

	cfg, err := config.NewConfigBuilder().
		WithAddr(*addr).
		WithCacheSize(*cacheSize).
		WithLogLevel(*logLevel).
		WithLogFormat(logging.Format(*logFormat)).
		WithQuiet(*quiet).
		Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger, err := logging.New(cfg.Log.Options())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	app := newApp(cfg, logger, *origins)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		logger.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			logger.WithError(err).Error("shutdown failed")
		}
	}()

	logger.WithField("addr", cfg.Server.Addr).Info("listening")
	if err := app.Listen(cfg.Server.Addr); err != nil {
		logger.WithError(err).Fatal("server stopped")
	}
}

// newApp wires services, controllers and middleware.
func newApp(cfg *config.Config, logger log.Interface, allowOrigins string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "chessrules",
		ErrorHandler:          controller.ErrorHandler,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
	}))
	app.Use(controller.RequestLogger(logger))

	gameManager := service.NewGameManager(logger, cfg.Engine.Quiet)
	gameService := service.NewGameService(gameManager, cfg.Engine.CacheSize)
	gameController := controller.NewGameController(gameService, logger)

	api := app.Group("/api")
	gameController.Register(api)
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "games": len(gameManager.ListGames())})
	})

	return app
}
