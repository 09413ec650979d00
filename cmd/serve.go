package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"cs2-localizer/core/loader"
	"cs2-localizer/core/logger"
	"cs2-localizer/core/middleware/auth"
	"cs2-localizer/core/middleware/rayid"
	"cs2-localizer/core/server"
	_ "cs2-localizer/docs/swagger"
	"cs2-localizer/feature/translate"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// @title CS2 Localizer API
// @version 1.0
// @description Translates English CS2 item exports into Chinese using the ByMykel CSGO-API zh-CN datasets.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the translation API server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(bootstrapOptions{})
		if err != nil {
			return err
		}
		logg := a.logger
		defer logg.Sync()

		mgr := loader.NewManager(logg)
		mgr.Register(translate.NewFeature(a.service()))

		app, err := newServer(a.cfg.Server, logg, mgr)
		if err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("address", a.cfg.Server.Address()))
			errCh <- app.Listen(a.cfg.Server.Address())
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-c:
			logg.Info("Shutting down server...")
			return app.Shutdown()
		}
	},
}

// newServer builds the fiber app: ray id, request log, public API docs, then the API key guard
// in front of every feature route.
func newServer(cfg server.Config, logg *zap.Logger, mgr *loader.Manager) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             cfg.BodyLimit(),
	})

	// RayID first so every later log line carries it
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: cfg.ApiKey}))
	if cfg.ApiKey == "" {
		logg.Warn("SERVER_API_KEY is empty, the API is unprotected")
	}

	if err := mgr.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
