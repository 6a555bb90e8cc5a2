// file: internals/cli/cmd_serve.go
package cli

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	helper "careconnect_backend/internals/helpers"
	"careconnect_backend/internals/middlewares"
	routes "careconnect_backend/internals/route"
	"careconnect_backend/internals/scheduler"
)

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd)
		},
	}
}

func newApp(rt *runtime) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               rt.cfg.AppName,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ErrorHandler:          helper.ErrorHandler,
		ReadTimeout:           15 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           90 * time.Second,
	})

	middlewares.SetupMiddlewares(app, rt.cfg, rt.log)
	routes.SetupRoutes(app, rt.db, rt.log)
	return app
}

func runServe(cmd *cobra.Command) error {
	rt, err := bootstrap()
	if err != nil {
		return err
	}
	defer rt.close()

	if err := rt.migrateIfEnabled(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var keepAlive *scheduler.KeepAlive
	if rt.cfg.KeepAlive.Enabled() {
		if keepAlive, err = scheduler.NewKeepAlive(rt.cfg.KeepAlive, rt.log); err != nil {
			return err
		}
		keepAlive.Start()
	}

	app := newApp(rt)
	errCh := make(chan error, 1)
	go func() {
		rt.log.Info("listening", zap.String("addr", "0.0.0.0:"+rt.cfg.Port))
		errCh <- app.Listen("0.0.0.0:" + rt.cfg.Port)
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	case <-ctx.Done():
		rt.log.Info("shutting down")
	}

	// graceful shutdown + tutup pool DB (deferred)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if keepAlive != nil {
		keepAlive.Stop(shutdownCtx)
	}
	return app.ShutdownWithContext(shutdownCtx)
}
