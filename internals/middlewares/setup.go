package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"go.uber.org/zap"

	"careconnect_backend/internals/configs"
	"careconnect_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the global chain in the order requests see it.
func SetupMiddlewares(app *fiber.App, cfg configs.Config, log *zap.Logger) {
	app.Use(RequestIDMiddleware())
	app.Use(logger.LoggerMiddleware(log, RequestID))
	app.Use(RecoveryMiddleware(log))
	app.Use(CorsMiddleware(cfg.CORSOrigins))
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // gzip
	app.Use(etag.New())                                                  // 304 caching
	app.Use(GlobalRateLimiter(cfg.RateLimitMax))
	app.Use(TimeoutMiddleware(cfg.RequestTimeout))
}
