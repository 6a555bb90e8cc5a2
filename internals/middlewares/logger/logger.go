package logger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerMiddleware untuk mencatat semua request
func LoggerMiddleware(log *zap.Logger, requestID func(*fiber.Ctx) string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// let the app error handler write the response before we read the status
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		level := zapcore.InfoLevel
		switch {
		case status >= 500:
			level = zapcore.ErrorLevel
		case status >= 400:
			level = zapcore.WarnLevel
		}

		if ce := log.Check(level, "request"); ce != nil {
			ce.Write(
				zap.String("request_id", requestID(c)),
				zap.String("ip", c.IP()),
				zap.String("method", c.Method()),
				zap.String("path", c.OriginalURL()),
				zap.Int("status", status),
				zap.Duration("latency", time.Since(start)),
			)
		}
		return nil
	}
}
