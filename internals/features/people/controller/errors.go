// file: internals/features/people/controller/errors.go
package controller

import (
	"context"
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"careconnect_backend/internals/features/people/service"
	helper "careconnect_backend/internals/helpers"
	"careconnect_backend/internals/helpers/jsonlist"
	"careconnect_backend/internals/middlewares"
)

// ambil context standar (kalau Fiber mendukung UserContext)
func reqCtx(c *fiber.Ctx) context.Context {
	if uc := c.UserContext(); uc != nil {
		return uc
	}
	return context.Background()
}

type paramError struct{ name string }

func (e *paramError) Error() string { return e.name + " must be an integer" }

// parseID reads a numeric path id that fits in uint; notFound is returned for id 0.
func parseID(c *fiber.Ctx, name string, notFound error) (uint, error) {
	n, err := strconv.ParseUint(c.Params(name), 10, strconv.IntSize)
	if err != nil {
		return 0, &paramError{name: name}
	}
	if n == 0 {
		return 0, notFound
	}
	return uint(n), nil
}

func badBody(c *fiber.Ctx) error {
	return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
}

// renderError maps service errors onto the JSON error envelope.
func renderError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var (
		ve *service.ValidationError
		pe *paramError
	)
	switch {
	case errors.As(err, &pe):
		return helper.JsonValidationError(c, map[string][]string{pe.name: {"must be an integer"}})
	case errors.As(err, &ve):
		fields := make(map[string][]string, len(ve.Fields))
		for k, v := range ve.Fields {
			fields[k] = []string{v}
		}
		return helper.JsonValidationError(c, fields)
	case errors.Is(err, service.ErrPersonNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Person not found")
	case errors.Is(err, service.ErrResourceNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Resource not found")
	case errors.Is(err, service.ErrReferentialIntegrity):
		return helper.JsonError(c, fiber.StatusConflict, "Operation would break a person/resource link")
	case errors.Is(err, context.DeadlineExceeded):
		log.Warn("request timed out", zap.String("request_id", middlewares.RequestID(c)), zap.Error(err))
		return helper.JsonError(c, fiber.StatusServiceUnavailable, "Request timed out")
	case errors.Is(err, jsonlist.ErrDataCorruption):
		log.Error("stored data is corrupt", zap.String("request_id", middlewares.RequestID(c)), zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "Stored data is corrupt")
	default:
		log.Error("request failed", zap.String("request_id", middlewares.RequestID(c)), zap.Error(err))
		return helper.JsonError(c, fiber.StatusInternalServerError, "")
	}
}
