// file: internals/features/people/controller/resource_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"careconnect_backend/internals/features/people/dto"
	"careconnect_backend/internals/features/people/service"
	helper "careconnect_backend/internals/helpers"
)

type ResourceController struct {
	Resources *service.ResourceService
	Log       *zap.Logger
}

func NewResourceController(resources *service.ResourceService, log *zap.Logger) *ResourceController {
	if log == nil {
		log = zap.NewNop()
	}
	return &ResourceController{Resources: resources, Log: log}
}

// GET /persons/:person_id/resources
func (ctl *ResourceController) ListForPerson(c *fiber.Ctx) error {
	personID, err := parseID(c, "person_id", nil)
	if err != nil {
		return renderError(c, ctl.Log, err)
	}

	out, err := ctl.Resources.ListResourcesForPerson(reqCtx(c), personID)
	if err != nil {
		return renderError(c, ctl.Log, err)
	}
	return helper.JsonOK(c, out)
}

// POST /persons/:person_id/resources
func (ctl *ResourceController) Create(c *fiber.Ctx) error {
	personID, err := parseID(c, "person_id", service.ErrPersonNotFound)
	if err != nil {
		return renderError(c, ctl.Log, err)
	}

	var req dto.ResourceInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	out, err := ctl.Resources.CreateResource(reqCtx(c), personID, req)
	if err != nil {
		return renderError(c, ctl.Log, err)
	}
	return helper.JsonOK(c, out)
}

// PUT /resources/:resource_id
func (ctl *ResourceController) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "resource_id", service.ErrResourceNotFound)
	if err != nil {
		return renderError(c, ctl.Log, err)
	}

	var req dto.ResourceInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	out, err := ctl.Resources.UpdateResource(reqCtx(c), id, req)
	if err != nil {
		return renderError(c, ctl.Log, err)
	}
	return helper.JsonOK(c, out)
}

// DELETE /resources/:resource_id
func (ctl *ResourceController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "resource_id", service.ErrResourceNotFound)
	if err != nil {
		return renderError(c, ctl.Log, err)
	}

	if err := ctl.Resources.DeleteResource(reqCtx(c), id); err != nil {
		return renderError(c, ctl.Log, err)
	}
	ctl.Log.Info("resource deleted", zap.Uint("resource_id", id))
	return helper.JsonMessage(c, "Resource deleted successfully")
}
