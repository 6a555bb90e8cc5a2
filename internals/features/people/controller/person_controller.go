// file: internals/features/people/controller/person_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"careconnect_backend/internals/features/people/dto"
	"careconnect_backend/internals/features/people/export"
	"careconnect_backend/internals/features/people/service"
	helper "careconnect_backend/internals/helpers"
)

/* =======================================================
   CONTROLLER
   ======================================================= */

type PersonController struct {
	Persons *service.PersonService
	Log     *zap.Logger
}

func NewPersonController(persons *service.PersonService, log *zap.Logger) *PersonController {
	if log == nil {
		log = zap.NewNop()
	}
	return &PersonController{Persons: persons, Log: log}
}

/* ============================ LIST ============================ */
// GET /persons
func (ctl *PersonController) List(c *fiber.Ctx) error {
	out, err := ctl.Persons.ListPersons(reqCtx(c))
	if err != nil {
		return renderError(c, ctl.Log, err)
	}
	return helper.JsonOK(c, out)
}

/* ============================ CREATE ============================ */
// POST /persons
func (ctl *PersonController) Create(c *fiber.Ctx) error {
	var req dto.PersonInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	out, err := ctl.Persons.CreatePerson(reqCtx(c), req)
	if err != nil {
		return renderError(c, ctl.Log, err)
	}
	return helper.JsonOK(c, out)
}

/* ============================ DETAIL ============================ */
// GET /persons/:person_id
func (ctl *PersonController) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "person_id", service.ErrPersonNotFound)
	if err != nil {
		return renderError(c, ctl.Log, err)
	}

	out, err := ctl.Persons.GetPerson(reqCtx(c), id)
	if err != nil {
		return renderError(c, ctl.Log, err)
	}
	return helper.JsonOK(c, out)
}

/* ============================ UPDATE ============================ */
// PUT /persons/:person_id (full replacement)
func (ctl *PersonController) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "person_id", service.ErrPersonNotFound)
	if err != nil {
		return renderError(c, ctl.Log, err)
	}

	var req dto.PersonInput
	if err := c.BodyParser(&req); err != nil {
		return badBody(c)
	}

	out, err := ctl.Persons.UpdatePerson(reqCtx(c), id, req)
	if err != nil {
		return renderError(c, ctl.Log, err)
	}
	return helper.JsonOK(c, out)
}

/* ============================ DELETE ============================ */
// DELETE /persons/:person_id
func (ctl *PersonController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "person_id", service.ErrPersonNotFound)
	if err != nil {
		return renderError(c, ctl.Log, err)
	}

	if err := ctl.Persons.DeletePerson(reqCtx(c), id); err != nil {
		return renderError(c, ctl.Log, err)
	}
	ctl.Log.Info("person deleted", zap.Uint("person_id", id))
	return helper.JsonMessage(c, "Person deleted successfully")
}

/* ============================ EXPORT ============================ */
// GET /persons/export
func (ctl *PersonController) Export(c *fiber.Ctx) error {
	persons, err := ctl.Persons.ListPersons(reqCtx(c))
	if err != nil {
		return renderError(c, ctl.Log, err)
	}

	buf, err := export.PersonsWorkbook(persons)
	if err != nil {
		return renderError(c, ctl.Log, err)
	}

	c.Set(fiber.HeaderContentType, export.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="persons.xlsx"`)
	return c.Status(fiber.StatusOK).Send(buf.Bytes())
}
