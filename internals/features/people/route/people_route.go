// file: internals/features/people/route/people_route.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"careconnect_backend/internals/features/people/controller"
	"careconnect_backend/internals/features/people/service"
)

func PeopleRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate, log *zap.Logger) {
	personCtl := controller.NewPersonController(service.NewPersonService(db, v), log)
	resourceCtl := controller.NewResourceController(service.NewResourceService(db, v), log)

	persons := r.Group("/persons")
	persons.Get("/", personCtl.List)
	persons.Post("/", personCtl.Create)
	persons.Get("/export", personCtl.Export) // sebelum /:person_id
	persons.Get("/:person_id", personCtl.Get)
	persons.Put("/:person_id", personCtl.Update)
	persons.Delete("/:person_id", personCtl.Delete)

	persons.Get("/:person_id/resources", resourceCtl.ListForPerson)
	persons.Post("/:person_id/resources", resourceCtl.Create)

	resources := r.Group("/resources")
	resources.Put("/:resource_id", resourceCtl.Update)
	resources.Delete("/:resource_id", resourceCtl.Delete)
}
