// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	peopleRoute "careconnect_backend/internals/features/people/route"
	"careconnect_backend/internals/features/people/service"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, log *zap.Logger) {
	startTime = time.Now()

	log.Info("setting up base routes")
	BaseRoutes(app, db)

	log.Info("mounting people routes")
	peopleRoute.PeopleRoutes(app, db, service.NewValidator(), log)
}
