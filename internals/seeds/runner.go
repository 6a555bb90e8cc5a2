package seeds

import (
	"context"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"careconnect_backend/internals/seeds/persons"
)

const DefaultPersonsFile = "internals/seeds/persons/data_persons.json"

func RunAllSeeds(ctx context.Context, db *gorm.DB, file string, log *zap.Logger) error {
	if file == "" {
		file = DefaultPersonsFile
	}

	//* Persons (+ resources)
	res, err := persons.SeedPersonsFromJSON(ctx, db, file, log)
	if err != nil {
		return err
	}
	log.Info("seeding finished",
		zap.Int("persons", res.Persons),
		zap.Int("resources", res.Resources),
		zap.Int("skipped", res.Skipped),
	)
	return nil
}
