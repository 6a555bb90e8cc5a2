package persons

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"careconnect_backend/internals/features/people/dto"
	"careconnect_backend/internals/features/people/model"
	"careconnect_backend/internals/features/people/service"
)

type PersonSeed struct {
	dto.PersonInput
	Resources []dto.ResourceInput `json:"resources"`
}

type Result struct {
	Persons   int
	Resources int
	Skipped   int
}

// SeedPersonsFromJSON creates every person in the file through the services,
// so seeded rows pass the same validation as API writes. A person whose
// name, age and disability type already exist is skipped.
func SeedPersonsFromJSON(ctx context.Context, db *gorm.DB, filePath string, log *zap.Logger) (Result, error) {
	var res Result
	log.Info("reading seed file", zap.String("file", filePath))

	content, err := os.ReadFile(filePath)
	if err != nil {
		return res, fmt.Errorf("read seed file: %w", err)
	}

	var data []PersonSeed
	if err := json.Unmarshal(content, &data); err != nil {
		return res, fmt.Errorf("decode seed file: %w", err)
	}

	v := service.NewValidator()
	persons := service.NewPersonService(db, v)
	resources := service.NewResourceService(db, v)

	for i, item := range data {
		var n int64
		age := 0
		if item.Age != nil {
			age = *item.Age
		}
		if err := db.WithContext(ctx).Model(&model.PersonModel{}).
			Where("name = ? AND age = ? AND disability_type = ?", item.Name, age, item.DisabilityType).
			Count(&n).Error; err != nil {
			return res, fmt.Errorf("check seed %d: %w", i, err)
		}
		if n > 0 {
			log.Info("person already exists, skipping", zap.String("name", item.Name))
			res.Skipped++
			continue
		}

		p, err := persons.CreatePerson(ctx, item.PersonInput)
		if err != nil {
			return res, fmt.Errorf("seed person %d (%s): %w", i, item.Name, err)
		}
		res.Persons++

		for _, r := range item.Resources {
			if _, err := resources.CreateResource(ctx, p.ID, r); err != nil {
				return res, fmt.Errorf("seed resource %q of %s: %w", r.Name, item.Name, err)
			}
			res.Resources++
		}
		log.Info("person seeded", zap.Uint("person_id", p.ID), zap.Int("resources", len(item.Resources)))
	}
	return res, nil
}
