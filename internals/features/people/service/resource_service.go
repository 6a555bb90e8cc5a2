// file: internals/features/people/service/resource_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	database "careconnect_backend/internals/databases"
	"careconnect_backend/internals/features/people/dto"
	"careconnect_backend/internals/features/people/model"
)

type ResourceService struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewResourceService(db *gorm.DB, v *validator.Validate) *ResourceService {
	if v == nil {
		v = NewValidator()
	}
	return &ResourceService{DB: db, Validate: v}
}

func findResource(tx *gorm.DB, id uint) (model.ResourceModel, error) {
	var m model.ResourceModel
	err := tx.Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m, ErrResourceNotFound
	}
	if err != nil {
		return m, fmt.Errorf("get resource %d: %w", id, err)
	}
	return m, nil
}

// ListResourcesForPerson does not check that the person exists; an unknown
// id simply has no resources.
func (s *ResourceService) ListResourcesForPerson(ctx context.Context, personID uint) ([]dto.ResourceResponse, error) {
	var rows []model.ResourceModel
	if err := s.DB.WithContext(ctx).
		Where("person_id = ?", personID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list resources of person %d: %w", personID, err)
	}

	out := make([]dto.ResourceResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToResourceResponse(m))
	}
	return out, nil
}

func (s *ResourceService) CreateResource(ctx context.Context, personID uint, in dto.ResourceInput) (*dto.ResourceResponse, error) {
	var out dto.ResourceResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := personExists(tx, personID); err != nil {
			return err
		}

		in.Normalize()
		if err := validate(s.Validate, &in); err != nil {
			return err
		}

		m := in.ToModel(personID)
		if err := tx.Create(&m).Error; err != nil {
			if database.IsForeignKeyViolation(err) {
				return ErrPersonNotFound
			}
			return fmt.Errorf("create resource: %w", err)
		}
		out = dto.ToResourceResponse(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateResource replaces name and description; person_id is never touched.
func (s *ResourceService) UpdateResource(ctx context.Context, id uint, in dto.ResourceInput) (*dto.ResourceResponse, error) {
	var out dto.ResourceResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findResource(tx, id); err != nil {
			return err
		}

		in.Normalize()
		if err := validate(s.Validate, &in); err != nil {
			return err
		}
		if err := tx.Model(&model.ResourceModel{}).Where("id = ?", id).Updates(in.Columns()).Error; err != nil {
			return fmt.Errorf("update resource %d: %w", id, err)
		}

		m, err := findResource(tx, id)
		if err != nil {
			return err
		}
		out = dto.ToResourceResponse(m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *ResourceService) DeleteResource(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findResource(tx, id); err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&model.ResourceModel{}).Error; err != nil {
			return fmt.Errorf("delete resource %d: %w", id, err)
		}
		return nil
	})
}
