// file: internals/features/people/service/person_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	database "careconnect_backend/internals/databases"
	"careconnect_backend/internals/features/people/dto"
	"careconnect_backend/internals/features/people/model"
)

type PersonService struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPersonService(db *gorm.DB, v *validator.Validate) *PersonService {
	if v == nil {
		v = NewValidator()
	}
	return &PersonService{DB: db, Validate: v}
}

func resourcesByID(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }

func findPerson(tx *gorm.DB, id uint) (model.PersonModel, error) {
	var m model.PersonModel
	err := tx.Preload("Resources", resourcesByID).Where("id = ?", id).First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return m, ErrPersonNotFound
	}
	if err != nil {
		return m, fmt.Errorf("get person %d: %w", id, err)
	}
	return m, nil
}

func personExists(tx *gorm.DB, id uint) error {
	var n int64
	if err := tx.Model(&model.PersonModel{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return fmt.Errorf("check person %d: %w", id, err)
	}
	if n == 0 {
		return ErrPersonNotFound
	}
	return nil
}

// ListPersons returns every person in id order with resources attached.
func (s *PersonService) ListPersons(ctx context.Context) ([]dto.PersonResponse, error) {
	var rows []model.PersonModel
	if err := s.DB.WithContext(ctx).
		Preload("Resources", resourcesByID).
		Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list persons: %w", err)
	}

	out := make([]dto.PersonResponse, 0, len(rows))
	for _, m := range rows {
		r, err := dto.ToPersonResponse(m)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

func (s *PersonService) CreatePerson(ctx context.Context, in dto.PersonInput) (*dto.PersonResponse, error) {
	in.Normalize()
	if err := validate(s.Validate, &in); err != nil {
		return nil, err
	}
	m, err := in.ToModel()
	if err != nil {
		return nil, fmt.Errorf("encode person: %w", err)
	}

	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return nil, fmt.Errorf("create person: %w", err)
	}

	out, err := dto.ToPersonResponse(m)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *PersonService) GetPerson(ctx context.Context, id uint) (*dto.PersonResponse, error) {
	m, err := findPerson(s.DB.WithContext(ctx), id)
	if err != nil {
		return nil, err
	}
	out, err := dto.ToPersonResponse(m)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdatePerson replaces every mutable column; resources are left alone.
func (s *PersonService) UpdatePerson(ctx context.Context, id uint, in dto.PersonInput) (*dto.PersonResponse, error) {
	var out dto.PersonResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := personExists(tx, id); err != nil {
			return err
		}

		in.Normalize()
		if err := validate(s.Validate, &in); err != nil {
			return err
		}
		cols, err := in.Columns()
		if err != nil {
			return fmt.Errorf("encode person: %w", err)
		}
		if err := tx.Model(&model.PersonModel{}).Where("id = ?", id).Updates(cols).Error; err != nil {
			return fmt.Errorf("update person %d: %w", id, err)
		}

		m, err := findPerson(tx, id)
		if err != nil {
			return err
		}
		out, err = dto.ToPersonResponse(m)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeletePerson removes the person together with every resource it owns.
func (s *PersonService) DeletePerson(ctx context.Context, id uint) error {
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := personExists(tx, id); err != nil {
			return err
		}
		if err := tx.Where("person_id = ?", id).Delete(&model.ResourceModel{}).Error; err != nil {
			return fmt.Errorf("delete resources of person %d: %w", id, err)
		}
		if err := tx.Where("id = ?", id).Delete(&model.PersonModel{}).Error; err != nil {
			if database.IsForeignKeyViolation(err) {
				return fmt.Errorf("delete person %d: %w", id, ErrReferentialIntegrity)
			}
			return fmt.Errorf("delete person %d: %w", id, err)
		}
		return nil
	})
}
