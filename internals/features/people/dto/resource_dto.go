// file: internals/features/people/dto/resource_dto.go
package dto

import "careconnect_backend/internals/features/people/model"

type ResourceInput struct {
	Name        string  `json:"name" validate:"required,utf8,max=200"`
	Description *string `json:"description" validate:"omitempty,utf8"`
}

func (r *ResourceInput) Normalize() {
	r.Name = cleanText(r.Name)
	r.Description = cleanOptional(r.Description)
}

func (r ResourceInput) ToModel(personID uint) model.ResourceModel {
	return model.ResourceModel{
		Name:        r.Name,
		Description: r.Description,
		PersonID:    personID,
	}
}

// Columns never includes person_id: a resource stays with its person.
func (r ResourceInput) Columns() map[string]any {
	return map[string]any{
		"name":        r.Name,
		"description": nullable(r.Description),
	}
}

type ResourceResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description" validate:"omitempty,utf8"`
	PersonID    uint    `json:"person_id"`
}

func ToResourceResponse(m model.ResourceModel) ResourceResponse {
	return ResourceResponse{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		PersonID:    m.PersonID,
	}
}
