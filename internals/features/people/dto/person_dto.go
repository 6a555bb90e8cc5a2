// file: internals/features/people/dto/person_dto.go
package dto

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"careconnect_backend/internals/features/people/model"
	"careconnect_backend/internals/helpers/jsonlist"
)

//
// ========== REQUEST ==========
//

// PersonInput is the full field set for create and for full-replacement update.
type PersonInput struct {
	Name                   string   `json:"name" validate:"required,utf8,max=200"`
	Age                    *int     `json:"age" validate:"required,min=0,max=150"`
	Gender                 *string  `json:"gender" validate:"omitempty,utf8,max=50"`
	DisabilityType         string   `json:"disability_type" validate:"required,utf8,max=100"`
	DisabilitySeverity     string   `json:"disability_severity" validate:"required,utf8,max=100"`
	ContactNumber          *string  `json:"contact_number" validate:"omitempty,utf8,max=50"`
	EmergencyContactName   *string  `json:"emergency_contact_name" validate:"omitempty,utf8,max=200"`
	EmergencyContactNumber *string  `json:"emergency_contact_number" validate:"omitempty,utf8,max=50"`
	Address                *string  `json:"address" validate:"omitempty,utf8"`
	MedicalConditions      []string `json:"medical_conditions" validate:"omitempty,dive,utf8"`
}

func (r *PersonInput) Normalize() {
	r.Name = cleanText(r.Name)
	r.DisabilityType = cleanText(r.DisabilityType)
	r.DisabilitySeverity = cleanText(r.DisabilitySeverity)
	r.Gender = cleanOptional(r.Gender)
	r.ContactNumber = cleanOptional(r.ContactNumber)
	r.EmergencyContactName = cleanOptional(r.EmergencyContactName)
	r.EmergencyContactNumber = cleanOptional(r.EmergencyContactNumber)
	r.Address = cleanOptional(r.Address)
}

func (r PersonInput) ToModel() (model.PersonModel, error) {
	mc, err := jsonlist.Encode(r.MedicalConditions)
	if err != nil {
		return model.PersonModel{}, err
	}
	m := model.PersonModel{
		Name:                   r.Name,
		Gender:                 r.Gender,
		DisabilityType:         r.DisabilityType,
		DisabilitySeverity:     r.DisabilitySeverity,
		ContactNumber:          r.ContactNumber,
		EmergencyContactName:   r.EmergencyContactName,
		EmergencyContactNumber: r.EmergencyContactNumber,
		Address:                r.Address,
		MedicalConditions:      mc,
	}
	if r.Age != nil {
		m.Age = *r.Age
	}
	return m, nil
}

// Columns lists every mutable column of persons with its replacement value.
// Absent optional fields map to NULL.
func (r PersonInput) Columns() (map[string]any, error) {
	mc, err := jsonlist.Encode(r.MedicalConditions)
	if err != nil {
		return nil, err
	}
	age := 0
	if r.Age != nil {
		age = *r.Age
	}
	return map[string]any{
		"name":                     r.Name,
		"age":                      age,
		"gender":                   nullable(r.Gender),
		"disability_type":          r.DisabilityType,
		"disability_severity":      r.DisabilitySeverity,
		"contact_number":           nullable(r.ContactNumber),
		"emergency_contact_name":   nullable(r.EmergencyContactName),
		"emergency_contact_number": nullable(r.EmergencyContactNumber),
		"address":                  nullable(r.Address),
		"medical_conditions":       nullable(mc),
	}, nil
}

//
// ========== RESPONSE ==========
//

type PersonResponse struct {
	ID                     uint               `json:"id"`
	Name                   string             `json:"name"`
	Age                    int                `json:"age"`
	Gender                 *string            `json:"gender"`
	DisabilityType         string             `json:"disability_type"`
	DisabilitySeverity     string             `json:"disability_severity"`
	ContactNumber          *string            `json:"contact_number"`
	EmergencyContactName   *string            `json:"emergency_contact_name"`
	EmergencyContactNumber *string            `json:"emergency_contact_number"`
	Address                *string            `json:"address"`
	MedicalConditions      []string           `json:"medical_conditions"`
	Resources              []ResourceResponse `json:"resources"`
}

// ToPersonResponse decodes the stored list column; a corrupt value is an error, not an empty list.
func ToPersonResponse(m model.PersonModel) (PersonResponse, error) {
	mc, err := jsonlist.Decode(m.MedicalConditions)
	if err != nil {
		return PersonResponse{}, fmt.Errorf("person %d medical_conditions: %w", m.ID, err)
	}

	resources := make([]ResourceResponse, 0, len(m.Resources))
	for _, r := range m.Resources {
		resources = append(resources, ToResourceResponse(r))
	}

	return PersonResponse{
		ID:                     m.ID,
		Name:                   m.Name,
		Age:                    m.Age,
		Gender:                 m.Gender,
		DisabilityType:         m.DisabilityType,
		DisabilitySeverity:     m.DisabilitySeverity,
		ContactNumber:          m.ContactNumber,
		EmergencyContactName:   m.EmergencyContactName,
		EmergencyContactNumber: m.EmergencyContactNumber,
		Address:                m.Address,
		MedicalConditions:      jsonlist.OrEmpty(mc),
		Resources:              resources,
	}, nil
}

//
// ========== helpers ==========
//

func cleanText(s string) string {
	s = strings.TrimSpace(s)
	if !utf8.ValidString(s) {
		return s // left as-is for the utf8 rule to reject
	}
	return norm.NFC.String(s)
}

// cleanOptional trims optional text; blank becomes absent.
func cleanOptional(p *string) *string {
	if p == nil {
		return nil
	}
	s := cleanText(*p)
	if s == "" {
		return nil
	}
	return &s
}

func nullable(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
