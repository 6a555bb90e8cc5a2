// file: internals/features/people/model/person_model.go
package model

// PersonModel maps the persons table.
// MedicalConditions holds the JSON-encoded list (see helpers/jsonlist); NULL when absent.
type PersonModel struct {
	ID                     uint    `gorm:"column:id;primaryKey;autoIncrement"`
	Name                   string  `gorm:"column:name;not null"`
	Age                    int     `gorm:"column:age;not null"`
	Gender                 *string `gorm:"column:gender"`
	DisabilityType         string  `gorm:"column:disability_type;not null"`
	DisabilitySeverity     string  `gorm:"column:disability_severity;not null"`
	ContactNumber          *string `gorm:"column:contact_number"`
	EmergencyContactName   *string `gorm:"column:emergency_contact_name"`
	EmergencyContactNumber *string `gorm:"column:emergency_contact_number"`
	Address                *string `gorm:"column:address;type:text"`
	MedicalConditions      *string `gorm:"column:medical_conditions;type:text"`

	// Loaded only through an explicit Preload; never written through this field.
	Resources []ResourceModel `gorm:"foreignKey:PersonID;references:ID;constraint:OnDelete:CASCADE"`
}

func (PersonModel) TableName() string { return "persons" }
