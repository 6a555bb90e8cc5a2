// file: internals/features/people/model/resource_model.go
package model

type ResourceModel struct {
	ID          uint    `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string  `gorm:"column:name;not null"`
	Description *string `gorm:"column:description;type:text"`
	PersonID    uint    `gorm:"column:person_id;not null;index"`
}

func (ResourceModel) TableName() string { return "resources" }
