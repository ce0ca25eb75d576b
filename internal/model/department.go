package model

import "time"

// DepartmentRecord is the persisted form of a catalog department.
type DepartmentRecord struct {
	Code       string    `gorm:"primaryKey;size:32"`
	Chair      string    `gorm:"size:256;not null"`
	MajorCount int       `gorm:"not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`

	// Associations
	Courses []CourseRecord `gorm:"foreignKey:DeptCode;references:Code;constraint:OnDelete:CASCADE"`
}

// TableName pins the table name independent of the struct name.
func (DepartmentRecord) TableName() string { return "departments" }
