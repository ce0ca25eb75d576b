package model

import "time"

// CourseRecord is the persisted form of a single course offering.
// A course is keyed by its department and its code within that department.
type CourseRecord struct {
	DeptCode   string `gorm:"primaryKey;size:32"`
	Code       string `gorm:"primaryKey;size:32"`
	Instructor string `gorm:"size:256;not null"`
	Location   string `gorm:"size:256;not null"`
	TimeSlot   string `gorm:"size:128;not null"`
	Capacity   int    `gorm:"not null"`
	Enrolled   int    `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (CourseRecord) TableName() string { return "courses" }
