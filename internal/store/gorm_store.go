package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"course-records-backend/internal/catalog"
	"course-records-backend/internal/model"
)

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// Load reads every department with its courses.
func (s *gormStore) Load(ctx context.Context) (*catalog.Database, error) {
	var records []model.DepartmentRecord
	if err := s.db.WithContext(ctx).Preload("Courses").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load departments: %w", err)
	}

	out := catalog.NewDatabase()
	for _, rec := range records {
		courses := make(map[string]*catalog.Course, len(rec.Courses))
		for _, cr := range rec.Courses {
			course := catalog.NewCourse(cr.Instructor, cr.Location, cr.TimeSlot, cr.Capacity)
			course.SetEnrolledCount(cr.Enrolled)
			courses[cr.Code] = course
		}
		out.AddDepartment(catalog.NewDepartment(rec.Code, courses, rec.Chair, rec.MajorCount))
	}
	return out, nil
}

// Save replaces the stored snapshot inside one transaction.
func (s *gormStore) Save(ctx context.Context, db *catalog.Database) error {
	departments, courses := toRecords(db)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.CourseRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear courses: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&model.DepartmentRecord{}).Error; err != nil {
			return fmt.Errorf("failed to clear departments: %w", err)
		}

		if len(departments) > 0 {
			if err := tx.Omit("Courses").Create(&departments).Error; err != nil {
				return fmt.Errorf("failed to insert departments: %w", err)
			}
		}
		if len(courses) > 0 {
			if err := tx.CreateInBatches(&courses, 100).Error; err != nil {
				return fmt.Errorf("failed to insert courses: %w", err)
			}
		}
		return nil
	})
}

func toRecords(db *catalog.Database) ([]model.DepartmentRecord, []model.CourseRecord) {
	var departments []model.DepartmentRecord
	var courses []model.CourseRecord
	for code, dept := range db.DepartmentMapping() {
		departments = append(departments, model.DepartmentRecord{
			Code:       code,
			Chair:      dept.Chair(),
			MajorCount: dept.MajorCount(),
		})
		for courseCode, c := range dept.CourseSelection() {
			courses = append(courses, model.CourseRecord{
				DeptCode:   code,
				Code:       courseCode,
				Instructor: c.Instructor(),
				Location:   c.Location(),
				TimeSlot:   c.TimeSlot(),
				Capacity:   c.Capacity(),
				Enrolled:   c.EnrolledCount(),
			})
		}
	}
	return departments, courses
}
