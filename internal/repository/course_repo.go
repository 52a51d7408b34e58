package repository

import (
	"errors"

	"go-portfolio-api/internal/model"

	"gorm.io/gorm"
)

type CourseRepository interface {
	FindOrCreate(courseName string, roleID uint) (*model.Course, error)
}

type courseRepo struct {
	db *gorm.DB
}

func NewCourseRepo(db *gorm.DB) CourseRepository {
	return &courseRepo{db}
}

// FindOrCreate resolves a course by its (course_name, role_id) composite key,
// creating it on demand. Conflict on the composite index means another writer
// got there first; re-read their row.
func (r *courseRepo) FindOrCreate(courseName string, roleID uint) (*model.Course, error) {
	find := func() (*model.Course, error) {
		var course model.Course
		err := r.db.Where("course_name = ? AND role_id = ?", courseName, roleID).First(&course).Error
		if err != nil {
			return nil, err
		}
		return &course, nil
	}

	course, err := find()
	if err == nil {
		return course, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := model.Course{
		CourseName: courseName,
		RoleID:     roleID,
	}
	if err := r.db.Create(&created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return find()
		}
		return nil, err
	}
	return &created, nil
}
