package model

// Course is an optional affiliation tag, unique per (course_name, role_id)
// and created on demand when a submission names one.
type Course struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CourseName string `gorm:"type:varchar(255);not null;uniqueIndex:idx_courses_name_role" json:"course_name"`
	RoleID     uint   `gorm:"not null;uniqueIndex:idx_courses_name_role" json:"role_id"`
	Role       *Role  `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}
