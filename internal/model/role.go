package model

// Role classifies submitters. Rows are seeded at startup and treated as fixed.
type Role struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
}

// Well-known role IDs
const (
	RoleAdmin   uint = 1
	RoleStudent uint = 2
)

// Role names as used by callers of the list endpoints
const (
	RoleNameAdmin   = "admin"
	RoleNameStudent = "student"
)

// DefaultRoles defines the fixed role set
var DefaultRoles = []Role{
	{ID: RoleAdmin, Name: RoleNameAdmin},
	{ID: RoleStudent, Name: RoleNameStudent},
}
