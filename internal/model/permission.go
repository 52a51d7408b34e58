package model

import "github.com/google/uuid"

// Permission is the capability bundle attached to a role, created on demand
// for the admin role when an admin authors a suggestion.
type Permission struct {
	ID             uint  `gorm:"primaryKey" json:"id"`
	RoleID         uint  `gorm:"uniqueIndex;not null" json:"role_id"`
	Role           *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	CanCreate      bool  `gorm:"not null;default:false" json:"can_create"`
	CanEdit        bool  `gorm:"not null;default:false" json:"can_edit"`
	CanSoftDelete  bool  `gorm:"not null;default:false" json:"can_soft_delete"`
	CanRead        bool  `gorm:"not null;default:false" json:"can_read"`
	CanRestore     bool  `gorm:"not null;default:false" json:"can_restore"`
	CanPermaDelete bool  `gorm:"not null;default:false" json:"can_perma_delete"`

	Suggestions []Suggestion `gorm:"many2many:permission_suggestions;" json:"suggestions,omitempty"`
}

// Capability names checked by the authorization middleware
const (
	CapabilityCreate      = "create"
	CapabilityEdit        = "edit"
	CapabilitySoftDelete  = "soft_delete"
	CapabilityRead        = "read"
	CapabilityRestore     = "restore"
	CapabilityPermaDelete = "perma_delete"
)

// Grants reports whether the bundle includes the named capability
func (p *Permission) Grants(capability string) bool {
	switch capability {
	case CapabilityCreate:
		return p.CanCreate
	case CapabilityEdit:
		return p.CanEdit
	case CapabilitySoftDelete:
		return p.CanSoftDelete
	case CapabilityRead:
		return p.CanRead
	case CapabilityRestore:
		return p.CanRestore
	case CapabilityPermaDelete:
		return p.CanPermaDelete
	}
	return false
}

// AdminPermission returns the full capability bundle granted to the admin role
func AdminPermission() Permission {
	return Permission{
		RoleID:         RoleAdmin,
		CanCreate:      true,
		CanEdit:        true,
		CanSoftDelete:  true,
		CanRead:        true,
		CanRestore:     true,
		CanPermaDelete: true,
	}
}

// PermissionSuggestion is the join row between a permission bundle and a
// suggestion. Declared explicitly so purge can hard-delete the links.
type PermissionSuggestion struct {
	PermissionID uint      `gorm:"primaryKey" json:"permission_id"`
	SuggestionID uuid.UUID `gorm:"type:uuid;primaryKey" json:"suggestion_id"`
}

func (PermissionSuggestion) TableName() string {
	return "permission_suggestions"
}
