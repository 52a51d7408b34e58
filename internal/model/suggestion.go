package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Suggestion lifecycle states. The state is stored exactly once in Status;
// the soft-delete marker tracks it (set iff inactive) and is_active on
// responses is derived, never stored.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Suggestion is a free-text guestbook message tied to a user.
type Suggestion struct {
	BaseModel
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	User      *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Message   string         `gorm:"type:text;not null" json:"message" validate:"required"`
	Status    string         `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`

	Permissions []Permission `gorm:"many2many:permission_suggestions;" json:"permissions,omitempty"`
}

// IsActive is derived from Status
func (s *Suggestion) IsActive() bool {
	return s.Status == StatusActive
}

// SuggestionResponse is the API shape for a suggestion, with the derived
// is_active flag and the author summary joined in.
type SuggestionResponse struct {
	ID        uuid.UUID    `json:"id"`
	Message   string       `json:"message"`
	Status    string       `json:"status"`
	IsActive  bool         `json:"is_active"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	DeletedAt *time.Time   `json:"deleted_at,omitempty"`
	User      *UserSummary `json:"user,omitempty"`
}

// ToResponse converts Suggestion to SuggestionResponse
func (s *Suggestion) ToResponse() SuggestionResponse {
	resp := SuggestionResponse{
		ID:        s.ID,
		Message:   s.Message,
		Status:    s.Status,
		IsActive:  s.IsActive(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if s.DeletedAt.Valid {
		t := s.DeletedAt.Time
		resp.DeletedAt = &t
	}
	if s.User != nil {
		u := s.User.ToSummary()
		resp.User = &u
	}
	return resp
}
