package repository

import (
	"go-portfolio-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SuggestionRepository interface {
	Create(suggestion *model.Suggestion) error
	// FindByID sees visible rows only; soft-deleted rows are not found.
	FindByID(id uuid.UUID) (*model.Suggestion, error)
	// FindByIDUnscoped also sees soft-deleted rows.
	FindByIDUnscoped(id uuid.UUID) (*model.Suggestion, error)
	FindActive(authorID *uuid.UUID) ([]model.Suggestion, error)
	FindArchived() ([]model.Suggestion, error)
	Save(suggestion *model.Suggestion) error
	CountLinks(id uuid.UUID) (int64, error)
}

type suggestionRepo struct {
	db *gorm.DB
}

func NewSuggestionRepo(db *gorm.DB) SuggestionRepository {
	return &suggestionRepo{db}
}

func (r *suggestionRepo) Create(suggestion *model.Suggestion) error {
	return r.db.Create(suggestion).Error
}

func (r *suggestionRepo) FindByID(id uuid.UUID) (*model.Suggestion, error) {
	var suggestion model.Suggestion
	if err := r.db.Preload("User").First(&suggestion, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &suggestion, nil
}

func (r *suggestionRepo) FindByIDUnscoped(id uuid.UUID) (*model.Suggestion, error) {
	var suggestion model.Suggestion
	if err := r.db.Unscoped().Preload("User").First(&suggestion, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// FindActive lists active suggestions newest first, joined with their
// authors. A non-nil authorID restricts the result to that author.
func (r *suggestionRepo) FindActive(authorID *uuid.UUID) ([]model.Suggestion, error) {
	q := r.db.Preload("User").
		Where("status = ?", model.StatusActive).
		Order("created_at DESC")
	if authorID != nil {
		q = q.Where("user_id = ?", *authorID)
	}

	var suggestions []model.Suggestion
	if err := q.Find(&suggestions).Error; err != nil {
		return nil, err
	}
	return suggestions, nil
}

// FindArchived lists inactive suggestions newest first, bypassing the
// soft-delete scope so archived rows show up.
func (r *suggestionRepo) FindArchived() ([]model.Suggestion, error) {
	var suggestions []model.Suggestion
	err := r.db.Unscoped().Preload("User").
		Where("status = ?", model.StatusInactive).
		Order("created_at DESC").
		Find(&suggestions).Error
	if err != nil {
		return nil, err
	}
	return suggestions, nil
}

func (r *suggestionRepo) Save(suggestion *model.Suggestion) error {
	return r.db.Save(suggestion).Error
}

// CountLinks returns how many permission join rows reference the suggestion
func (r *suggestionRepo) CountLinks(id uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&model.PermissionSuggestion{}).
		Where("suggestion_id = ?", id).
		Count(&count).Error
	return count, err
}
