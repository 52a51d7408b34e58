package service

import (
	"errors"
	"fmt"

	"go-portfolio-api/internal/model"
	"go-portfolio-api/internal/repository"
	"go-portfolio-api/internal/ws"
	"go-portfolio-api/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrSuggestionNotFound = errors.New("suggestion not found")
)

// CreateSuggestionRequest is the submission payload. RoleID defaults to the
// student role when omitted.
type CreateSuggestionRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required"`
	RoleID  uint   `json:"role_id"`
	Course  string `json:"course"`
}

// CreatedSuggestion is the creation response, with the author and course
// denormalized the way the submission form expects them.
type CreatedSuggestion struct {
	ID        uuid.UUID `json:"id"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	IsActive  bool      `json:"is_active"`
	UserName  string    `json:"userName"`
	UserEmail string    `json:"userEmail"`
	CourseID  *uint     `json:"courseId"`
}

// UpdateSuggestionRequest carries partial fields; nil means leave unchanged.
type UpdateSuggestionRequest struct {
	Message *string `json:"message"`
	Status  *string `json:"status"`
}

// ListFilter identifies the caller of the active list. Admin callers see
// everything; other callers are restricted to their own suggestions, matched
// by user id when given, otherwise by email.
type ListFilter struct {
	Role   string
	UserID string
	Email  string
}

type SuggestionService interface {
	Create(req *CreateSuggestionRequest) (*CreatedSuggestion, error)
	ListActive(filter ListFilter) ([]model.SuggestionResponse, error)
	ListArchived() ([]model.SuggestionResponse, error)
	Update(id uuid.UUID, req *UpdateSuggestionRequest) (*model.SuggestionResponse, error)
	Archive(id uuid.UUID) error
	Restore(id uuid.UUID) (*model.SuggestionResponse, error)
	Purge(id uuid.UUID) error
}

type suggestionService struct {
	suggestionRepo repository.SuggestionRepository
	userRepo       repository.UserRepository
	courseRepo     repository.CourseRepository
	permissionRepo repository.PermissionRepository
	db             *gorm.DB
	wsHub          *ws.Hub
}

func NewSuggestionService(
	sRepo repository.SuggestionRepository,
	uRepo repository.UserRepository,
	cRepo repository.CourseRepository,
	pRepo repository.PermissionRepository,
	db *gorm.DB,
	hub *ws.Hub,
) SuggestionService {
	return &suggestionService{
		suggestionRepo: sRepo,
		userRepo:       uRepo,
		courseRepo:     cRepo,
		permissionRepo: pRepo,
		db:             db,
		wsHub:          hub,
	}
}

func (s *suggestionService) Create(req *CreateSuggestionRequest) (*CreatedSuggestion, error) {
	// 1. Validate input (email format, required message/name)
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("%w: field '%s' failed on tag '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}

	roleID := req.RoleID
	if roleID == 0 {
		roleID = model.RoleStudent
	}

	// 2. Resolve or create the submitter. First write wins on name/role.
	user, err := s.userRepo.FindOrCreate(req.Email, req.Name, roleID)
	if err != nil {
		return nil, err
	}

	// 3. Resolve or create the course, scoped to the user's role
	var courseID *uint
	if req.Course != "" {
		course, err := s.courseRepo.FindOrCreate(req.Course, user.RoleID)
		if err != nil {
			return nil, err
		}
		courseID = &course.ID
	}

	// 4. Create the suggestion and, for admin authors, the permission link,
	//    in one atomic unit
	suggestion := &model.Suggestion{
		UserID:  user.ID,
		Message: req.Message,
		Status:  model.StatusActive,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(suggestion).Error; err != nil {
			return err
		}
		if user.IsAdmin() {
			permission, err := s.permissionRepo.FindOrCreate(tx, model.RoleAdmin)
			if err != nil {
				return err
			}
			link := model.PermissionSuggestion{
				PermissionID: permission.ID,
				SuggestionID: suggestion.ID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("suggestion_created", suggestion.ID, map[string]interface{}{
		"message":    suggestion.Message,
		"user_name":  user.Name,
		"user_email": user.Email,
	})

	return &CreatedSuggestion{
		ID:        suggestion.ID,
		Message:   suggestion.Message,
		Status:    suggestion.Status,
		IsActive:  suggestion.IsActive(),
		UserName:  user.Name,
		UserEmail: user.Email,
		CourseID:  courseID,
	}, nil
}

func (s *suggestionService) ListActive(filter ListFilter) ([]model.SuggestionResponse, error) {
	var authorID *uuid.UUID

	if filter.Role != model.RoleNameAdmin {
		user, err := s.resolveCaller(filter)
		if err != nil {
			return nil, err
		}
		// An identity that matches no user yields an empty list, not an error
		if user == nil {
			return []model.SuggestionResponse{}, nil
		}
		authorID = &user.ID
	}

	suggestions, err := s.suggestionRepo.FindActive(authorID)
	if err != nil {
		return nil, err
	}
	return toResponses(suggestions), nil
}

// resolveCaller looks the caller up by user id when given, otherwise by
// email. A lookup miss returns (nil, nil).
func (s *suggestionService) resolveCaller(filter ListFilter) (*model.User, error) {
	var (
		user *model.User
		err  error
	)
	switch {
	case filter.UserID != "":
		id, parseErr := uuid.Parse(filter.UserID)
		if parseErr != nil {
			return nil, nil
		}
		user, err = s.userRepo.FindByID(id)
	case filter.Email != "":
		user, err = s.userRepo.FindByEmail(filter.Email)
	default:
		return nil, nil
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

func (s *suggestionService) ListArchived() ([]model.SuggestionResponse, error) {
	suggestions, err := s.suggestionRepo.FindArchived()
	if err != nil {
		return nil, err
	}
	return toResponses(suggestions), nil
}

func (s *suggestionService) Update(id uuid.UUID, req *UpdateSuggestionRequest) (*model.SuggestionResponse, error) {
	suggestion, err := s.suggestionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSuggestionNotFound
		}
		return nil, err
	}

	if req.Message != nil {
		suggestion.Message = *req.Message
	}
	if req.Status != nil {
		suggestion.Status = *req.Status
	}

	if err := s.suggestionRepo.Save(suggestion); err != nil {
		return nil, err
	}

	resp := suggestion.ToResponse()
	return &resp, nil
}

// Archive moves an active suggestion into the archived state: status flips to
// inactive and the soft-delete marker is set, in one transaction. A row that
// is already archived is invisible here and yields not-found.
func (s *suggestionService) Archive(id uuid.UUID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var suggestion model.Suggestion
		if err := tx.First(&suggestion, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSuggestionNotFound
			}
			return err
		}
		if err := tx.Model(&suggestion).Update("status", model.StatusInactive).Error; err != nil {
			return err
		}
		return tx.Delete(&suggestion).Error
	})
	if err != nil {
		return err
	}

	s.publish("suggestion_archived", id, nil)
	return nil
}

// Restore clears the soft-delete marker and reactivates the suggestion, in
// one transaction.
func (s *suggestionService) Restore(id uuid.UUID) (*model.SuggestionResponse, error) {
	var restored model.Suggestion

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Unscoped().Preload("User").First(&restored, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSuggestionNotFound
			}
			return err
		}
		err := tx.Unscoped().Model(&restored).Updates(map[string]interface{}{
			"deleted_at": nil,
			"status":     model.StatusActive,
		}).Error
		if err != nil {
			return err
		}
		restored.DeletedAt = gorm.DeletedAt{}
		restored.Status = model.StatusActive
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("suggestion_restored", id, nil)

	resp := restored.ToResponse()
	return &resp, nil
}

// Purge irrecoverably deletes a suggestion and its permission links. Links go
// first so no orphaned join rows can survive; both deletes share one
// transaction.
func (s *suggestionService) Purge(id uuid.UUID) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("suggestion_id = ?", id).Delete(&model.PermissionSuggestion{}).Error; err != nil {
			return err
		}
		var suggestion model.Suggestion
		if err := tx.Unscoped().First(&suggestion, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSuggestionNotFound
			}
			return err
		}
		return tx.Unscoped().Delete(&suggestion).Error
	})
	if err != nil {
		return err
	}

	s.publish("suggestion_purged", id, nil)
	return nil
}

func (s *suggestionService) publish(event string, id uuid.UUID, extra map[string]interface{}) {
	if s.wsHub == nil {
		return
	}
	payload := map[string]interface{}{"id": id.String()}
	for k, v := range extra {
		payload[k] = v
	}
	go s.wsHub.Publish(event, payload)
}

func toResponses(suggestions []model.Suggestion) []model.SuggestionResponse {
	out := make([]model.SuggestionResponse, 0, len(suggestions))
	for i := range suggestions {
		out = append(out, suggestions[i].ToResponse())
	}
	return out
}
