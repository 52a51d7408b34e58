package repository

import (
	"errors"

	"go-portfolio-api/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	FindByEmail(email string) (*model.User, error)
	FindByID(id uuid.UUID) (*model.User, error)
	FindOrCreate(email, name string, roleID uint) (*model.User, error)
	Create(user *model.User) error
	Update(user *model.User) error
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepository {
	return &userRepo{db}
}

func (r *userRepo) FindByEmail(email string) (*model.User, error) {
	var user model.User
	if err := r.db.Preload("Role").Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepo) FindByID(id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := r.db.Preload("Role").First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindOrCreate resolves a user by email, creating it with the given name and
// role when absent. First write wins: an existing user's name and role are
// never overwritten. A concurrent creator losing the race on the unique email
// index falls back to re-reading the winner's row.
func (r *userRepo) FindOrCreate(email, name string, roleID uint) (*model.User, error) {
	user, err := r.FindByEmail(email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := model.User{
		Name:   name,
		Email:  email,
		RoleID: roleID,
	}
	if err := r.db.Create(&created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.FindByEmail(email)
		}
		return nil, err
	}
	return &created, nil
}

func (r *userRepo) Create(user *model.User) error {
	return r.db.Create(user).Error
}

func (r *userRepo) Update(user *model.User) error {
	return r.db.Save(user).Error
}
