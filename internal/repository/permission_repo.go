package repository

import (
	"errors"

	"go-portfolio-api/internal/model"

	"gorm.io/gorm"
)

type PermissionRepository interface {
	FindByRole(roleID uint) (*model.Permission, error)
	// FindOrCreate runs against the given handle so callers can resolve the
	// bundle inside a transaction alongside the suggestion insert.
	FindOrCreate(tx *gorm.DB, roleID uint) (*model.Permission, error)
}

type permissionRepo struct {
	db *gorm.DB
}

func NewPermissionRepo(db *gorm.DB) PermissionRepository {
	return &permissionRepo{db}
}

func (r *permissionRepo) FindByRole(roleID uint) (*model.Permission, error) {
	var permission model.Permission
	if err := r.db.Where("role_id = ?", roleID).First(&permission).Error; err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *permissionRepo) FindOrCreate(tx *gorm.DB, roleID uint) (*model.Permission, error) {
	find := func() (*model.Permission, error) {
		var permission model.Permission
		err := tx.Where("role_id = ?", roleID).First(&permission).Error
		if err != nil {
			return nil, err
		}
		return &permission, nil
	}

	permission, err := find()
	if err == nil {
		return permission, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	created := model.Permission{RoleID: roleID}
	if roleID == model.RoleAdmin {
		created = model.AdminPermission()
	}
	if err := tx.Create(&created).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return find()
		}
		return nil, err
	}
	return &created, nil
}
