package repository

import (
	"hospital-erp/internal/domain/entity"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uint) (*entity.User, error)
	FindByUsername(db *gorm.DB, username string) (*entity.User, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
	FindByRole(db *gorm.DB, role entity.Role) ([]entity.User, error)
	Save(db *gorm.DB, user *entity.User) error
}
