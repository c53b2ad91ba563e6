package repository

import (
	"errors"

	domainRepo "hospital-erp/internal/domain/repository"

	"gorm.io/gorm"
)

type crudRepository[T any] struct{}

// NewCrudRepository builds a repository for an entity with no cross-entity
// side effects.
func NewCrudRepository[T any]() domainRepo.CrudRepository[T] {
	return &crudRepository[T]{}
}

func (r *crudRepository[T]) Create(db *gorm.DB, record *T) error {
	return db.Create(record).Error
}

func (r *crudRepository[T]) FindByID(db *gorm.DB, id uint) (*T, error) {
	var record T
	err := db.Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *crudRepository[T]) FindAll(db *gorm.DB) ([]T, error) {
	var records []T
	err := db.Order("created_at DESC").Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *crudRepository[T]) Save(db *gorm.DB, record *T) error {
	return db.Save(record).Error
}
