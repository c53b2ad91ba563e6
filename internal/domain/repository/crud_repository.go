package repository

import "gorm.io/gorm"

// CrudRepository serves the plain create/patch/list entities that carry no
// cross-entity side effects (guidelines, diagnostic sessions, treatment
// plans, medical orders, order results, dialysis, emergency cases, report
// templates and executions, credit companies).
type CrudRepository[T any] interface {
	Create(db *gorm.DB, record *T) error
	FindByID(db *gorm.DB, id uint) (*T, error)
	FindAll(db *gorm.DB) ([]T, error)
	Save(db *gorm.DB, record *T) error
}
