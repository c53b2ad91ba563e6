package usecase

import (
	"context"
	"errors"

	"hospital-erp/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrRecordNotFound = errors.New("record not found")

// CrudUsecase serves the plain create/read/patch entities that carry no
// cross-entity side effects. Patching is a shallow JSON merge applied by the
// handler before Update is called.
type CrudUsecase[T any] interface {
	Create(ctx context.Context, record *T) (*T, error)
	Get(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context) ([]T, error)
	Update(ctx context.Context, record *T) (*T, error)
}

type crudUsecase[T any] struct {
	db   *gorm.DB
	log  *logrus.Logger
	repo repository.CrudRepository[T]
}

func NewCrudUsecase[T any](db *gorm.DB, log *logrus.Logger, repo repository.CrudRepository[T]) CrudUsecase[T] {
	return &crudUsecase[T]{
		db:   db,
		log:  log,
		repo: repo,
	}
}

func (u *crudUsecase[T]) Create(ctx context.Context, record *T) (*T, error) {
	if err := u.repo.Create(u.db.WithContext(ctx), record); err != nil {
		u.log.Warnf("Failed to create record: %+v", err)
		return nil, err
	}

	return record, nil
}

func (u *crudUsecase[T]) Get(ctx context.Context, id uint) (*T, error) {
	record, err := u.repo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find record %d: %+v", id, err)
		return nil, err
	}
	if record == nil {
		return nil, ErrRecordNotFound
	}

	return record, nil
}

func (u *crudUsecase[T]) List(ctx context.Context) ([]T, error) {
	records, err := u.repo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list records: %+v", err)
		return nil, err
	}

	return records, nil
}

func (u *crudUsecase[T]) Update(ctx context.Context, record *T) (*T, error) {
	if err := u.repo.Save(u.db.WithContext(ctx), record); err != nil {
		u.log.Warnf("Failed to update record: %+v", err)
		return nil, err
	}

	return record, nil
}
