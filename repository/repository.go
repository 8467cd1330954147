package repository

import (
	"context"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository holds the CRUD every record type shares. The db argument is
// either the root handle or an open transaction.
type Repository[T any] struct{}

func (repo Repository[T]) Save(ctx context.Context, db *gorm.DB, entity *T) error {
	return db.WithContext(ctx).Create(entity).Error
}

func (repo Repository[T]) FindById(ctx context.Context, db *gorm.DB, entity *T, id string) error {
	return db.WithContext(ctx).Where("id = ?", id).Take(entity).Error
}

// FindByIdLocked takes a row lock ("UPDATE" or "SHARE") until the
// surrounding transaction ends. Dialects without row locks ignore it.
func (repo Repository[T]) FindByIdLocked(ctx context.Context, db *gorm.DB, entity *T, id string, strength string) error {
	return db.WithContext(ctx).
		Clauses(clause.Locking{Strength: strength}).
		Where("id = ?", id).
		Take(entity).Error
}

func (repo Repository[T]) FindAll(ctx context.Context, db *gorm.DB, entity *[]T) error {
	return db.WithContext(ctx).Order("id ASC").Find(entity).Error
}

func (repo Repository[T]) DeleteById(ctx context.Context, db *gorm.DB, id string) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(new(T))
	return result.RowsAffected, result.Error
}

func (repo Repository[T]) DeleteAll(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Where("1 = 1").Delete(new(T)).Error
}
