package repository

import (
	"context"
	"gorm.io/gorm"
	"group-chat-app/entity"
	"group-chat-app/enum"
)

type UserRepository struct {
	Repository[entity.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (repository UserRepository) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	if err := db.WithContext(ctx).Where("email = ?", email).Take(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (repository UserRepository) FindByEmails(ctx context.Context, db *gorm.DB, emails []string) ([]entity.User, error) {
	var users []entity.User
	err := db.WithContext(ctx).Where("email IN ?", emails).Find(&users).Error
	return users, err
}

func (repository UserRepository) CountByRole(ctx context.Context, db *gorm.DB, role enum.Role) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.User{}).Where("role = ?", role).Count(&count).Error
	return count, err
}
