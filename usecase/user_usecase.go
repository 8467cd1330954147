package usecase

import (
	"context"
	"group-chat-app/entity"
	"group-chat-app/enum"
	"group-chat-app/security"
)

// UserUsecase is the only place a user record is removed.
type UserUsecase interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByID(ctx context.Context, userID string) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetAllUser(ctx context.Context) ([]entity.User, error)
	CountAdmins(ctx context.Context) (int64, error)
	DeleteByID(ctx context.Context, userID string) (enum.DeleteOutcome, error)
	DeleteByEmail(ctx context.Context, email string) (enum.DeleteOutcome, error)
	DeleteAdmin(ctx context.Context, caller security.Caller, email string) (enum.DeleteOutcome, error)
	DeleteAssociated(ctx context.Context, userID string) error
	DeleteAllUsers(ctx context.Context) (deleted int, skipped int, err error)
}
