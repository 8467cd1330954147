package usecase

import (
	"context"
	"gorm.io/gorm"
	"group-chat-app/dto/req"
	"group-chat-app/entity"
)

type MessageUsecase interface {
	CreateMessage(ctx context.Context, request *req.MessageRequest) (*entity.Message, error)
	GetByID(ctx context.Context, messageID string) (*entity.Message, error)
	ListAll(ctx context.Context) ([]entity.Message, error)
	ListByRoom(ctx context.Context, chatRoomID string) ([]entity.Message, error)
	LastInRoom(ctx context.Context, chatRoomID string) (*entity.Message, error)
	DeleteByID(ctx context.Context, messageID string) error
	DeleteAllInRoom(ctx context.Context, chatRoomID string) error
	DeleteAllAuthoredBy(ctx context.Context, db *gorm.DB, userID string) (int64, error)
}
