package repository

import (
	"context"
	"gorm.io/gorm"
	"group-chat-app/entity"
)

type MessageRepository struct {
	Repository[entity.Message]
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (repository MessageRepository) FindByChatRoomID(ctx context.Context, db *gorm.DB, chatRoomID string) ([]entity.Message, error) {
	var messages []entity.Message
	err := db.WithContext(ctx).
		Where("chat_room_id = ?", chatRoomID).
		Order("id ASC").
		Find(&messages).Error
	return messages, err
}

// FindLastByChatRoomID breaks timestamp ties with the id, newest first.
func (repository MessageRepository) FindLastByChatRoomID(ctx context.Context, db *gorm.DB, chatRoomID string) (*entity.Message, error) {
	var message entity.Message
	err := db.WithContext(ctx).
		Where("chat_room_id = ?", chatRoomID).
		Order("sent_at DESC").
		Order("id DESC").
		Take(&message).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (repository MessageRepository) CountByChatRoomID(ctx context.Context, db *gorm.DB, chatRoomID string) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Message{}).Where("chat_room_id = ?", chatRoomID).Count(&count).Error
	return count, err
}

func (repository MessageRepository) DeleteByChatRoomID(ctx context.Context, db *gorm.DB, chatRoomID string) (int64, error) {
	result := db.WithContext(ctx).Where("chat_room_id = ?", chatRoomID).Delete(&entity.Message{})
	return result.RowsAffected, result.Error
}

func (repository MessageRepository) DeleteByUserID(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	result := db.WithContext(ctx).Where("user_id = ?", userID).Delete(&entity.Message{})
	return result.RowsAffected, result.Error
}
