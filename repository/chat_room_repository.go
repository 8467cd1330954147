package repository

import (
	"context"
	"gorm.io/gorm"
	"group-chat-app/entity"
)

type ChatRoomRepository struct {
	Repository[entity.ChatRoom]
}

func NewChatRoomRepository() *ChatRoomRepository {
	return &ChatRoomRepository{}
}

func (repository ChatRoomRepository) FindAllByUserID(ctx context.Context, db *gorm.DB, userID string) ([]entity.ChatRoom, error) {
	var chatRooms []entity.ChatRoom
	db = db.WithContext(ctx)
	err := db.
		Where("id IN (?)", db.Model(&entity.Membership{}).Select("chat_room_id").Where("user_id = ?", userID)).
		Order("id ASC").
		Find(&chatRooms).Error
	if err != nil {
		return nil, err
	}
	return chatRooms, nil
}
