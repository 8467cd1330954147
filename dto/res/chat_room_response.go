package res

import (
	"github.com/samber/lo"
	"group-chat-app/entity"
)

type ChatRoomResponse struct {
	ChatRoomId string `json:"chatRoomId"`
	Name       string `json:"name"`
	CreatedAt  string `json:"createdAt"`
}

func FromChatRoom(chatRoom entity.ChatRoom) ChatRoomResponse {
	return ChatRoomResponse{
		ChatRoomId: chatRoom.ID,
		Name:       chatRoom.Name,
		CreatedAt:  chatRoom.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func FromChatRooms(chatRooms []entity.ChatRoom) []ChatRoomResponse {
	return lo.Map(chatRooms, func(chatRoom entity.ChatRoom, _ int) ChatRoomResponse {
		return FromChatRoom(chatRoom)
	})
}
