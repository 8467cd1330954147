package res

import (
	"github.com/samber/lo"
	"group-chat-app/entity"
	"time"
)

type MessageResponse struct {
	MessageId  string `json:"messageId"`
	Text       string `json:"text"`
	Timestamp  string `json:"timestamp"`
	UserId     string `json:"userId"`
	ChatRoomId string `json:"chatRoomId"`
}

func FromMessage(message entity.Message) MessageResponse {
	return MessageResponse{
		MessageId:  message.ID,
		Text:       message.Text,
		Timestamp:  message.Timestamp.Format(time.RFC3339Nano),
		UserId:     message.UserID,
		ChatRoomId: message.ChatRoomID,
	}
}

func FromMessages(messages []entity.Message) []MessageResponse {
	return lo.Map(messages, func(message entity.Message, _ int) MessageResponse {
		return FromMessage(message)
	})
}
