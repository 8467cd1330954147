package req

import "time"

type MessageRequest struct {
	Text       string    `json:"text" validate:"required"`
	Timestamp  time.Time `json:"timestamp"` // zero means "now"
	UserID     string    `json:"userId" validate:"required"`
	ChatRoomID string    `json:"chatRoomId" validate:"required"`
}
