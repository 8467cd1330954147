package entity

import "time"

type Message struct {
	BaseEntity
	Text       string    `json:"text" gorm:"type:TEXT"`
	Timestamp  time.Time `json:"timestamp" gorm:"column:sent_at;index"`
	UserID     string    `json:"userId" gorm:"type:varchar(36);not null;index"`
	ChatRoomID string    `json:"chatRoomId" gorm:"type:varchar(36);not null;index"`
}
