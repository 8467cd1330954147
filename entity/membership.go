package entity

import "time"

// Membership is one (user, chat room) pair. The composite primary key is the
// uniqueness constraint that keeps adds idempotent.
type Membership struct {
	UserID     string    `json:"userId" gorm:"primaryKey;type:varchar(36)"`
	ChatRoomID string    `json:"chatRoomId" gorm:"primaryKey;type:varchar(36);index"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
}
