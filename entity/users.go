package entity

import "group-chat-app/enum"

type User struct {
	BaseEntity
	FirstName string    `json:"firstName" gorm:"type:varchar(100)"`
	LastName  string    `json:"lastName" gorm:"type:varchar(100)"`
	Email     string    `json:"email" gorm:"uniqueIndex;type:varchar(100);not null"`
	Password  string    `json:"-" gorm:"type:varchar(255)"`
	Role      enum.Role `json:"role" gorm:"type:varchar(10);not null;default:'MEMBER'"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == enum.RoleAdmin
}
