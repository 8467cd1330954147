package entity

type ChatRoom struct {
	BaseEntity
	Name string `json:"name" gorm:"type:varchar(100);not null"`
}
