package req

type ChatRoomRequest struct {
	Name  string        `json:"name" validate:"required,max=100"`
	Users []UserRequest `json:"users" validate:"dive"`
}

type UserRequest struct {
	Email string `json:"email" validate:"required,email"`
}
