package res

import (
	"github.com/samber/lo"
	"group-chat-app/entity"
	"group-chat-app/enum"
)

type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      enum.Role `json:"role"`
	CreatedAt string    `json:"createdAt"`
}

func FromUser(user entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      user.Role,
		CreatedAt: user.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

func FromUsers(users []entity.User) []UserResponse {
	return lo.Map(users, func(user entity.User, _ int) UserResponse {
		return FromUser(user)
	})
}

type LoginResponse struct {
	Token string `json:"token"`
}

type DeleteUserResponse struct {
	Outcome enum.DeleteOutcome `json:"outcome"`
}

type DeleteAllUsersResponse struct {
	Deleted int `json:"deleted"`
	Skipped int `json:"skipped"`
}
