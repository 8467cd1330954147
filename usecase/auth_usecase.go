package usecase

import (
	"context"
	"group-chat-app/dto/req"
	"group-chat-app/dto/res"
	"group-chat-app/entity"
	"group-chat-app/enum"
)

type AuthUsecase interface {
	RegisterUser(ctx context.Context, request *req.RegisterRequest, role enum.Role) (*entity.User, error)
	LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error)
	EnsureAdmin(ctx context.Context, email, password string) (*entity.User, error)
}
