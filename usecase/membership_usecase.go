package usecase

import (
	"context"
	"gorm.io/gorm"
	"group-chat-app/dto/req"
	"group-chat-app/entity"
)

// MembershipUsecase owns chat rooms and the user <-> chat room relation.
type MembershipUsecase interface {
	CreateRoom(ctx context.Context, request *req.ChatRoomRequest) (*entity.ChatRoom, error)
	CreateRoomWithMembers(ctx context.Context, request *req.ChatRoomRequest) (*entity.ChatRoom, error)
	GetRoom(ctx context.Context, chatRoomID string) (*entity.ChatRoom, error)
	ListAllRooms(ctx context.Context) ([]entity.ChatRoom, error)
	ListRoomsForUser(ctx context.Context, userID string) ([]entity.ChatRoom, error)
	ListMembers(ctx context.Context, chatRoomID string) ([]entity.User, error)
	ListNonMembers(ctx context.Context, chatRoomID string) ([]entity.User, error)
	ListCoMembers(ctx context.Context, userID string) ([]entity.User, error)
	ListNonCoMembers(ctx context.Context, userID string) ([]entity.User, error)
	AddMember(ctx context.Context, chatRoomID, userID string) (*entity.ChatRoom, error)
	RemoveMember(ctx context.Context, chatRoomID, userID string) error
	DeleteRoom(ctx context.Context, chatRoomID string) error
	DeleteAllRooms(ctx context.Context) error

	// transaction-scoped helpers for other usecases
	FindRoom(ctx context.Context, db *gorm.DB, chatRoomID string) (*entity.ChatRoom, error)
	RoomsForUser(ctx context.Context, db *gorm.DB, userID string) ([]entity.Membership, error)
	DetachMember(ctx context.Context, db *gorm.DB, chatRoomID, userID string) error
}
