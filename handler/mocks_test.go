package handler_test

import (
	"context"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"group-chat-app/dto/req"
	"group-chat-app/dto/res"
	"group-chat-app/entity"
	"group-chat-app/enum"
	"group-chat-app/security"
)

func userOrNil(args mock.Arguments, i int) *entity.User {
	user, _ := args.Get(i).(*entity.User)
	return user
}

func chatRoomOrNil(args mock.Arguments, i int) *entity.ChatRoom {
	chatRoom, _ := args.Get(i).(*entity.ChatRoom)
	return chatRoom
}

func messageOrNil(args mock.Arguments, i int) *entity.Message {
	message, _ := args.Get(i).(*entity.Message)
	return message
}

type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) RegisterUser(ctx context.Context, request *req.RegisterRequest, role enum.Role) (*entity.User, error) {
	args := m.Called(ctx, request, role)
	return userOrNil(args, 0), args.Error(1)
}

func (m *MockAuthUsecase) LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error) {
	args := m.Called(ctx, request)
	return args.Get(0).(res.LoginResponse), args.Error(1)
}

func (m *MockAuthUsecase) EnsureAdmin(ctx context.Context, email, password string) (*entity.User, error) {
	args := m.Called(ctx, email, password)
	return userOrNil(args, 0), args.Error(1)
}

type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	args := m.Called(ctx, user)
	return userOrNil(args, 0), args.Error(1)
}

func (m *MockUserUsecase) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(ctx, userID)
	return userOrNil(args, 0), args.Error(1)
}

func (m *MockUserUsecase) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	return userOrNil(args, 0), args.Error(1)
}

func (m *MockUserUsecase) GetAllUser(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]entity.User)
	return users, args.Error(1)
}

func (m *MockUserUsecase) CountAdmins(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserUsecase) DeleteByID(ctx context.Context, userID string) (enum.DeleteOutcome, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(enum.DeleteOutcome), args.Error(1)
}

func (m *MockUserUsecase) DeleteByEmail(ctx context.Context, email string) (enum.DeleteOutcome, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(enum.DeleteOutcome), args.Error(1)
}

func (m *MockUserUsecase) DeleteAdmin(ctx context.Context, caller security.Caller, email string) (enum.DeleteOutcome, error) {
	args := m.Called(ctx, caller, email)
	return args.Get(0).(enum.DeleteOutcome), args.Error(1)
}

func (m *MockUserUsecase) DeleteAssociated(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *MockUserUsecase) DeleteAllUsers(ctx context.Context) (int, int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Int(1), args.Error(2)
}

type MockMembershipUsecase struct {
	mock.Mock
}

func (m *MockMembershipUsecase) CreateRoom(ctx context.Context, request *req.ChatRoomRequest) (*entity.ChatRoom, error) {
	args := m.Called(ctx, request)
	return chatRoomOrNil(args, 0), args.Error(1)
}

func (m *MockMembershipUsecase) CreateRoomWithMembers(ctx context.Context, request *req.ChatRoomRequest) (*entity.ChatRoom, error) {
	args := m.Called(ctx, request)
	return chatRoomOrNil(args, 0), args.Error(1)
}

func (m *MockMembershipUsecase) GetRoom(ctx context.Context, chatRoomID string) (*entity.ChatRoom, error) {
	args := m.Called(ctx, chatRoomID)
	return chatRoomOrNil(args, 0), args.Error(1)
}

func (m *MockMembershipUsecase) ListAllRooms(ctx context.Context) ([]entity.ChatRoom, error) {
	args := m.Called(ctx)
	chatRooms, _ := args.Get(0).([]entity.ChatRoom)
	return chatRooms, args.Error(1)
}

func (m *MockMembershipUsecase) ListRoomsForUser(ctx context.Context, userID string) ([]entity.ChatRoom, error) {
	args := m.Called(ctx, userID)
	chatRooms, _ := args.Get(0).([]entity.ChatRoom)
	return chatRooms, args.Error(1)
}

func (m *MockMembershipUsecase) ListMembers(ctx context.Context, chatRoomID string) ([]entity.User, error) {
	args := m.Called(ctx, chatRoomID)
	users, _ := args.Get(0).([]entity.User)
	return users, args.Error(1)
}

func (m *MockMembershipUsecase) ListNonMembers(ctx context.Context, chatRoomID string) ([]entity.User, error) {
	args := m.Called(ctx, chatRoomID)
	users, _ := args.Get(0).([]entity.User)
	return users, args.Error(1)
}

func (m *MockMembershipUsecase) ListCoMembers(ctx context.Context, userID string) ([]entity.User, error) {
	args := m.Called(ctx, userID)
	users, _ := args.Get(0).([]entity.User)
	return users, args.Error(1)
}

func (m *MockMembershipUsecase) ListNonCoMembers(ctx context.Context, userID string) ([]entity.User, error) {
	args := m.Called(ctx, userID)
	users, _ := args.Get(0).([]entity.User)
	return users, args.Error(1)
}

func (m *MockMembershipUsecase) AddMember(ctx context.Context, chatRoomID, userID string) (*entity.ChatRoom, error) {
	args := m.Called(ctx, chatRoomID, userID)
	return chatRoomOrNil(args, 0), args.Error(1)
}

func (m *MockMembershipUsecase) RemoveMember(ctx context.Context, chatRoomID, userID string) error {
	return m.Called(ctx, chatRoomID, userID).Error(0)
}

func (m *MockMembershipUsecase) DeleteRoom(ctx context.Context, chatRoomID string) error {
	return m.Called(ctx, chatRoomID).Error(0)
}

func (m *MockMembershipUsecase) DeleteAllRooms(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockMembershipUsecase) FindRoom(ctx context.Context, db *gorm.DB, chatRoomID string) (*entity.ChatRoom, error) {
	args := m.Called(ctx, db, chatRoomID)
	return chatRoomOrNil(args, 0), args.Error(1)
}

func (m *MockMembershipUsecase) RoomsForUser(ctx context.Context, db *gorm.DB, userID string) ([]entity.Membership, error) {
	args := m.Called(ctx, db, userID)
	memberships, _ := args.Get(0).([]entity.Membership)
	return memberships, args.Error(1)
}

func (m *MockMembershipUsecase) DetachMember(ctx context.Context, db *gorm.DB, chatRoomID, userID string) error {
	return m.Called(ctx, db, chatRoomID, userID).Error(0)
}

type MockMessageUsecase struct {
	mock.Mock
}

func (m *MockMessageUsecase) CreateMessage(ctx context.Context, request *req.MessageRequest) (*entity.Message, error) {
	args := m.Called(ctx, request)
	return messageOrNil(args, 0), args.Error(1)
}

func (m *MockMessageUsecase) GetByID(ctx context.Context, messageID string) (*entity.Message, error) {
	args := m.Called(ctx, messageID)
	return messageOrNil(args, 0), args.Error(1)
}

func (m *MockMessageUsecase) ListAll(ctx context.Context) ([]entity.Message, error) {
	args := m.Called(ctx)
	messages, _ := args.Get(0).([]entity.Message)
	return messages, args.Error(1)
}

func (m *MockMessageUsecase) ListByRoom(ctx context.Context, chatRoomID string) ([]entity.Message, error) {
	args := m.Called(ctx, chatRoomID)
	messages, _ := args.Get(0).([]entity.Message)
	return messages, args.Error(1)
}

func (m *MockMessageUsecase) LastInRoom(ctx context.Context, chatRoomID string) (*entity.Message, error) {
	args := m.Called(ctx, chatRoomID)
	return messageOrNil(args, 0), args.Error(1)
}

func (m *MockMessageUsecase) DeleteByID(ctx context.Context, messageID string) error {
	return m.Called(ctx, messageID).Error(0)
}

func (m *MockMessageUsecase) DeleteAllInRoom(ctx context.Context, chatRoomID string) error {
	return m.Called(ctx, chatRoomID).Error(0)
}

func (m *MockMessageUsecase) DeleteAllAuthoredBy(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	args := m.Called(ctx, db, userID)
	return args.Get(0).(int64), args.Error(1)
}
