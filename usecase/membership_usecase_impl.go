package usecase

import (
	"context"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"group-chat-app/dto/req"
	"group-chat-app/entity"
	apperrors "group-chat-app/errors"
	"group-chat-app/repository"
	"strings"
)

type MembershipUsecaseImpl struct {
	*repository.ChatRoomRepository
	*repository.MembershipRepository
	*repository.MessageRepository
	UserRepository *repository.UserRepository
	*validator.Validate
	*gorm.DB
	*logrus.Logger
}

func NewMembershipUsecase(
	chatRoomRepository *repository.ChatRoomRepository,
	membershipRepository *repository.MembershipRepository,
	messageRepository *repository.MessageRepository,
	userRepository *repository.UserRepository,
	validate *validator.Validate,
	DB *gorm.DB,
	logger *logrus.Logger,
) *MembershipUsecaseImpl {
	return &MembershipUsecaseImpl{
		ChatRoomRepository:   chatRoomRepository,
		MembershipRepository: membershipRepository,
		MessageRepository:    messageRepository,
		UserRepository:       userRepository,
		Validate:             validate,
		DB:                   DB,
		Logger:               logger,
	}
}

func (uc *MembershipUsecaseImpl) CreateRoom(ctx context.Context, request *req.ChatRoomRequest) (*entity.ChatRoom, error) {
	request.Name = strings.TrimSpace(request.Name)
	if err := validate(uc.Validate, request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate chat room request : %v", err)
		return nil, err
	}

	chatRoom := &entity.ChatRoom{Name: request.Name}
	if err := uc.ChatRoomRepository.Save(ctx, uc.DB, chatRoom); err != nil {
		uc.Logger.WithError(err).Errorf("failed to save chat room : %v", err)
		return nil, err
	}
	uc.Logger.Infof("Chat room created: %s", chatRoom.ID)
	return chatRoom, nil
}

// CreateRoomWithMembers resolves every email before writing anything, so an
// unknown email leaves no room behind.
func (uc *MembershipUsecaseImpl) CreateRoomWithMembers(ctx context.Context, request *req.ChatRoomRequest) (*entity.ChatRoom, error) {
	request.Name = strings.TrimSpace(request.Name)
	for i := range request.Users {
		request.Users[i].Email = normalizeEmail(request.Users[i].Email)
	}
	if err := validate(uc.Validate, request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate chat room request : %v", err)
		return nil, err
	}

	emails := lo.Uniq(lo.Map(request.Users, func(user req.UserRequest, _ int) string {
		return user.Email
	}))

	chatRoom := &entity.ChatRoom{Name: request.Name}
	err := uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users, err := uc.UserRepository.FindByEmails(ctx, tx, emails)
		if err != nil {
			return err
		}
		found := lo.SliceToMap(users, func(user entity.User) (string, string) {
			return user.Email, user.ID
		})
		if missing := lo.Filter(emails, func(email string, _ int) bool {
			_, ok := found[email]
			return !ok
		}); len(missing) > 0 {
			return fmt.Errorf("%w: users %s", apperrors.ErrNotFound, strings.Join(missing, ", "))
		}

		if err := uc.ChatRoomRepository.Save(ctx, tx, chatRoom); err != nil {
			return err
		}
		memberships := lo.Map(emails, func(email string, _ int) entity.Membership {
			return entity.Membership{UserID: found[email], ChatRoomID: chatRoom.ID}
		})
		return uc.MembershipRepository.InsertAll(ctx, tx, memberships)
	})
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to create chat room with members : %v", err)
		return nil, err
	}
	uc.Logger.Infof("Chat room %s created with %d members", chatRoom.ID, len(emails))
	return chatRoom, nil
}

func (uc *MembershipUsecaseImpl) GetRoom(ctx context.Context, chatRoomID string) (*entity.ChatRoom, error) {
	return uc.FindRoom(ctx, uc.DB, chatRoomID)
}

func (uc *MembershipUsecaseImpl) FindRoom(ctx context.Context, db *gorm.DB, chatRoomID string) (*entity.ChatRoom, error) {
	var chatRoom entity.ChatRoom
	if err := uc.ChatRoomRepository.FindById(ctx, db, &chatRoom, chatRoomID); err != nil {
		return nil, notFound(err, "chat room", chatRoomID)
	}
	return &chatRoom, nil
}

func (uc *MembershipUsecaseImpl) ListAllRooms(ctx context.Context) ([]entity.ChatRoom, error) {
	var chatRooms []entity.ChatRoom
	if err := uc.ChatRoomRepository.FindAll(ctx, uc.DB, &chatRooms); err != nil {
		uc.Logger.WithError(err).Error("Failed to get all chat rooms")
		return nil, err
	}
	return chatRooms, nil
}

func (uc *MembershipUsecaseImpl) ListRoomsForUser(ctx context.Context, userID string) ([]entity.ChatRoom, error) {
	if err := uc.requireUser(ctx, uc.DB, userID); err != nil {
		return nil, err
	}
	chatRooms, err := uc.ChatRoomRepository.FindAllByUserID(ctx, uc.DB, userID)
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to get chat rooms by user ID")
		return nil, err
	}
	return chatRooms, nil
}

func (uc *MembershipUsecaseImpl) ListMembers(ctx context.Context, chatRoomID string) ([]entity.User, error) {
	if _, err := uc.FindRoom(ctx, uc.DB, chatRoomID); err != nil {
		return nil, err
	}
	return uc.MembershipRepository.FindMembers(ctx, uc.DB, chatRoomID)
}

func (uc *MembershipUsecaseImpl) ListNonMembers(ctx context.Context, chatRoomID string) ([]entity.User, error) {
	if _, err := uc.FindRoom(ctx, uc.DB, chatRoomID); err != nil {
		return nil, err
	}
	return uc.MembershipRepository.FindNonMembers(ctx, uc.DB, chatRoomID)
}

func (uc *MembershipUsecaseImpl) ListCoMembers(ctx context.Context, userID string) ([]entity.User, error) {
	if err := uc.requireUser(ctx, uc.DB, userID); err != nil {
		return nil, err
	}
	return uc.MembershipRepository.FindCoMembers(ctx, uc.DB, userID)
}

func (uc *MembershipUsecaseImpl) ListNonCoMembers(ctx context.Context, userID string) ([]entity.User, error) {
	if err := uc.requireUser(ctx, uc.DB, userID); err != nil {
		return nil, err
	}
	return uc.MembershipRepository.FindNonCoMembers(ctx, uc.DB, userID)
}

// AddMember is idempotent. Both rows are share-locked so a concurrent cascade
// deletion cannot remove them between the check and the insert.
func (uc *MembershipUsecaseImpl) AddMember(ctx context.Context, chatRoomID, userID string) (*entity.ChatRoom, error) {
	var chatRoom entity.ChatRoom
	err := uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := uc.ChatRoomRepository.FindByIdLocked(ctx, tx, &chatRoom, chatRoomID, "SHARE"); err != nil {
			return notFound(err, "chat room", chatRoomID)
		}
		var user entity.User
		if err := uc.UserRepository.FindByIdLocked(ctx, tx, &user, userID, "SHARE"); err != nil {
			return notFound(err, "user", userID)
		}

		created, err := uc.MembershipRepository.Insert(ctx, tx, &entity.Membership{UserID: userID, ChatRoomID: chatRoomID})
		if err != nil {
			return err
		}
		if !created {
			uc.Logger.Debugf("User %s already in chat room %s", userID, chatRoomID)
		}
		return nil
	})
	if err != nil {
		uc.Logger.WithError(err).Errorf("Failed to add user %s to chat room %s", userID, chatRoomID)
		return nil, err
	}
	return &chatRoom, nil
}

func (uc *MembershipUsecaseImpl) RemoveMember(ctx context.Context, chatRoomID, userID string) error {
	return uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return uc.DetachMember(ctx, tx, chatRoomID, userID)
	})
}

// DetachMember removes one pair; a missing pair is not an error.
func (uc *MembershipUsecaseImpl) DetachMember(ctx context.Context, db *gorm.DB, chatRoomID, userID string) error {
	removed, err := uc.MembershipRepository.DeletePair(ctx, db, chatRoomID, userID)
	if err != nil {
		uc.Logger.WithError(err).Errorf("Failed to remove user %s from chat room %s", userID, chatRoomID)
		return err
	}
	if removed > 0 {
		uc.Logger.Infof("User %s left chat room %s", userID, chatRoomID)
	}
	return nil
}

// RoomsForUser returns the user's memberships as loaded by the query. The
// slice is detached from the table, so callers may iterate it while detaching.
func (uc *MembershipUsecaseImpl) RoomsForUser(ctx context.Context, db *gorm.DB, userID string) ([]entity.Membership, error) {
	return uc.MembershipRepository.FindByUserID(ctx, db, userID)
}

// DeleteRoom also drops the room's memberships and messages.
func (uc *MembershipUsecaseImpl) DeleteRoom(ctx context.Context, chatRoomID string) error {
	err := uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var chatRoom entity.ChatRoom
		if err := uc.ChatRoomRepository.FindByIdLocked(ctx, tx, &chatRoom, chatRoomID, "UPDATE"); err != nil {
			return notFound(err, "chat room", chatRoomID)
		}
		if err := uc.MembershipRepository.DeleteByChatRoomID(ctx, tx, chatRoomID); err != nil {
			return err
		}
		if _, err := uc.MessageRepository.DeleteByChatRoomID(ctx, tx, chatRoomID); err != nil {
			return err
		}
		_, err := uc.ChatRoomRepository.DeleteById(ctx, tx, chatRoomID)
		return err
	})
	if err != nil {
		uc.Logger.WithError(err).Errorf("Failed to delete chat room %s", chatRoomID)
		return err
	}
	uc.Logger.Infof("Chat room deleted: %s", chatRoomID)
	return nil
}

func (uc *MembershipUsecaseImpl) DeleteAllRooms(ctx context.Context) error {
	err := uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := uc.MembershipRepository.DeleteAll(ctx, tx); err != nil {
			return err
		}
		if err := uc.MessageRepository.DeleteAll(ctx, tx); err != nil {
			return err
		}
		return uc.ChatRoomRepository.DeleteAll(ctx, tx)
	})
	if err != nil {
		uc.Logger.WithError(err).Error("Failed to delete all chat rooms")
		return err
	}
	uc.Logger.Info("All chat rooms deleted")
	return nil
}

func (uc *MembershipUsecaseImpl) requireUser(ctx context.Context, db *gorm.DB, userID string) error {
	var user entity.User
	if err := uc.UserRepository.FindById(ctx, db, &user, userID); err != nil {
		return notFound(err, "user", userID)
	}
	return nil
}
