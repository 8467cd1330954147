package usecase

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"group-chat-app/dto/req"
	"group-chat-app/entity"
	apperrors "group-chat-app/errors"
	"group-chat-app/repository"
	"time"
)

type messageUsecase struct {
	messageRepository *repository.MessageRepository
	userRepository    *repository.UserRepository
	membershipUsecase MembershipUsecase
	validate          *validator.Validate
	db                *gorm.DB
	log               *logrus.Logger
}

func NewMessageUsecase(
	messageRepository *repository.MessageRepository,
	userRepository *repository.UserRepository,
	membershipUC MembershipUsecase,
	validate *validator.Validate,
	db *gorm.DB,
	logger *logrus.Logger,
) MessageUsecase {
	return &messageUsecase{
		messageRepository: messageRepository,
		userRepository:    userRepository,
		membershipUsecase: membershipUC,
		validate:          validate,
		db:                db,
		log:               logger,
	}
}

// CreateMessage resolves the author and the room inside the same transaction
// as the insert; either one missing aborts with nothing written.
func (uc *messageUsecase) CreateMessage(ctx context.Context, request *req.MessageRequest) (*entity.Message, error) {
	if err := validate(uc.validate, request); err != nil {
		uc.log.WithError(err).Errorf("failed to validate message request : %v", err)
		return nil, err
	}

	timestamp := request.Timestamp
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	message := &entity.Message{
		Text:       request.Text,
		Timestamp:  timestamp,
		UserID:     request.UserID,
		ChatRoomID: request.ChatRoomID,
	}

	err := uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var author entity.User
		if err := uc.userRepository.FindByIdLocked(ctx, tx, &author, request.UserID, "SHARE"); err != nil {
			return invalidReference(notFound(err, "user", request.UserID))
		}
		if _, err := uc.membershipUsecase.FindRoom(ctx, tx, request.ChatRoomID); err != nil {
			return invalidReference(err)
		}
		return uc.messageRepository.Save(ctx, tx, message)
	})
	if err != nil {
		uc.log.WithError(err).Errorf("Failed to create message: %v", err)
		return nil, err
	}

	uc.log.Infof("Message %s created in chat room %s", message.ID, message.ChatRoomID)
	return message, nil
}

func (uc *messageUsecase) GetByID(ctx context.Context, messageID string) (*entity.Message, error) {
	var message entity.Message
	if err := uc.messageRepository.FindById(ctx, uc.db, &message, messageID); err != nil {
		return nil, notFound(err, "message", messageID)
	}
	return &message, nil
}

func (uc *messageUsecase) ListAll(ctx context.Context) ([]entity.Message, error) {
	var messages []entity.Message
	if err := uc.messageRepository.FindAll(ctx, uc.db, &messages); err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return messages, nil
}

func (uc *messageUsecase) ListByRoom(ctx context.Context, chatRoomID string) ([]entity.Message, error) {
	if _, err := uc.membershipUsecase.FindRoom(ctx, uc.db, chatRoomID); err != nil {
		return nil, err
	}
	messages, err := uc.messageRepository.FindByChatRoomID(ctx, uc.db, chatRoomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	return messages, nil
}

func (uc *messageUsecase) LastInRoom(ctx context.Context, chatRoomID string) (*entity.Message, error) {
	if _, err := uc.membershipUsecase.FindRoom(ctx, uc.db, chatRoomID); err != nil {
		return nil, err
	}
	message, err := uc.messageRepository.FindLastByChatRoomID(ctx, uc.db, chatRoomID)
	if err != nil {
		return nil, notFound(err, "message in chat room", chatRoomID)
	}
	return message, nil
}

func (uc *messageUsecase) DeleteByID(ctx context.Context, messageID string) error {
	return uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deleted, err := uc.messageRepository.DeleteById(ctx, tx, messageID)
		if err != nil {
			uc.log.WithError(err).Errorf("Failed to delete message %s", messageID)
			return err
		}
		if deleted == 0 {
			return fmt.Errorf("%w: message %s", apperrors.ErrNotFound, messageID)
		}
		uc.log.Infof("Message deleted: %s", messageID)
		return nil
	})
}

func (uc *messageUsecase) DeleteAllInRoom(ctx context.Context, chatRoomID string) error {
	return uc.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := uc.membershipUsecase.FindRoom(ctx, tx, chatRoomID); err != nil {
			return err
		}
		deleted, err := uc.messageRepository.DeleteByChatRoomID(ctx, tx, chatRoomID)
		if err != nil {
			uc.log.WithError(err).Errorf("Failed to delete messages of chat room %s", chatRoomID)
			return err
		}
		uc.log.Infof("Deleted %d messages from chat room %s", deleted, chatRoomID)
		return nil
	})
}

func (uc *messageUsecase) DeleteAllAuthoredBy(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	deleted, err := uc.messageRepository.DeleteByUserID(ctx, db, userID)
	if err != nil {
		uc.log.WithError(err).Errorf("Failed to delete messages authored by %s", userID)
		return 0, err
	}
	return deleted, nil
}

// invalidReference marks a dangling user or room id on a new message as a
// validation failure while keeping ErrNotFound in the chain.
func invalidReference(err error) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return err
}
