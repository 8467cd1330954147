package usecase

import (
	"context"
	"errors"
	"fmt"
	"gorm.io/gorm"
	"group-chat-app/config/logger"
	"group-chat-app/entity"
	"group-chat-app/enum"
	apperrors "group-chat-app/errors"
	"group-chat-app/repository"
	"group-chat-app/security"
)

type UserUsecaseImpl struct {
	*repository.UserRepository
	MembershipUsecase MembershipUsecase
	MessageUsecase    MessageUsecase
	*gorm.DB
	Log *logger.AppLogger
}

func NewUserUsecase(
	userRepository *repository.UserRepository,
	membershipUC MembershipUsecase,
	messageUC MessageUsecase,
	DB *gorm.DB,
	logger *logger.AppLogger,
) UserUsecase {
	return &UserUsecaseImpl{
		UserRepository:    userRepository,
		MembershipUsecase: membershipUC,
		MessageUsecase:    messageUC,
		DB:                DB,
		Log:               logger,
	}
}

// CreateUser does not re-check the email; registration does that. A unique
// index violation still surfaces as ErrDuplicateRegistration.
func (uc *UserUsecaseImpl) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.Email = normalizeEmail(user.Email)
	if user.Role == "" {
		user.Role = enum.RoleMember
	}
	if err := uc.UserRepository.Save(ctx, uc.DB, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicateRegistration, user.Email)
		}
		uc.Log.Http.Error.Error().Err(err).Str("email", user.Email).Msg("Failed to save user")
		return nil, err
	}

	uc.Log.Http.Info.Info().
		Str("userId", user.ID).
		Str("role", string(user.Role)).
		Msg("User created")
	return user, nil
}

func (uc *UserUsecaseImpl) GetUserByID(ctx context.Context, userID string) (*entity.User, error) {
	uc.Log.Http.Trace.Trace().Str("userId", userID).Msg("Finding user by ID")

	var user entity.User
	if err := uc.UserRepository.FindById(ctx, uc.DB, &user, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			uc.Log.Http.Warning.Warn().Str("userId", userID).Msg("User not found")
		} else {
			uc.Log.Http.Error.Error().Err(err).Str("userId", userID).Msg("Failed to find user")
		}
		return nil, notFound(err, "user", userID)
	}
	return &user, nil
}

func (uc *UserUsecaseImpl) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = normalizeEmail(email)
	user, err := uc.UserRepository.FindByEmail(ctx, uc.DB, email)
	if err != nil {
		return nil, notFound(err, "user", email)
	}
	return user, nil
}

func (uc *UserUsecaseImpl) GetAllUser(ctx context.Context) ([]entity.User, error) {
	var users []entity.User
	if err := uc.UserRepository.FindAll(ctx, uc.DB, &users); err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to get all users")
		return nil, err
	}

	uc.Log.Http.Trace.Trace().Int("userCount", len(users)).Msg("Successfully retrieved all users")
	return users, nil
}

func (uc *UserUsecaseImpl) CountAdmins(ctx context.Context) (int64, error) {
	count, err := uc.UserRepository.CountByRole(ctx, uc.DB, enum.RoleAdmin)
	if err != nil {
		uc.Log.Http.Error.Error().Err(err).Msg("Failed to count admin users")
		return 0, err
	}
	return count, nil
}

func (uc *UserUsecaseImpl) DeleteByID(ctx context.Context, userID string) (enum.DeleteOutcome, error) {
	return uc.guardedDelete(ctx, func(tx *gorm.DB) (*entity.User, error) {
		return uc.lockUser(ctx, tx, userID)
	})
}

func (uc *UserUsecaseImpl) DeleteByEmail(ctx context.Context, email string) (enum.DeleteOutcome, error) {
	email = normalizeEmail(email)
	return uc.guardedDelete(ctx, func(tx *gorm.DB) (*entity.User, error) {
		user, err := uc.UserRepository.FindByEmail(ctx, tx, email)
		if err != nil {
			return nil, err
		}
		return uc.lockUser(ctx, tx, user.ID)
	})
}

// DeleteAdmin skips the admin guard. Only an admin caller may use it; it is
// meant for shutdown cleanup.
func (uc *UserUsecaseImpl) DeleteAdmin(ctx context.Context, caller security.Caller, email string) (enum.DeleteOutcome, error) {
	if !caller.IsAdmin() {
		uc.Log.Http.Warning.Warn().Str("callerId", caller.UserID).Msg("Non-admin tried to delete admin")
		return "", apperrors.ErrAuthorization
	}
	email = normalizeEmail(email)

	outcome := enum.NotFound
	err := uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := uc.UserRepository.FindByEmail(ctx, tx, email)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if user, err = uc.lockUser(ctx, tx, user.ID); err != nil {
			return err
		}
		if err := uc.deleteWithCascade(ctx, tx, user); err != nil {
			return err
		}
		outcome = enum.Deleted
		return nil
	})
	if err != nil {
		return "", err
	}

	uc.Log.Http.Info.Info().Str("email", email).Str("outcome", string(outcome)).Msg("Admin deletion finished")
	return outcome, nil
}

func (uc *UserUsecaseImpl) DeleteAssociated(ctx context.Context, userID string) error {
	return uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := uc.lockUser(ctx, tx, userID)
		if err != nil {
			return notFound(err, "user", userID)
		}
		return uc.deleteAssociated(ctx, tx, user)
	})
}

// DeleteAllUsers runs the guarded deletion for every user in one
// transaction. The admin is skipped each time and always survives.
func (uc *UserUsecaseImpl) DeleteAllUsers(ctx context.Context) (int, int, error) {
	deleted, skipped := 0, 0
	err := uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		deleted, skipped = 0, 0

		var users []entity.User
		if err := uc.UserRepository.FindAll(ctx, tx, &users); err != nil {
			return err
		}
		for _, candidate := range users {
			user, err := uc.lockUser(ctx, tx, candidate.ID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if user.IsAdmin() {
				skipped++
				continue
			}
			if err := uc.deleteWithCascade(ctx, tx, user); err != nil {
				return err
			}
			deleted++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	uc.Log.Http.Info.Info().Int("deleted", deleted).Int("skipped", skipped).Msg("Bulk user deletion finished")
	return deleted, skipped, nil
}

func (uc *UserUsecaseImpl) guardedDelete(ctx context.Context, resolve func(tx *gorm.DB) (*entity.User, error)) (enum.DeleteOutcome, error) {
	var outcome enum.DeleteOutcome
	var target string
	err := uc.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user, err := resolve(tx)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			outcome = enum.NotFound
			return nil
		}
		if err != nil {
			return err
		}
		target = user.ID
		if user.IsAdmin() {
			outcome = enum.SkippedAdminProtected
			return nil
		}
		if err := uc.deleteWithCascade(ctx, tx, user); err != nil {
			return err
		}
		outcome = enum.Deleted
		return nil
	})
	if err != nil {
		return "", err
	}

	uc.Log.Http.Info.Info().Str("userId", target).Str("outcome", string(outcome)).Msg("User deletion finished")
	return outcome, nil
}

func (uc *UserUsecaseImpl) deleteWithCascade(ctx context.Context, tx *gorm.DB, user *entity.User) error {
	if err := uc.deleteAssociated(ctx, tx, user); err != nil {
		return err
	}
	if _, err := uc.UserRepository.DeleteById(ctx, tx, user.ID); err != nil {
		uc.Log.Http.Error.Error().Err(err).Str("userId", user.ID).Msg("Failed to delete user record")
		return err
	}
	return nil
}

// deleteAssociated works on a snapshot of the memberships so removing pairs
// never disturbs the loop. Any failure aborts the surrounding transaction.
func (uc *UserUsecaseImpl) deleteAssociated(ctx context.Context, tx *gorm.DB, user *entity.User) error {
	memberships, err := uc.MembershipUsecase.RoomsForUser(ctx, tx, user.ID)
	if err != nil {
		return uc.consistencyHazard(user, "load memberships", err)
	}
	for _, membership := range memberships {
		if err := uc.MembershipUsecase.DetachMember(ctx, tx, membership.ChatRoomID, user.ID); err != nil {
			return uc.consistencyHazard(user, "detach chat room "+membership.ChatRoomID, err)
		}
	}

	purged, err := uc.MessageUsecase.DeleteAllAuthoredBy(ctx, tx, user.ID)
	if err != nil {
		return uc.consistencyHazard(user, "purge messages", err)
	}

	uc.Log.Http.Trace.Trace().
		Str("userId", user.ID).
		Int("rooms", len(memberships)).
		Int64("messages", purged).
		Msg("Associated data removed")
	return nil
}

func (uc *UserUsecaseImpl) consistencyHazard(user *entity.User, step string, err error) error {
	uc.Log.Http.Error.Error().
		Err(err).
		Str("userId", user.ID).
		Str("step", step).
		Msg("Cascade deletion failed, rolling back")
	return fmt.Errorf("%w: %s: %w", apperrors.ErrConsistencyHazard, step, err)
}

func (uc *UserUsecaseImpl) lockUser(ctx context.Context, tx *gorm.DB, userID string) (*entity.User, error) {
	var user entity.User
	if err := uc.UserRepository.FindByIdLocked(ctx, tx, &user, userID, "UPDATE"); err != nil {
		return nil, err
	}
	return &user, nil
}
