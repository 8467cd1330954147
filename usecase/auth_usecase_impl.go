package usecase

import (
	"context"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"group-chat-app/dto/req"
	"group-chat-app/dto/res"
	"group-chat-app/entity"
	"group-chat-app/enum"
	apperrors "group-chat-app/errors"
	"group-chat-app/security"
)

type AuthUsecaseImpl struct {
	UserUsecase UserUsecase
	*validator.Validate
	*logrus.Logger
	*security.JWT
}

func NewAuthUsecase(userUsecase UserUsecase, validate *validator.Validate, logger *logrus.Logger, JWT *security.JWT) AuthUsecase {
	return &AuthUsecaseImpl{UserUsecase: userUsecase, Validate: validate, Logger: logger, JWT: JWT}
}

func (uc *AuthUsecaseImpl) RegisterUser(ctx context.Context, request *req.RegisterRequest, role enum.Role) (*entity.User, error) {
	request.Email = normalizeEmail(request.Email)
	if err := validate(uc.Validate, request); err != nil {
		uc.Logger.WithError(err).Errorf("failed to validate register request : %v", err)
		return nil, err
	}

	// check the email first
	if _, err := uc.UserUsecase.GetUserByEmail(ctx, request.Email); err == nil {
		uc.Logger.Warnf("Registration rejected, email in use: %s", request.Email)
		return nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicateRegistration, request.Email)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	hashPassword, err := security.HashPassword(request.Password)
	if err != nil {
		uc.Logger.WithError(err).Error("failed to hash password")
		return nil, err
	}

	newUser := &entity.User{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Password:  hashPassword,
		Role:      role,
	}
	created, err := uc.UserUsecase.CreateUser(ctx, newUser)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to save user : %v", err)
		return nil, err
	}

	uc.Logger.Infof("Success register user with id: %s", created.ID)
	return created, nil
}

func (uc *AuthUsecaseImpl) LoginUser(ctx context.Context, request *req.LoginRequest) (res.LoginResponse, error) {
	request.Email = normalizeEmail(request.Email)
	if err := validate(uc.Validate, request); err != nil {
		return res.LoginResponse{}, err
	}

	user, err := uc.UserUsecase.GetUserByEmail(ctx, request.Email)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return res.LoginResponse{}, err
		}
		security.CompareDummyPassword(request.Password)
		return res.LoginResponse{}, apperrors.ErrInvalidCredentials
	}

	if !security.ComparePassword(user.Password, request.Password) {
		uc.Logger.Warnf("Failed login for %s", request.Email)
		return res.LoginResponse{}, apperrors.ErrInvalidCredentials
	}

	token, err := uc.JWT.GenerateToken(user)
	if err != nil {
		uc.Logger.WithError(err).Errorf("failed to generate token = %v", err)
		return res.LoginResponse{}, err
	}
	return res.LoginResponse{Token: token}, nil
}

// EnsureAdmin is safe to run on every start: it only registers the admin
// when the email is unknown and no other admin exists.
func (uc *AuthUsecaseImpl) EnsureAdmin(ctx context.Context, email, password string) (*entity.User, error) {
	email = normalizeEmail(email)

	existing, err := uc.UserUsecase.GetUserByEmail(ctx, email)
	if err == nil {
		if !existing.IsAdmin() {
			return nil, fmt.Errorf("%w: %s is registered without the admin role", apperrors.ErrValidation, email)
		}
		uc.Logger.Infof("Admin user already present: %s", email)
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	admins, err := uc.UserUsecase.CountAdmins(ctx)
	if err != nil {
		return nil, err
	}
	if admins > 0 {
		uc.Logger.Errorf("Refusing to create admin %s, %d admin user(s) already present", email, admins)
		return nil, fmt.Errorf("%w: an admin already exists under another email, not creating %s", apperrors.ErrValidation, email)
	}

	admin, err := uc.RegisterUser(ctx, &req.RegisterRequest{
		FirstName: "Admin",
		LastName:  "Admin",
		Email:     email,
		Password:  password,
	}, enum.RoleAdmin)
	if err != nil {
		return nil, err
	}
	uc.Logger.Infof("Admin user created with email: %s", admin.Email)
	return admin, nil
}
