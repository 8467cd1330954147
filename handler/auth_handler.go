package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"group-chat-app/dto/req"
	"group-chat-app/dto/res"
	"group-chat-app/enum"
	"group-chat-app/middleware"
	"group-chat-app/usecase"
)

type AuthHandler struct {
	usecase.AuthUsecase
	UserUsecase usecase.UserUsecase
	*logrus.Logger
}

func NewAuthHandler(authUseCase usecase.AuthUsecase, userUsecase usecase.UserUsecase, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{AuthUsecase: authUseCase, UserUsecase: userUsecase, Logger: logger}
}

func (handler *AuthHandler) RegisterUser(ctx *fiber.Ctx) error {
	// parse request
	payload := new(req.RegisterRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	// public registration never grants admin
	user, err := handler.AuthUsecase.RegisterUser(ctx.UserContext(), payload, enum.RoleMember)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to register new user: %v", err)
		return err
	}
	// response
	response := res.CommonResponse[res.UserResponse]{
		Message:    "Successfully to register new user",
		StatusCode: fiber.StatusCreated,
		Data:       res.FromUser(*user),
	}
	handler.Logger.Infof("Success register user with id: %s", user.ID)
	return ctx.Status(fiber.StatusCreated).JSON(response)
}

func (handler *AuthHandler) LoginUser(ctx *fiber.Ctx) error {
	payload := new(req.LoginRequest)
	if err := ctx.BodyParser(payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	loginResponse, err := handler.AuthUsecase.LoginUser(ctx.UserContext(), payload)
	if err != nil {
		handler.Logger.WithError(err).Errorf("Failed to login: %v", err)
		return err
	}
	response := res.CommonResponse[res.LoginResponse]{
		Message:    "Successfully to login",
		StatusCode: fiber.StatusOK,
		Data:       loginResponse,
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}

func (handler *AuthHandler) GetUserByToken(ctx *fiber.Ctx) error {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		return fiber.ErrUnauthorized
	}

	user, err := handler.UserUsecase.GetUserByID(ctx.UserContext(), caller.UserID)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get user by token")
		return err
	}

	response := res.CommonResponse[res.UserResponse]{
		Message:    "Successfully To Get User By ID",
		StatusCode: fiber.StatusOK,
		Data:       res.FromUser(*user),
	}
	return ctx.Status(fiber.StatusOK).JSON(response)
}
