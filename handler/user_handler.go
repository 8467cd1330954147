package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"group-chat-app/dto/res"
	"group-chat-app/enum"
	"group-chat-app/usecase"
	"net/url"
)

type UserHandler struct {
	usecase.UserUsecase
	*logrus.Logger
}

func NewUserHandler(userUsecase usecase.UserUsecase, logger *logrus.Logger) *UserHandler {
	return &UserHandler{UserUsecase: userUsecase, Logger: logger}
}

func (handler *UserHandler) GetAllUsers(ctx *fiber.Ctx) error {
	users, err := handler.UserUsecase.GetAllUser(ctx.UserContext())
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to get all users")
		return err
	}

	responses := res.CommonResponse[[]res.UserResponse]{
		Message:    "Successfully To Get All User",
		StatusCode: fiber.StatusOK,
		Data:       res.FromUsers(users),
	}
	return ctx.Status(fiber.StatusOK).JSON(responses)
}

func (handler *UserHandler) GetUserByID(ctx *fiber.Ctx) error {
	user, err := handler.UserUsecase.GetUserByID(ctx.UserContext(), ctx.Params("userId"))
	if err != nil {
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[res.UserResponse]{
		Message:    "Successfully To Get User By ID",
		StatusCode: fiber.StatusOK,
		Data:       res.FromUser(*user),
	})
}

func (handler *UserHandler) DeleteUserByID(ctx *fiber.Ctx) error {
	outcome, err := handler.UserUsecase.DeleteByID(ctx.UserContext(), ctx.Params("userId"))
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to delete user")
		return err
	}
	return deleteOutcomeResponse(ctx, outcome)
}

func (handler *UserHandler) DeleteUserByEmail(ctx *fiber.Ctx) error {
	email, err := url.PathUnescape(ctx.Params("email"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid email")
	}
	outcome, err := handler.UserUsecase.DeleteByEmail(ctx.UserContext(), email)
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to delete user")
		return err
	}
	return deleteOutcomeResponse(ctx, outcome)
}

func (handler *UserHandler) DeleteAllUsers(ctx *fiber.Ctx) error {
	deleted, skipped, err := handler.UserUsecase.DeleteAllUsers(ctx.UserContext())
	if err != nil {
		handler.Logger.WithError(err).Errorln("Failed to delete all users")
		return err
	}
	return ctx.Status(fiber.StatusOK).JSON(res.CommonResponse[res.DeleteAllUsersResponse]{
		Message:    "All users deleted",
		StatusCode: fiber.StatusOK,
		Data:       res.DeleteAllUsersResponse{Deleted: deleted, Skipped: skipped},
	})
}

func deleteOutcomeResponse(ctx *fiber.Ctx, outcome enum.DeleteOutcome) error {
	status, message := fiber.StatusOK, "User deleted"
	switch outcome {
	case enum.SkippedAdminProtected:
		message = "Admin user is protected"
	case enum.NotFound:
		status, message = fiber.StatusNotFound, "User not found"
	}
	return ctx.Status(status).JSON(res.CommonResponse[res.DeleteUserResponse]{
		Message:    message,
		StatusCode: status,
		Data:       res.DeleteUserResponse{Outcome: outcome},
	})
}
