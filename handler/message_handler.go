package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"group-chat-app/dto/req"
	"group-chat-app/dto/res"
	"group-chat-app/usecase"
)

type MessageHandler struct {
	usecase.MessageUsecase
	*logrus.Logger
}

func NewMessageHandler(messageUsecase usecase.MessageUsecase, logger *logrus.Logger) *MessageHandler {
	return &MessageHandler{MessageUsecase: messageUsecase, Logger: logger}
}

func (handler *MessageHandler) GetAllMessages(c *fiber.Ctx) error {
	messages, err := handler.MessageUsecase.ListAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.MessageResponse]{
		Message:    "Successfully to Get All Messages",
		StatusCode: fiber.StatusOK,
		Data:       res.FromMessages(messages),
	})
}

func (handler *MessageHandler) GetMessageByID(c *fiber.Ctx) error {
	message, err := handler.MessageUsecase.GetByID(c.UserContext(), c.Params("messageId"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.MessageResponse]{
		Message:    "Successfully to Get Message",
		StatusCode: fiber.StatusOK,
		Data:       res.FromMessage(*message),
	})
}

func (handler *MessageHandler) GetMessagesByChatRoomID(c *fiber.Ctx) error {
	chatRoomId := c.Params("chatRoomId")
	messages, err := handler.MessageUsecase.ListByRoom(c.UserContext(), chatRoomId)
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get messages by chat room ID")
		return err
	}
	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.MessageResponse]{
		Message:    "Successfully to Get Messages of Chat Room",
		StatusCode: fiber.StatusOK,
		Data:       res.FromMessages(messages),
	})
}

func (handler *MessageHandler) GetLastMessageInChatRoom(c *fiber.Ctx) error {
	message, err := handler.MessageUsecase.LastInRoom(c.UserContext(), c.Params("chatRoomId"))
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[res.MessageResponse]{
		Message:    "Successfully to Get Last Message",
		StatusCode: fiber.StatusOK,
		Data:       res.FromMessage(*message),
	})
}

func (handler *MessageHandler) CreateMessage(c *fiber.Ctx) error {
	payload := new(req.MessageRequest)
	if err := c.BodyParser(payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	message, err := handler.MessageUsecase.CreateMessage(c.UserContext(), payload)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(res.CommonResponse[res.MessageResponse]{
		Message:    "Successfully to Create Message",
		StatusCode: fiber.StatusCreated,
		Data:       res.FromMessage(*message),
	})
}

func (handler *MessageHandler) DeleteMessageByID(c *fiber.Ctx) error {
	if err := handler.MessageUsecase.DeleteByID(c.UserContext(), c.Params("messageId")); err != nil {
		return err
	}
	return messageResponse(c, "Message deleted successfully")
}

func (handler *MessageHandler) DeleteMessagesByChatRoomID(c *fiber.Ctx) error {
	if err := handler.MessageUsecase.DeleteAllInRoom(c.UserContext(), c.Params("chatRoomId")); err != nil {
		return err
	}
	return messageResponse(c, "Messages deleted successfully")
}
