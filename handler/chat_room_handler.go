package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"group-chat-app/dto/req"
	"group-chat-app/dto/res"
	"group-chat-app/entity"
	"group-chat-app/usecase"
)

type ChatRoomHandler struct {
	usecase.MembershipUsecase
	*logrus.Logger
}

func NewChatRoomHandler(membershipUsecase usecase.MembershipUsecase, logger *logrus.Logger) *ChatRoomHandler {
	return &ChatRoomHandler{MembershipUsecase: membershipUsecase, Logger: logger}
}

func (handler *ChatRoomHandler) GetAllChatRooms(c *fiber.Ctx) error {
	chatRooms, err := handler.MembershipUsecase.ListAllRooms(c.UserContext())
	if err != nil {
		return err
	}
	return chatRoomsResponse(c, "Successfully to Get All Chat Rooms", chatRooms)
}

func (handler *ChatRoomHandler) GetChatRoomsByUserID(c *fiber.Ctx) error {
	chatRooms, err := handler.MembershipUsecase.ListRoomsForUser(c.UserContext(), c.Params("userId"))
	if err != nil {
		handler.Logger.WithError(err).Error("Failed to get chat rooms by user ID")
		return err
	}
	return chatRoomsResponse(c, "Successfully to Get Chat Rooms of User", chatRooms)
}

func (handler *ChatRoomHandler) GetChatRoomByID(c *fiber.Ctx) error {
	chatRoom, err := handler.MembershipUsecase.GetRoom(c.UserContext(), c.Params("chatRoomId"))
	if err != nil {
		return err
	}
	return chatRoomResponse(c, fiber.StatusOK, "Successfully to Get Chat Room", chatRoom)
}

func (handler *ChatRoomHandler) GetMembers(c *fiber.Ctx) error {
	users, err := handler.MembershipUsecase.ListMembers(c.UserContext(), c.Params("chatRoomId"))
	if err != nil {
		return err
	}
	return usersResponse(c, "Successfully to Get Members", users)
}

func (handler *ChatRoomHandler) GetNonMembers(c *fiber.Ctx) error {
	users, err := handler.MembershipUsecase.ListNonMembers(c.UserContext(), c.Params("chatRoomId"))
	if err != nil {
		return err
	}
	return usersResponse(c, "Successfully to Get Non Members", users)
}

func (handler *ChatRoomHandler) GetFriends(c *fiber.Ctx) error {
	users, err := handler.MembershipUsecase.ListCoMembers(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return usersResponse(c, "Successfully to Get Users Sharing a Chat Room", users)
}

func (handler *ChatRoomHandler) GetNotFriends(c *fiber.Ctx) error {
	users, err := handler.MembershipUsecase.ListNonCoMembers(c.UserContext(), c.Params("userId"))
	if err != nil {
		return err
	}
	return usersResponse(c, "Successfully to Get Users Not Sharing a Chat Room", users)
}

func (handler *ChatRoomHandler) CreateChatRoom(c *fiber.Ctx) error {
	payload := new(req.ChatRoomRequest)
	if err := c.BodyParser(payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	chatRoom, err := handler.MembershipUsecase.CreateRoom(c.UserContext(), payload)
	if err != nil {
		return err
	}
	return chatRoomResponse(c, fiber.StatusCreated, "Successfully to Create Chat Room", chatRoom)
}

func (handler *ChatRoomHandler) CreateChatRoomAndAddUsers(c *fiber.Ctx) error {
	payload := new(req.ChatRoomRequest)
	if err := c.BodyParser(payload); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	chatRoom, err := handler.MembershipUsecase.CreateRoomWithMembers(c.UserContext(), payload)
	if err != nil {
		return err
	}
	return chatRoomResponse(c, fiber.StatusCreated, "Successfully to Create Chat Room With Members", chatRoom)
}

func (handler *ChatRoomHandler) AddUserToChatRoom(c *fiber.Ctx) error {
	chatRoom, err := handler.MembershipUsecase.AddMember(c.UserContext(), c.Params("chatRoomId"), c.Params("userId"))
	if err != nil {
		return err
	}
	return chatRoomResponse(c, fiber.StatusOK, "Successfully to Add User to Chat Room", chatRoom)
}

func (handler *ChatRoomHandler) DeleteUserFromChatRoom(c *fiber.Ctx) error {
	if err := handler.MembershipUsecase.RemoveMember(c.UserContext(), c.Params("chatRoomId"), c.Params("userId")); err != nil {
		return err
	}
	return messageResponse(c, "User deleted from chat room")
}

func (handler *ChatRoomHandler) DeleteChatRoomByID(c *fiber.Ctx) error {
	if err := handler.MembershipUsecase.DeleteRoom(c.UserContext(), c.Params("chatRoomId")); err != nil {
		return err
	}
	return messageResponse(c, "Chat room deleted")
}

func (handler *ChatRoomHandler) DeleteAllChatRooms(c *fiber.Ctx) error {
	if err := handler.MembershipUsecase.DeleteAllRooms(c.UserContext()); err != nil {
		return err
	}
	return messageResponse(c, "All chat rooms deleted")
}

func chatRoomResponse(c *fiber.Ctx, status int, message string, chatRoom *entity.ChatRoom) error {
	return c.Status(status).JSON(res.CommonResponse[res.ChatRoomResponse]{
		Message:    message,
		StatusCode: status,
		Data:       res.FromChatRoom(*chatRoom),
	})
}

func chatRoomsResponse(c *fiber.Ctx, message string, chatRooms []entity.ChatRoom) error {
	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.ChatRoomResponse]{
		Message:    message,
		StatusCode: fiber.StatusOK,
		Data:       res.FromChatRooms(chatRooms),
	})
}

func usersResponse(c *fiber.Ctx, message string, users []entity.User) error {
	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[[]res.UserResponse]{
		Message:    message,
		StatusCode: fiber.StatusOK,
		Data:       res.FromUsers(users),
	})
}

func messageResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(res.CommonResponse[any]{
		Message:    message,
		StatusCode: fiber.StatusOK,
	})
}
