package routes

import (
	"github.com/gofiber/fiber/v2"
	"group-chat-app/handler"
	"group-chat-app/middleware"
)

type ConfigRoute struct {
	App             *fiber.App
	Middleware      *middleware.Middleware
	AuthHandler     *handler.AuthHandler
	UserHandler     *handler.UserHandler
	ChatRoomHandler *handler.ChatRoomHandler
	MessageHandler  *handler.MessageHandler
}

func (rc *ConfigRoute) GetRoute() {
	rc.GetPublicRoute()
	rc.GetProtectedRoute(rc.Middleware.JWTProtected(), rc.Middleware.ExtractCaller)
}

func (rc *ConfigRoute) GetPublicRoute() {
	app := rc.App.Group("/api/v1")
	app.Post("/auth/register", rc.AuthHandler.RegisterUser)
	app.Post("/auth/login", rc.AuthHandler.LoginUser)
}

// GetProtectedRoute mounts everything behind the given auth chain.
func (rc *ConfigRoute) GetProtectedRoute(auth ...fiber.Handler) {
	app := rc.App.Group("/api/v1", auth...)
	admin := rc.Middleware.AdminOnly

	app.Get("/auth/me", rc.AuthHandler.GetUserByToken)

	app.Get("/users", rc.UserHandler.GetAllUsers)
	app.Delete("/users", admin, rc.UserHandler.DeleteAllUsers)
	app.Delete("/users/email/:email", admin, rc.UserHandler.DeleteUserByEmail)
	app.Get("/users/:userId", rc.UserHandler.GetUserByID)
	app.Delete("/users/:userId", admin, rc.UserHandler.DeleteUserByID)

	app.Get("/chatrooms", rc.ChatRoomHandler.GetAllChatRooms)
	app.Post("/chatrooms", rc.ChatRoomHandler.CreateChatRoom)
	app.Delete("/chatrooms", admin, rc.ChatRoomHandler.DeleteAllChatRooms)
	app.Post("/chatrooms/create-add", rc.ChatRoomHandler.CreateChatRoomAndAddUsers)
	app.Get("/chatrooms/user/:userId", rc.ChatRoomHandler.GetChatRoomsByUserID)
	app.Get("/chatrooms/filter/friends/:userId", rc.ChatRoomHandler.GetFriends)
	app.Get("/chatrooms/filter/not-friends/:userId", rc.ChatRoomHandler.GetNotFriends)
	app.Get("/chatrooms/:chatRoomId", rc.ChatRoomHandler.GetChatRoomByID)
	app.Delete("/chatrooms/:chatRoomId", admin, rc.ChatRoomHandler.DeleteChatRoomByID)
	app.Get("/chatrooms/:chatRoomId/members", rc.ChatRoomHandler.GetMembers)
	app.Get("/chatrooms/:chatRoomId/non-members", rc.ChatRoomHandler.GetNonMembers)
	app.Post("/chatrooms/:chatRoomId/users/:userId", rc.ChatRoomHandler.AddUserToChatRoom)
	app.Delete("/chatrooms/:chatRoomId/users/:userId", admin, rc.ChatRoomHandler.DeleteUserFromChatRoom)

	app.Get("/messages", rc.MessageHandler.GetAllMessages)
	app.Post("/messages", rc.MessageHandler.CreateMessage)
	app.Get("/messages/chatroom/:chatRoomId", rc.MessageHandler.GetMessagesByChatRoomID)
	app.Get("/messages/chatroom/:chatRoomId/last", rc.MessageHandler.GetLastMessageInChatRoom)
	app.Delete("/messages/chatroom/:chatRoomId", admin, rc.MessageHandler.DeleteMessagesByChatRoomID)
	app.Get("/messages/:messageId", rc.MessageHandler.GetMessageByID)
	app.Delete("/messages/:messageId", admin, rc.MessageHandler.DeleteMessageByID)
}
