package config

import (
	"context"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"group-chat-app/config/common"
	"group-chat-app/config/logger"
	"group-chat-app/enum"
	"group-chat-app/handler"
	"group-chat-app/middleware"
	"group-chat-app/repository"
	"group-chat-app/routes"
	"group-chat-app/security"
	"group-chat-app/usecase"
	"os"
	"os/signal"
	"syscall"
	"time"
)

type AppConfig struct {
	*fiber.App
	*validator.Validate
	*logrus.Logger
	*DBConfig
	*security.JWT
	*middleware.Middleware
	*common.Config
}

// Usecases is the wired core, returned so the bootstrap and shutdown hooks
// can reach it.
type Usecases struct {
	Auth       usecase.AuthUsecase
	User       usecase.UserUsecase
	Membership usecase.MembershipUsecase
	Message    usecase.MessageUsecase
}

func RunServer() {
	newConfig := common.NewViper()
	log := NewLogger(newConfig)
	levelName, logDir := newConfig.GetLogConfig()
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		level = zerolog.InfoLevel
	}
	appLogger := logger.NewLogger(logDir, level)

	newDB, err := NewDB(newConfig, appLogger)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}
	defer newDB.Close()

	app := NewFiber(newConfig)
	newValidator := NewValidator()
	newJWT := security.NewJWT(newConfig)
	newMiddleware := middleware.NewMiddleware(newConfig, newJWT, log)

	usecases := App(&AppConfig{
		App:        app,
		Validate:   newValidator,
		Logger:     log,
		DBConfig:   newDB,
		JWT:        newJWT,
		Middleware: newMiddleware,
		Config:     newConfig,
	})

	adminEmail, adminPassword, deleteAdminOnShutdown := newConfig.GetAdminConfig()
	admin, err := usecases.Auth.EnsureAdmin(context.Background(), adminEmail, adminPassword)
	if err != nil {
		log.WithError(err).Fatal("Failed to ensure admin user")
	}

	go func() {
		_, port := newConfig.GetAppConfig()
		if err := app.Listen(":" + port); err != nil {
			log.WithError(err).Errorf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.WithError(err).Error("Failed to shutdown server")
	}

	if deleteAdminOnShutdown {
		system := security.Caller{UserID: admin.ID, Email: admin.Email, Role: enum.RoleAdmin}
		if _, err := usecases.User.DeleteAdmin(context.Background(), system, admin.Email); err != nil {
			log.WithError(err).Error("Failed to delete admin on shutdown")
		}
	}
}

func App(aC *AppConfig) Usecases {
	newUserRepository := repository.NewUserRepository()
	newChatRoomRepository := repository.NewChatRoomRepository()
	newMembershipRepository := repository.NewMembershipRepository()
	newMessageRepository := repository.NewMessageRepository()

	newMembershipUsecase := usecase.NewMembershipUsecase(newChatRoomRepository, newMembershipRepository, newMessageRepository, newUserRepository, aC.Validate, aC.GetDB(), aC.Logger)
	newMessageUsecase := usecase.NewMessageUsecase(newMessageRepository, newUserRepository, newMembershipUsecase, aC.Validate, aC.GetDB(), aC.Logger)
	newUserUsecase := usecase.NewUserUsecase(newUserRepository, newMembershipUsecase, newMessageUsecase, aC.GetDB(), aC.DBConfig.AppLogger)
	newAuthUsecase := usecase.NewAuthUsecase(newUserUsecase, aC.Validate, aC.Logger, aC.JWT)

	route := routes.ConfigRoute{
		App:             aC.App,
		Middleware:      aC.Middleware,
		AuthHandler:     handler.NewAuthHandler(newAuthUsecase, newUserUsecase, aC.Logger),
		UserHandler:     handler.NewUserHandler(newUserUsecase, aC.Logger),
		ChatRoomHandler: handler.NewChatRoomHandler(newMembershipUsecase, aC.Logger),
		MessageHandler:  handler.NewMessageHandler(newMessageUsecase, aC.Logger),
	}
	route.GetRoute()

	return Usecases{
		Auth:       newAuthUsecase,
		User:       newUserUsecase,
		Membership: newMembershipUsecase,
		Message:    newMessageUsecase,
	}
}
