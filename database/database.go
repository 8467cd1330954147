package database

import (
	"fmt"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
	"group-chat-app/config/logger"
	"group-chat-app/entity"
	"time"
)

// NewGormConfig is shared by the postgres store and the sqlite test store so
// both resolve the same table names.
func NewGormConfig() *gorm.Config {
	return &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   "t_",
			SingularTable: true,
		},
		TranslateError: true,
	}
}

func Open(dialector gorm.Dialector, log *logger.AppLogger) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, NewGormConfig())
	if err != nil {
		log.Http.Error.Error().Err(err).Msg("failed to connect to database")
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get connection pool: %w", err)
	}
	conn.SetMaxIdleConns(10)
	conn.SetMaxOpenConns(100)
	conn.SetConnMaxLifetime(time.Second * time.Duration(300))

	if err := Migrate(db); err != nil {
		log.Http.Error.Error().Err(err).Msg("failed run migration")
		return nil, err
	}

	log.Http.Info.Info().Str("dialect", dialector.Name()).Msg("Connection Opened to Database")
	return db, nil
}

func Migrate(db *gorm.DB) error {
	var user entity.User
	var chatRoom entity.ChatRoom
	var membership entity.Membership
	var message entity.Message
	if err := db.AutoMigrate(&user, &chatRoom, &membership, &message); err != nil {
		return fmt.Errorf("run migration: %w", err)
	}
	return nil
}
