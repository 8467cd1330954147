package config

import (
	"github.com/sirupsen/logrus"
	"group-chat-app/config/common"
)

func NewLogger(cfg *common.Config) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	levelName, _ := cfg.GetLogConfig()
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, falling back to info", levelName)
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
