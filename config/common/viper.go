package common

import (
	"github.com/spf13/viper"
	"strings"
	"time"
)

type Config struct {
	Viper *viper.Viper
}

func NewViper() *Config {
	config := viper.New()
	config.SetConfigFile(".env")
	config.SetConfigType("env")
	config.AddConfigPath("../")
	config.AutomaticEnv()
	setDefaults(config)

	// a missing .env is fine, the environment still applies
	_ = config.ReadInConfig()
	return &Config{Viper: config}
}

func setDefaults(config *viper.Viper) {
	config.SetDefault("APP_NAME", "group-chat-app")
	config.SetDefault("APP_PORT", "7720")
	config.SetDefault("DB_HOSTNAME", "localhost")
	config.SetDefault("DB_PORT", "5432")
	config.SetDefault("DB_TIMEZONE", "UTC")
	config.SetDefault("JWT_TTL", "1h")
	config.SetDefault("ADMIN_EMAIL", "admin@mail.com")
	config.SetDefault("ADMIN_PASSWORD", "admin-pw")
	config.SetDefault("ADMIN_DELETE_ON_SHUTDOWN", false)
	config.SetDefault("CORS_ALLOW_ORIGINS", "http://localhost:8080")
	config.SetDefault("LOG_LEVEL", "info")
	config.SetDefault("LOG_DIR", "logs")
}

func (c *Config) GetAppConfig() (appName, port string) {
	return c.Viper.GetString("APP_NAME"), c.Viper.GetString("APP_PORT")
}

func (c *Config) GetDatabaseConfig() (dbHost, dbUser, dbPassword, dbName, dbPort, dbTimeZone string) {
	dbHost = c.Viper.GetString("DB_HOSTNAME")
	dbUser = c.Viper.GetString("DB_USER")
	dbPassword = c.Viper.GetString("DB_PASSWORD")
	dbName = c.Viper.GetString("DB_NAME")
	dbPort = c.Viper.GetString("DB_PORT")
	dbTimeZone = c.Viper.GetString("DB_TIMEZONE")

	return dbHost, dbUser, dbPassword, dbName, dbPort, dbTimeZone
}

func (c *Config) GetJwtConfig() []byte {
	jwtSecret := c.Viper.GetString("JWT_SECRET")
	return []byte(jwtSecret)
}

func (c *Config) GetJwtTTL() time.Duration {
	ttl := c.Viper.GetDuration("JWT_TTL")
	if ttl <= 0 {
		return time.Hour
	}
	return ttl
}

func (c *Config) GetAdminConfig() (email, password string, deleteOnShutdown bool) {
	return c.Viper.GetString("ADMIN_EMAIL"), c.Viper.GetString("ADMIN_PASSWORD"), c.Viper.GetBool("ADMIN_DELETE_ON_SHUTDOWN")
}

func (c *Config) GetCorsOrigins() string {
	origins := strings.Split(c.Viper.GetString("CORS_ALLOW_ORIGINS"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return strings.Join(origins, ",")
}

func (c *Config) GetLogConfig() (level, dir string) {
	return c.Viper.GetString("LOG_LEVEL"), c.Viper.GetString("LOG_DIR")
}
