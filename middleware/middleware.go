package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"group-chat-app/config/common"
	"group-chat-app/dto/res"
	"group-chat-app/security"
)

const (
	jwtContextKey    = "jwt"
	callerContextKey = "caller"
)

type Middleware struct {
	*common.Config
	*security.JWT
	Log *logrus.Logger
}

func NewMiddleware(config *common.Config, JWT *security.JWT, logger *logrus.Logger) *Middleware {
	return &Middleware{Config: config, JWT: JWT, Log: logger}
}

func (middleware *Middleware) JWTProtected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey: jwtware.SigningKey{JWTAlg: jwtware.HS512, Key: middleware.GetJwtConfig()},
		ContextKey: jwtContextKey,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			middleware.Log.WithError(err).Error("Failed to validate JWT")
			return c.Status(fiber.StatusUnauthorized).JSON(res.NewErrorResponse(fiber.StatusUnauthorized, "Token is not valid"))
		},
	})
}

// ExtractCaller puts a security.Caller in the locals. jwtware only checks the
// signature and expiry, so issuer and audience are verified here.
func (middleware *Middleware) ExtractCaller(c *fiber.Ctx) error {
	token, ok := c.Locals(jwtContextKey).(*jwt.Token)
	if !ok {
		return unauthorized(c, "Missing token")
	}
	caller, err := middleware.JWT.GetCallerFromToken(token.Raw)
	if err != nil {
		middleware.Log.WithError(err).Error("Failed to extract caller from token")
		return unauthorized(c, "Failed to extract user ID from token")
	}

	c.Locals(callerContextKey, caller)
	return c.Next()
}

func (middleware *Middleware) AdminOnly(c *fiber.Ctx) error {
	caller, ok := CallerFrom(c)
	if !ok || !caller.IsAdmin() {
		middleware.Log.Warnf("Admin route %s denied for %s", c.Path(), caller.UserID)
		return c.Status(fiber.StatusForbidden).JSON(res.NewErrorResponse(fiber.StatusForbidden, "Admin role required"))
	}
	return c.Next()
}

func CallerFrom(c *fiber.Ctx) (security.Caller, bool) {
	caller, ok := c.Locals(callerContextKey).(security.Caller)
	return caller, ok
}

// WithCaller is used by tests and internal callers to skip token parsing.
func WithCaller(caller security.Caller) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(callerContextKey, caller)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(res.NewErrorResponse(fiber.StatusUnauthorized, message))
}
