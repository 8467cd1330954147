package security

import (
	"github.com/golang-jwt/jwt/v5"
	"group-chat-app/config/common"
	"group-chat-app/entity"
	"group-chat-app/enum"
	"time"
)

const issuer = "group-chat-app"

type JWT struct {
	config *common.Config
}

// Caller is the identity carried by a verified token.
type Caller struct {
	UserID string
	Email  string
	Role   enum.Role
}

func (c Caller) IsAdmin() bool {
	return c.Role == enum.RoleAdmin
}

func NewJWT(config *common.Config) *JWT {
	return &JWT{config: config}
}

func (j *JWT) GenerateToken(user *entity.User) (string, error) {
	secretKey := j.config.GetJwtConfig()

	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    string(user.Role),
		"aud":     issuer,
		"iss":     issuer,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(j.config.GetJwtTTL()).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return token.SignedString(secretKey)
}

func (j *JWT) VerifyJwtToken(token string) (jwt.MapClaims, error) {
	secretKey := j.config.GetJwtConfig()

	tokenParse, err := jwt.Parse(token, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return secretKey, nil
	}, jwt.WithIssuer(issuer), jwt.WithAudience(issuer))

	if err != nil {
		return nil, err
	}

	if claims, ok := tokenParse.Claims.(jwt.MapClaims); ok && tokenParse.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenInvalidClaims
}

func (j *JWT) GetCallerFromToken(token string) (Caller, error) {
	claims, err := j.VerifyJwtToken(token)
	if err != nil {
		return Caller{}, err
	}
	return CallerFromClaims(claims)
}

func CallerFromClaims(claims jwt.MapClaims) (Caller, error) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Caller{}, jwt.ErrTokenInvalidClaims
	}
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)

	return Caller{UserID: userID, Email: email, Role: enum.Role(role)}, nil
}
