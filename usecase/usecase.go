package usecase

import (
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
	apperrors "group-chat-app/errors"
	"strings"
)

// notFound maps a missing record onto ErrNotFound and leaves other errors alone.
func notFound(err error, kind, id string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s %s", apperrors.ErrNotFound, kind, id)
	}
	return err
}

// normalizeEmail gives the stored form of an address. Every lookup by email
// goes through it.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validate(v *validator.Validate, request interface{}) error {
	if err := v.Struct(request); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	return nil
}
