package repo

import (
	"errors"

	"github.com/charcuterie-certains/storefront-api/internal/models"
)

type UserRepository interface {
	GetByEmail(email string) (models.User, error)
	CreateUser(u models.User) (models.User, error)
}

var ErrUserNotFound = errors.New("user not found")

var ErrDuplicateEmail = errors.New("email already registered")
