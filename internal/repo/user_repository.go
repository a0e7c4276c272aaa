package repo

import (
	"errors"

	"github.com/moneta-app/finance-tracker/internal/models"
)

type UserRepository interface {
	GetByUsername(username string) (models.User, error)
	CreateUser(u models.User) (models.User, error)
}

var ErrUserNotFound = errors.New("user not found")
