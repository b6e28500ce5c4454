package user

import (
	"context"

	"github.com/PainelServices01/user-admin-GO/internal/models"
)

type Repository interface {
	// -------- Read --------
	ListUsers(
		ctx context.Context,
	) ([]models.User, error)

	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	CountAdmins(
		ctx context.Context,
	) (int64, error)

	// -------- Write --------
	CreateUser(
		ctx context.Context,
		u *models.User,
	) error

	UpdateUser(
		ctx context.Context,
		u *models.User,
	) error

	DeleteUser(
		ctx context.Context,
		id uint,
	) error

	// -------- Atomicity --------
	Transaction(
		ctx context.Context,
		fn func(Repository) error,
	) error
}
