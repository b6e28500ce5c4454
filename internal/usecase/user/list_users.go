package user

import (
	"context"

	domain "github.com/PainelServices01/user-admin-GO/internal/domain/user"
	"github.com/PainelServices01/user-admin-GO/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type ListUsersInput struct {
	ActorID   uint
	ActorRole string
}

// ======================================================
// USE CASE
// ======================================================

type ListUsers struct {
	repo domain.Repository
}

func NewListUsers(repo domain.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ListUsers) Execute(
	ctx context.Context,
	in ListUsersInput,
) ([]models.User, error) {

	if err := domain.CanManage(in.ActorRole); err != nil {
		return nil, err
	}

	return uc.repo.ListUsers(ctx)
}
