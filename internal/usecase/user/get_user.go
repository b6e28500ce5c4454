package user

import (
	"context"

	domain "github.com/PainelServices01/user-admin-GO/internal/domain/user"
	"github.com/PainelServices01/user-admin-GO/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type GetUserInput struct {
	ActorID   uint
	ActorRole string

	TargetID uint
}

// ======================================================
// USE CASE
// ======================================================

type GetUser struct {
	repo domain.Repository
}

func NewGetUser(repo domain.Repository) *GetUser {
	return &GetUser{repo: repo}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *GetUser) Execute(
	ctx context.Context,
	in GetUserInput,
) (*models.User, error) {

	if err := domain.CanAccess(in.ActorID, in.ActorRole, in.TargetID); err != nil {
		return nil, err
	}

	return uc.repo.GetUserByID(ctx, in.TargetID)
}
