package user

import (
	"context"
	"strings"

	"github.com/PainelServices01/user-admin-GO/internal/audit"
	domain "github.com/PainelServices01/user-admin-GO/internal/domain/user"
	"github.com/PainelServices01/user-admin-GO/internal/httperr"
	"github.com/PainelServices01/user-admin-GO/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type UpdateUserInput struct {
	ActorID   uint
	ActorRole string

	TargetID uint

	Name  string
	CEP   string
	State string
	City  string

	// Role só é aplicado quando o ator é admin; para os demais o valor é
	// simplesmente descartado, sem erro.
	Role string
}

// ======================================================
// USE CASE
// ======================================================

type UpdateUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateUser(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateUser {
	return &UpdateUser{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *UpdateUser) Execute(
	ctx context.Context,
	in UpdateUserInput,
) (*models.User, error) {

	if err := domain.CanAccess(in.ActorID, in.ActorRole, in.TargetID); err != nil {
		return nil, err
	}

	if strings.TrimSpace(in.Name) == "" {
		return nil, httperr.ErrBusiness(httperr.CodeNameRequired)
	}

	user, err := uc.repo.GetUserByID(ctx, in.TargetID)
	if err != nil {
		return nil, err
	}

	// cep/state/city são sobrescritos sempre; vazio vira NULL.
	user.Name = in.Name
	user.CEP = nilIfEmpty(in.CEP)
	user.State = nilIfEmpty(in.State)
	user.City = nilIfEmpty(in.City)

	if domain.IsAdmin(in.ActorRole) && in.Role != "" {
		user.Role = in.Role
	}

	if err := uc.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ActorID,
		Action:   audit.ActionUserUpdated,
		Entity:   audit.EntityUser,
		EntityID: &user.ID,
	})

	return user, nil
}
