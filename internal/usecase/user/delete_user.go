package user

import (
	"context"

	"github.com/PainelServices01/user-admin-GO/internal/audit"
	domain "github.com/PainelServices01/user-admin-GO/internal/domain/user"
	"github.com/PainelServices01/user-admin-GO/internal/httperr"
)

// ======================================================
// INPUT
// ======================================================

type DeleteUserInput struct {
	ActorID   uint
	ActorRole string

	TargetID uint
}

// ======================================================
// USE CASE
// ======================================================

type DeleteUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteUser(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteUser {
	return &DeleteUser{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *DeleteUser) Execute(
	ctx context.Context,
	in DeleteUserInput,
) error {

	if err := domain.CanManage(in.ActorRole); err != nil {
		return err
	}

	// Contagem e exclusão na mesma transação: duas exclusões concorrentes de
	// admins não conseguem derrubar o último juntas.
	err := uc.repo.Transaction(ctx, func(r domain.Repository) error {
		user, err := r.GetUserByID(ctx, in.TargetID)
		if err != nil {
			return err
		}

		if domain.IsAdmin(user.Role) {
			admins, err := r.CountAdmins(ctx)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return httperr.ErrBusiness(httperr.CodeLastAdmin)
			}
		}

		return r.DeleteUser(ctx, in.TargetID)
	})
	if err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ActorID,
		Action:   audit.ActionUserDeleted,
		Entity:   audit.EntityUser,
		EntityID: &in.TargetID,
	})

	return nil
}
