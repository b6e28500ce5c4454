package user

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/PainelServices01/user-admin-GO/internal/audit"
	domain "github.com/PainelServices01/user-admin-GO/internal/domain/user"
	"github.com/PainelServices01/user-admin-GO/internal/httperr"
	"github.com/PainelServices01/user-admin-GO/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateUserInput struct {
	Name     string
	Email    string
	Password string

	CEP   string
	State string
	City  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateUser struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateUser(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateUser {
	return &CreateUser{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateUser) Execute(
	ctx context.Context,
	in CreateUserInput,
) (*models.User, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))

	// Checagem prévia de duplicidade; o índice único cobre a corrida.
	if _, err := uc.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, httperr.ErrBusiness(httperr.CodeEmailTaken)
	} else if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:         in.Name,
		Email:        email,
		PasswordHash: string(hashed),
		CEP:          nilIfEmpty(in.CEP),
		State:        nilIfEmpty(in.State),
		City:         nilIfEmpty(in.City),
		Role:         domain.RoleUser,
	}

	if err := uc.repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionUserCreated,
		Entity:   audit.EntityUser,
		EntityID: &user.ID,
	})

	return &user, nil
}

func nilIfEmpty(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
