package user

import "github.com/PainelServices01/user-admin-GO/internal/httperr"

// ===============================
// User Roles
// ===============================

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

func IsAdmin(role string) bool {
	return role == RoleAdmin
}

// ===============================
// Authorization
// ===============================

// CanManage: apenas admin pode listar e excluir usuários.
func CanManage(actorRole string) error {
	if !IsAdmin(actorRole) {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}
	return nil
}

// CanAccess: o próprio usuário ou um admin podem ler/editar um registro.
func CanAccess(actorID uint, actorRole string, targetID uint) error {
	if actorID != targetID && !IsAdmin(actorRole) {
		return httperr.ErrBusiness(httperr.CodeForbidden)
	}
	return nil
}
