package gate

import (
	"strings"

	"github.com/PainelServices01/user-admin-GO/internal/auth"
	dmUser "github.com/PainelServices01/user-admin-GO/internal/domain/user"
)

// ===============================
// Access Gate
// ===============================

type Action int

const (
	ActionAllow Action = iota
	ActionRedirectLogin
	ActionRedirectDashboard
)

// Rotas públicas: igualdade exata, prefixo não conta (/login/x não é público).
var publicPaths = []string{"/", "/login", "/register"}

func isPublicPath(path string) bool {
	for _, pp := range publicPaths {
		if path == pp {
			return true
		}
	}
	return false
}

// Decide classifica uma requisição de página já casada por Matches.
// As três checagens retornam cada uma imediatamente, nesta ordem.
func Decide(path string, principal *auth.Principal) Action {
	public := isPublicPath(path)
	adminScoped := strings.HasPrefix(path, "/admin")

	// Usuário não autenticado em rota protegida volta para o login.
	if !public && principal == nil {
		return ActionRedirectLogin
	}

	// Rota de admin exige papel admin.
	if adminScoped && (principal == nil || !dmUser.IsAdmin(principal.Role)) {
		return ActionRedirectDashboard
	}

	// Usuário autenticado em /login ou /register vai para o dashboard;
	// a raiz continua acessível.
	if public && principal != nil && path != "/" {
		return ActionRedirectDashboard
	}

	return ActionAllow
}

// Matches define em quais rotas o gate atua; fora delas a requisição
// passa direto.
func Matches(path string) bool {
	switch path {
	case "/", "/login", "/register", "/dashboard", "/admin", "/api/users":
		return true
	}
	return strings.HasPrefix(path, "/dashboard/") ||
		strings.HasPrefix(path, "/admin/") ||
		strings.HasPrefix(path, "/api/users/")
}
