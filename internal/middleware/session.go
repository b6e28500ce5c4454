package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/PainelServices01/user-admin-GO/internal/auth"
)

const (
	ContextPrincipal = "principal"

	// SessionCookie guarda o token para navegação de páginas; clientes de API
	// podem mandar o mesmo token via Authorization: Bearer.
	SessionCookie = "session_token"
)

// SessionMiddleware extrai e verifica o token de sessão (cookie primeiro,
// header depois). Nunca aborta: requisição sem token válido segue adiante
// sem principal no contexto.
func SessionMiddleware(mgr *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := ""

		if cookie, err := c.Cookie(SessionCookie); err == nil {
			token = cookie
		}

		if token == "" {
			authHeader := c.GetHeader("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
				token = parts[1]
			}
		}

		if principal := mgr.Verify(token); principal != nil {
			c.Set(ContextPrincipal, principal)
		}

		c.Next()
	}
}

// PrincipalFrom devolve o principal da requisição ou nil.
func PrincipalFrom(c *gin.Context) *auth.Principal {
	val, exists := c.Get(ContextPrincipal)
	if !exists {
		return nil
	}

	principal, ok := val.(*auth.Principal)
	if !ok {
		return nil
	}
	return principal
}
