package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PainelServices01/user-admin-GO/internal/gate"
)

// GateMiddleware aplica o gate de acesso às rotas de página e à subárvore
// /api/users. Os handlers repetem as próprias checagens de autorização;
// as duas camadas são independentes de propósito.
func GateMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path

		if !gate.Matches(path) {
			c.Next()
			return
		}

		// O cadastro é aberto por contrato da API: sem essa exceção o gate
		// mandaria o POST anônimo de registro para a tela de login.
		if c.Request.Method == http.MethodPost && path == "/api/users" {
			c.Next()
			return
		}

		switch gate.Decide(path, PrincipalFrom(c)) {
		case gate.ActionRedirectLogin:
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		case gate.ActionRedirectDashboard:
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
		default:
			c.Next()
		}
	}
}
