package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WebHandler serve as páginas do painel; os dados vêm da API JSON via fetch.
type WebHandler struct{}

func NewWebHandler() *WebHandler {
	return &WebHandler{}
}

func (h *WebHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "Painel de Usuários",
	})
}

func (h *WebHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title": "Login",
	})
}

func (h *WebHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Title": "Cadastro",
	})
}

func (h *WebHandler) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title": "Dashboard",
	})
}

func (h *WebHandler) AdminPanel(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", gin.H{
		"Title": "Administração",
	})
}
