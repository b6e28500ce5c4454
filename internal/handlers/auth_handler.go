package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/PainelServices01/user-admin-GO/internal/audit"
	"github.com/PainelServices01/user-admin-GO/internal/auth"
	"github.com/PainelServices01/user-admin-GO/internal/dto"
	"github.com/PainelServices01/user-admin-GO/internal/httperr"
	"github.com/PainelServices01/user-admin-GO/internal/httpresp"
	"github.com/PainelServices01/user-admin-GO/internal/middleware"
	"github.com/PainelServices01/user-admin-GO/internal/models"
)

// Cookie de sessão vale o mesmo que o token: 24h.
const sessionCookieMaxAge = 24 * 60 * 60

type AuthHandler struct {
	db    *gorm.DB
	auth  *auth.Manager
	audit *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, mgr *auth.Manager, dispatcher *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{db: db, auth: mgr, audit: dispatcher}
}

// --------- Requests ---------

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos na requisição.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.Unauthorized(c, "Credenciais inválidas.")
			return
		}
		httperr.Internal(c, "Erro ao autenticar.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "Credenciais inválidas.")
		return
	}

	token, err := h.auth.Generate(&user)
	if err != nil {
		httperr.Internal(c, "Erro ao gerar token.")
		return
	}

	c.SetCookie(middleware.SessionCookie, token, sessionCookieMaxAge, "/", "", false, true)

	h.audit.Dispatch(audit.Event{
		ActorID:  &user.ID,
		Action:   audit.ActionUserLogin,
		Entity:   audit.EntityUser,
		EntityID: &user.ID,
	})

	c.JSON(http.StatusOK, gin.H{
		"user":  dto.NewUserDTO(&user),
		"token": token,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	httpresp.Success(c)
}
