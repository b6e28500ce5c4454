package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/PainelServices01/user-admin-GO/internal/dto"
	"github.com/PainelServices01/user-admin-GO/internal/httperr"
	"github.com/PainelServices01/user-admin-GO/internal/httpresp"
	"github.com/PainelServices01/user-admin-GO/internal/middleware"
	"github.com/PainelServices01/user-admin-GO/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		httperr.Unauthorized(c, "Não autenticado.")
		return
	}

	var user models.User
	if err := h.db.First(&user, principal.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "Usuário não encontrado.")
			return
		}
		httperr.Internal(c, "Erro ao buscar usuário.")
		return
	}

	httpresp.OK(c, dto.NewUserDTO(&user))
}
