package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PainelServices01/user-admin-GO/internal/dto"
	"github.com/PainelServices01/user-admin-GO/internal/httperr"
	"github.com/PainelServices01/user-admin-GO/internal/httpresp"
	"github.com/PainelServices01/user-admin-GO/internal/middleware"
	ucUser "github.com/PainelServices01/user-admin-GO/internal/usecase/user"
)

type UserHandler struct {
	listUC   *ucUser.ListUsers
	getUC    *ucUser.GetUser
	createUC *ucUser.CreateUser
	updateUC *ucUser.UpdateUser
	deleteUC *ucUser.DeleteUser
}

func NewUserHandler(
	listUC *ucUser.ListUsers,
	getUC *ucUser.GetUser,
	createUC *ucUser.CreateUser,
	updateUC *ucUser.UpdateUser,
	deleteUC *ucUser.DeleteUser,
) *UserHandler {
	return &UserHandler{
		listUC:   listUC,
		getUC:    getUC,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
	}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`

	CEP   string `json:"cep"`
	State string `json:"state"`
	City  string `json:"city"`
}

type UpdateUserRequest struct {
	Name  string `json:"name"`
	CEP   string `json:"cep"`
	State string `json:"state"`
	City  string `json:"city"`
	Role  string `json:"role"`
}

// ======================================================
// CREATE (cadastro aberto)
// ======================================================

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Campos obrigatórios não preenchidos.")
		return
	}

	user, err := h.createUC.Execute(c.Request.Context(), ucUser.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		CEP:      req.CEP,
		State:    req.State,
		City:     req.City,
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeEmailTaken) {
			httperr.Conflict(c, "Email já cadastrado.")
			return
		}
		httperr.Internal(c, "Erro ao cadastrar usuário.")
		return
	}

	httpresp.Created(c, dto.NewCreatedUserDTO(user))
}

// ======================================================
// LIST (apenas admin)
// ======================================================

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.listUC.Execute(c.Request.Context(), ucUser.ListUsersInput{
		ActorID:   actorID(c),
		ActorRole: actorRole(c),
	})
	if err != nil {
		if httperr.IsBusiness(err, httperr.CodeForbidden) {
			httperr.Forbidden(c, "Não autorizado.")
			return
		}
		httperr.Internal(c, "Erro ao buscar usuários.")
		return
	}

	httpresp.OK(c, dto.NewUserList(users))
}

// ======================================================
// GET (próprio usuário ou admin)
// ======================================================

func (h *UserHandler) Get(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		httperr.Unauthorized(c, "Não autenticado.")
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.getUC.Execute(c.Request.Context(), ucUser.GetUserInput{
		ActorID:   principal.UserID,
		ActorRole: principal.Role,
		TargetID:  id,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeForbidden):
			httperr.Forbidden(c, "Não autorizado.")
		case httperr.IsBusiness(err, httperr.CodeNotFound):
			httperr.NotFound(c, "Usuário não encontrado.")
		default:
			httperr.Internal(c, "Erro ao buscar usuário.")
		}
		return
	}

	httpresp.OK(c, dto.NewUserDTO(user))
}

// ======================================================
// UPDATE (próprio usuário ou admin; role só por admin)
// ======================================================

func (h *UserHandler) Update(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)
	if principal == nil {
		httperr.Unauthorized(c, "Não autenticado.")
		return
	}

	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Dados inválidos na requisição.")
		return
	}

	user, err := h.updateUC.Execute(c.Request.Context(), ucUser.UpdateUserInput{
		ActorID:   principal.UserID,
		ActorRole: principal.Role,
		TargetID:  id,
		Name:      req.Name,
		CEP:       req.CEP,
		State:     req.State,
		City:      req.City,
		Role:      req.Role,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeForbidden):
			httperr.Forbidden(c, "Não autorizado.")
		case httperr.IsBusiness(err, httperr.CodeNameRequired):
			httperr.BadRequest(c, "Nome é obrigatório.")
		case httperr.IsBusiness(err, httperr.CodeNotFound):
			httperr.NotFound(c, "Usuário não encontrado.")
		default:
			httperr.Internal(c, "Erro ao atualizar usuário.")
		}
		return
	}

	httpresp.OK(c, dto.NewUserDTO(user))
}

// ======================================================
// DELETE (apenas admin, nunca o último)
// ======================================================

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	err := h.deleteUC.Execute(c.Request.Context(), ucUser.DeleteUserInput{
		ActorID:   actorID(c),
		ActorRole: actorRole(c),
		TargetID:  id,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, httperr.CodeForbidden):
			httperr.Forbidden(c, "Não autorizado.")
		case httperr.IsBusiness(err, httperr.CodeNotFound):
			httperr.NotFound(c, "Usuário não encontrado.")
		case httperr.IsBusiness(err, httperr.CodeLastAdmin):
			httperr.BadRequest(c, "Não é possível excluir o último administrador.")
		default:
			httperr.Internal(c, "Erro ao excluir usuário.")
		}
		return
	}

	httpresp.Success(c)
}

// --------- Helpers ---------

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		httperr.BadRequest(c, "ID inválido.")
		return 0, false
	}
	return uint(id), true
}

// List e Delete seguem o original: sessão ausente cai na checagem de papel
// e devolve 403, não 401.
func actorID(c *gin.Context) uint {
	if p := middleware.PrincipalFrom(c); p != nil {
		return p.UserID
	}
	return 0
}

func actorRole(c *gin.Context) string {
	if p := middleware.PrincipalFrom(c); p != nil {
		return p.Role
	}
	return ""
}
