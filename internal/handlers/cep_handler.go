package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/PainelServices01/user-admin-GO/internal/cep"
	"github.com/PainelServices01/user-admin-GO/internal/httperr"
	"github.com/PainelServices01/user-admin-GO/internal/httpresp"
)

type CEPHandler struct {
	client *cep.Client
}

func NewCEPHandler(client *cep.Client) *CEPHandler {
	return &CEPHandler{client: client}
}

func (h *CEPHandler) Lookup(c *gin.Context) {
	address, err := h.client.Lookup(c.Request.Context(), c.Query("cep"))
	if err != nil {
		switch {
		case httperr.IsBusiness(err, cep.CodeRequired):
			httperr.BadRequest(c, "CEP não fornecido.")
		case httperr.IsBusiness(err, cep.CodeInvalid):
			httperr.BadRequest(c, "CEP inválido.")
		case httperr.IsBusiness(err, cep.CodeNotFound):
			httperr.NotFound(c, "CEP não encontrado.")
		default:
			httperr.Internal(c, "Erro ao buscar CEP.")
		}
		return
	}

	httpresp.OK(c, address)
}
