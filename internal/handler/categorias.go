package handler

import (
	"net/http"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/service"

	"github.com/gin-gonic/gin"
)

type CategoriasHandler struct{ svc service.CategoriaService }

func NewCategoriasHandler(svc service.CategoriaService) *CategoriasHandler {
	return &CategoriasHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar categoria
// @Tags         categorias
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarCategoriaRequest true "Dados da categoria"
// @Success      201  {object} dto.CategoriaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /api/produtos/categorias [post]
func (h *CategoriasHandler) Criar(c *gin.Context) {
	var req dto.CriarCategoriaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Criar(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar categorias ativas
// @Tags         categorias
// @Produce      json
// @Success      200 {object} dto.CategoriaListResponse
// @Router       /api/produtos/categorias [get]
func (h *CategoriasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
