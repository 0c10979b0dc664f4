package handler

import (
	"net/http"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/apierror"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/service"

	"github.com/gin-gonic/gin"
)

type ProdutosHandler struct{ svc service.ProdutoService }

func NewProdutosHandler(svc service.ProdutoService) *ProdutosHandler {
	return &ProdutosHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar produto
// @Description  Cria um produto com imagens, variações e categorias. A margem de lucro é derivada dos preços.
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarProdutoRequest true "Dados do produto"
// @Success      201  {object} dto.ProdutoCriadoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /api/produtos [post]
func (h *ProdutosHandler) Criar(c *gin.Context) {
	var req dto.CriarProdutoRequest
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
// @Summary      Catálogo de produtos
// @Description  Lista pública e paginada de produtos ativos, com filtros de categoria, gênero, faixa etária e busca textual.
// @Tags         produtos
// @Produce      json
// @Param        categoria_id query int    false "Filtrar por categoria"
// @Param        genero       query string false "masculino | feminino | unissex"
// @Param        faixa_etaria query string false "RN, 0-3m, 1-2a, ..."
// @Param        q            query string false "Busca em nome, descrição e código"
// @Param        ordem        query string false "recentes | preco_asc | preco_desc | nome"
// @Success      200 {object} dto.ProdutoListResponse
// @Router       /api/produtos [get]
func (h *ProdutosHandler) Listar(c *gin.Context) {
	var filter dto.ProdutoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obter godoc
// @Summary      Detalhe de produto
// @Tags         produtos
// @Produce      json
// @Param        id path int true "ID do produto"
// @Success      200 {object} dto.ProdutoResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/produtos/{id} [get]
func (h *ProdutosHandler) Obter(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObterPorID(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atualizar godoc
// @Summary      Atualizar produto
// @Description  Patch explícito: campos ausentes permanecem inalterados; "categorias" substitui o conjunto inteiro.
// @Tags         produtos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int                         true "ID do produto"
// @Param        body body dto.AtualizarProdutoRequest true "Campos a alterar"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /api/produtos/{id} [put]
func (h *ProdutosHandler) Atualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarProdutoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Atualizar(c.Request.Context(), id, req); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Desativar godoc
// @Summary      Desativar produto
// @Description  Soft delete: o produto sai do catálogo mas o histórico de vendas permanece.
// @Tags         produtos
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID do produto"
// @Success      204
// @Failure      404 {object} apierror.APIError
// @Router       /api/produtos/{id} [delete]
func (h *ProdutosHandler) Desativar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Desativar(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
