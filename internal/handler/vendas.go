package handler

import (
	"net/http"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/apierror"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/middleware"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/service"

	"github.com/gin-gonic/gin"
)

type VendasHandler struct{ svc service.VendaService }

func NewVendasHandler(svc service.VendaService) *VendasHandler { return &VendasHandler{svc: svc} }

// Criar godoc
// @Summary      Registrar venda
// @Description  Cria a venda em transação ACID: precifica itens, baixa estoque com verificação atômica, grava o razão de movimentações e, se paga na criação, lança a receita no financeiro.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarVendaRequest true "Itens e condições da venda"
// @Success      201  {object} dto.VendaCriadaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /api/vendas [post]
func (h *VendasHandler) Criar(c *gin.Context) {
	var req dto.CriarVendaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.CriarVenda(c.Request.Context(), claims.UserID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar vendas
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Param        status      query string false "pendente | pago | enviado | entregue | cancelado"
// @Param        cliente_id  query int    false "Filtrar por cliente"
// @Param        data_inicio query string false "Data inicial YYYY-MM-DD"
// @Param        data_fim    query string false "Data final YYYY-MM-DD"
// @Success      200 {object} dto.VendaListResponse
// @Router       /api/vendas [get]
func (h *VendasHandler) Listar(c *gin.Context) {
	var filter dto.VendaFilter
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
// @Summary      Detalhe de venda
// @Tags         vendas
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "ID da venda"
// @Success      200 {object} dto.VendaResponse
// @Failure      404 {object} apierror.APIError
// @Router       /api/vendas/{id} [get]
func (h *VendasHandler) Obter(c *gin.Context) {
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

// AtualizarStatus godoc
// @Summary      Atualizar status da venda
// @Description  Transições avançam o ciclo pendente→pago→enviado→entregue; "cancelado" é aceito de qualquer estado. Cada data é carimbada apenas na primeira vez.
// @Tags         vendas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path int                        true "ID da venda"
// @Param        body body dto.AtualizarStatusRequest true "Novo status"
// @Success      204
// @Failure      400 {object} apierror.APIError
// @Router       /api/vendas/{id}/status [patch]
func (h *VendasHandler) AtualizarStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.AtualizarStatus(c.Request.Context(), id, req.Status); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
