package handler

import (
	"net/http"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/apierror"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/service"

	"github.com/gin-gonic/gin"
)

type FinanceiroHandler struct{ svc service.FinanceiroService }

func NewFinanceiroHandler(svc service.FinanceiroService) *FinanceiroHandler {
	return &FinanceiroHandler{svc: svc}
}

// CriarLancamento godoc
// @Summary      Lançar receita ou despesa
// @Tags         financeiro
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarLancamentoRequest true "Dados do lançamento"
// @Success      201  {object} dto.LancamentoResponse
// @Failure      400  {object} apierror.APIError
// @Router       /api/financeiro/lancamentos [post]
func (h *FinanceiroHandler) CriarLancamento(c *gin.Context) {
	var req dto.CriarLancamentoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarLancamento(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Listar godoc
// @Summary      Listar lançamentos
// @Tags         financeiro
// @Produce      json
// @Security     BearerAuth
// @Param        tipo   query string false "receita | despesa"
// @Param        status query string false "pendente | pago | atrasado | cancelado"
// @Success      200 {object} dto.LancamentoListResponse
// @Router       /api/financeiro/lancamentos [get]
func (h *FinanceiroHandler) Listar(c *gin.Context) {
	var filter dto.LancamentoFilter
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

// FluxoCaixa godoc
// @Summary      Fluxo de caixa do mês
// @Description  Receitas e despesas pagas no mês corrente mais o saldo de contas a receber e a pagar.
// @Tags         financeiro
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.FluxoCaixaResponse
// @Router       /api/financeiro/fluxo-caixa [get]
func (h *FinanceiroHandler) FluxoCaixa(c *gin.Context) {
	resp, err := h.svc.FluxoCaixa(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
