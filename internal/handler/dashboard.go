package handler

import (
	"net/http"
	"strconv"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Resumo godoc
// @Summary      Resumo do painel
// @Description  Números principais do mês: vendas, crescimento sobre o mês anterior, ticket médio, clientes, produtos ativos e alertas de estoque.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.ResumoResponse
// @Router       /api/dashboard/resumo [get]
func (h *DashboardHandler) Resumo(c *gin.Context) {
	resp, err := h.svc.Resumo(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VendasPorPeriodo godoc
// @Summary      Série temporal de vendas
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        periodo query string false "dia (últimos 30 dias, padrão) | mes (últimos 12 meses)"
// @Success      200 {object} dto.VendasPorPeriodoResponse
// @Router       /api/dashboard/vendas-por-periodo [get]
func (h *DashboardHandler) VendasPorPeriodo(c *gin.Context) {
	resp, err := h.svc.VendasPorPeriodo(c.Request.Context(), c.Query("periodo"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ProdutosMaisVendidos godoc
// @Summary      Produtos mais vendidos do último mês
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        limite query int false "Quantidade de produtos (padrão 10, máximo 50)"
// @Success      200 {object} dto.ProdutosMaisVendidosResponse
// @Router       /api/dashboard/produtos-mais-vendidos [get]
func (h *DashboardHandler) ProdutosMaisVendidos(c *gin.Context) {
	limite, _ := strconv.Atoi(c.DefaultQuery("limite", "10"))
	resp, err := h.svc.ProdutosMaisVendidos(c.Request.Context(), limite)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VendasPorCategoria godoc
// @Summary      Receita por categoria no último mês
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.VendasPorCategoriaResponse
// @Router       /api/dashboard/vendas-por-categoria [get]
func (h *DashboardHandler) VendasPorCategoria(c *gin.Context) {
	resp, err := h.svc.VendasPorCategoria(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// VendasPorGenero godoc
// @Summary      Vendas por gênero no último mês
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.VendasPorGeneroResponse
// @Router       /api/dashboard/vendas-por-genero [get]
func (h *DashboardHandler) VendasPorGenero(c *gin.Context) {
	resp, err := h.svc.VendasPorGenero(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TaxaConversao godoc
// @Summary      Taxa de conversão dos últimos 30 dias
// @Description  Finalizadas / (finalizadas + canceladas + pendentes). Finalizadas cobrem pago, enviado e entregue.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.TaxaConversaoResponse
// @Router       /api/dashboard/taxa-conversao [get]
func (h *DashboardHandler) TaxaConversao(c *gin.Context) {
	resp, err := h.svc.TaxaConversao(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
