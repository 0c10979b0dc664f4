package handler

import (
	"net/http"

	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/apierror"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/dto"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/middleware"
	"github.com/alefwesleimoreira/erp-mamae-eu-quero/internal/service"

	"github.com/gin-gonic/gin"
)

type EstoqueHandler struct{ svc service.EstoqueService }

func NewEstoqueHandler(svc service.EstoqueService) *EstoqueHandler {
	return &EstoqueHandler{svc: svc}
}

// Ajustar godoc
// @Summary      Movimentar estoque manualmente
// @Description  Registra entrada, devolução ou ajuste com o respectivo lançamento no razão de movimentações. O estoque nunca fica negativo.
// @Tags         estoque
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.AjusteEstoqueRequest true "Movimento"
// @Success      201  {object} dto.AjusteEstoqueResponse
// @Failure      400  {object} apierror.APIError
// @Router       /api/estoque/ajustes [post]
func (h *EstoqueHandler) Ajustar(c *gin.Context) {
	var req dto.AjusteEstoqueRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)

	resp, err := h.svc.Ajustar(c.Request.Context(), claims.UserID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Movimentacoes godoc
// @Summary      Histórico de movimentações
// @Tags         estoque
// @Produce      json
// @Security     BearerAuth
// @Param        produto_id query int    false "Filtrar por produto"
// @Param        tipo       query string false "entrada | saida | ajuste | devolucao"
// @Success      200 {object} dto.MovimentacaoListResponse
// @Router       /api/estoque/movimentacoes [get]
func (h *EstoqueHandler) Movimentacoes(c *gin.Context) {
	var filter dto.MovimentacaoFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListarMovimentacoes(c.Request.Context(), filter)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Alertas godoc
// @Summary      Produtos com estoque baixo
// @Tags         estoque
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} dto.AlertaListResponse
// @Router       /api/estoque/alertas [get]
func (h *EstoqueHandler) Alertas(c *gin.Context) {
	resp, err := h.svc.ListarAlertas(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
