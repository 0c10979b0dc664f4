package dto

// MovimentacaoFilter is bound from the query string of GET /api/estoque/movimentacoes.
type MovimentacaoFilter struct {
	ProdutoID uint   `form:"produto_id"`
	Tipo      string `form:"tipo" validate:"omitempty,oneof=entrada saida ajuste devolucao"`
	Page      int    `form:"page,default=1"      validate:"min=1"`
	Limit     int    `form:"per_page,default=50" validate:"min=1,max=200"`
}

type MovimentacaoResponse struct {
	ID           uint   `json:"id"`
	Produto      string `json:"produto"`
	Tipo         string `json:"tipo"`
	Quantidade   int    `json:"quantidade"`
	EstoqueAtual int    `json:"estoque_atual"`
	Data         string `json:"data"`
}

type MovimentacaoListResponse struct {
	Movimentacoes []MovimentacaoResponse `json:"movimentacoes"`
	Total         int64                  `json:"total"`
}

// AjusteEstoqueRequest applies an explicit stock movement outside a sale.
// "entrada" and "devolucao" add stock; "ajuste" sets a signed delta.
type AjusteEstoqueRequest struct {
	ProdutoID  uint    `json:"produto_id" validate:"required"`
	VariacaoID *uint   `json:"variacao_id"`
	Tipo       string  `json:"tipo"       validate:"required,oneof=entrada ajuste devolucao"`
	Quantidade int     `json:"quantidade" validate:"required"`
	Motivo     *string `json:"motivo"     validate:"omitempty,max=100"`
}

type AjusteEstoqueResponse struct {
	ID              uint `json:"id"`
	EstoqueAnterior int  `json:"estoque_anterior"`
	EstoqueAtual    int  `json:"estoque_atual"`
}

type AlertaEstoqueResponse struct {
	ID            uint   `json:"id"`
	Nome          string `json:"nome"`
	EstoqueAtual  int    `json:"estoque_atual"`
	EstoqueMinimo int    `json:"estoque_minimo"`
}

type AlertaListResponse struct {
	Alertas []AlertaEstoqueResponse `json:"alertas"`
}
