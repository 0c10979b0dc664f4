package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// VendaFilter is bound from the query string of GET /api/vendas.
type VendaFilter struct {
	Status     string `form:"status"      validate:"omitempty,oneof=pendente pago enviado entregue cancelado"`
	ClienteID  uint   `form:"cliente_id"`
	DataInicio string `form:"data_inicio"` // ISO date
	DataFim    string `form:"data_fim"`
	Page       int    `form:"page,default=1"      validate:"min=1"`
	Limit      int    `form:"per_page,default=50" validate:"min=1,max=200"`
}

type VendaListItem struct {
	ID          uint            `json:"id"`
	NumeroVenda string          `json:"numero_venda"`
	Cliente     string          `json:"cliente"`
	Total       decimal.Decimal `json:"total"`
	Status      string          `json:"status"`
	Origem      string          `json:"origem"`
	DataVenda   string          `json:"data_venda"`
	ItensCount  int             `json:"itens_count"`
}

type VendaListResponse struct {
	Vendas      []VendaListItem `json:"vendas"`
	Total       int64           `json:"total"`
	Paginas     int             `json:"paginas"`
	PaginaAtual int             `json:"pagina_atual"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ItemVendaRequest struct {
	ProdutoID  uint            `json:"produto_id" validate:"required"`
	VariacaoID *uint           `json:"variacao_id"`
	Quantidade int             `json:"quantidade" validate:"required,min=1"`
	Desconto   decimal.Decimal `json:"desconto"   validate:"min=0"`
}

type CriarVendaRequest struct {
	ClienteID      uint               `json:"cliente_id" validate:"required"`
	Itens          []ItemVendaRequest `json:"itens"      validate:"required,min=1,dive"`
	Origem         string             `json:"origem"     validate:"omitempty,oneof=loja ecommerce"`
	FormaPagamento *string            `json:"forma_pagamento" validate:"omitempty,oneof=dinheiro cartao_credito cartao_debito pix boleto"`
	Parcelas       int                `json:"parcelas"   validate:"omitempty,min=1,max=12"`
	Desconto       decimal.Decimal    `json:"desconto"   validate:"min=0"`
	Frete          decimal.Decimal    `json:"frete"      validate:"min=0"`
	Observacoes    *string            `json:"observacoes"`
	// Status "pago" marks the sale as paid at creation time, stamping
	// data_pagamento and booking the receivable in financeiro.
	Status string `json:"status" validate:"omitempty,oneof=pendente pago"`
}

type AtualizarStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VendaCriadaResponse struct {
	Mensagem string `json:"mensagem"`
	Venda    struct {
		ID          uint            `json:"id"`
		NumeroVenda string          `json:"numero_venda"`
		Total       decimal.Decimal `json:"total"`
	} `json:"venda"`
}

type ItemVendaResponse struct {
	ID            uint            `json:"id"`
	Produto       string          `json:"produto"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Desconto      decimal.Decimal `json:"desconto"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type VendaClienteResponse struct {
	ID    uint    `json:"id"`
	Nome  string  `json:"nome"`
	Email *string `json:"email"`
}

type VendaResponse struct {
	ID             uint                 `json:"id"`
	NumeroVenda    string               `json:"numero_venda"`
	Cliente        VendaClienteResponse `json:"cliente"`
	Subtotal       decimal.Decimal      `json:"subtotal"`
	Desconto       decimal.Decimal      `json:"desconto"`
	Frete          decimal.Decimal      `json:"frete"`
	Total          decimal.Decimal      `json:"total"`
	Status         string               `json:"status"`
	Origem         string               `json:"origem"`
	FormaPagamento *string              `json:"forma_pagamento"`
	Parcelas       int                  `json:"parcelas"`
	DataVenda      string               `json:"data_venda"`
	Itens          []ItemVendaResponse  `json:"itens"`
	Observacoes    *string              `json:"observacoes"`
}
