package dto

import "github.com/shopspring/decimal"

type LancamentoFilter struct {
	Tipo   string `form:"tipo"   validate:"omitempty,oneof=receita despesa"`
	Status string `form:"status" validate:"omitempty,oneof=pendente pago atrasado cancelado"`
}

type CriarLancamentoRequest struct {
	Tipo           string          `json:"tipo"            validate:"required,oneof=receita despesa"`
	Categoria      string          `json:"categoria"       validate:"required,max=50"`
	Descricao      string          `json:"descricao"       validate:"required,max=200"`
	Valor          decimal.Decimal `json:"valor"           validate:"required,gt=0"`
	DataVencimento string          `json:"data_vencimento" validate:"required"`
	FormaPagamento *string         `json:"forma_pagamento"`
	FornecedorID   *uint           `json:"fornecedor_id"`
}

type LancamentoResponse struct {
	ID             uint            `json:"id"`
	Tipo           string          `json:"tipo"`
	Categoria      string          `json:"categoria"`
	Descricao      string          `json:"descricao"`
	Valor          decimal.Decimal `json:"valor"`
	Status         string          `json:"status"`
	DataVencimento string          `json:"data_vencimento"`
}

type LancamentoListResponse struct {
	Lancamentos []LancamentoResponse `json:"lancamentos"`
}

type FluxoCaixaResponse struct {
	ReceitasMes   decimal.Decimal `json:"receitas_mes"`
	DespesasMes   decimal.Decimal `json:"despesas_mes"`
	SaldoMes      decimal.Decimal `json:"saldo_mes"`
	ContasReceber decimal.Decimal `json:"contas_receber"`
	ContasPagar   decimal.Decimal `json:"contas_pagar"`
}
