package dto

import "github.com/shopspring/decimal"

type ResumoResponse struct {
	VendasMes             decimal.Decimal `json:"vendas_mes"`
	VendasMesAnterior     decimal.Decimal `json:"vendas_mes_anterior"`
	CrescimentoPercentual decimal.Decimal `json:"crescimento_percentual"`
	NumeroVendas          int64           `json:"numero_vendas"`
	TicketMedio           decimal.Decimal `json:"ticket_medio"`
	TotalClientes         int64           `json:"total_clientes"`
	ProdutosAtivos        int64           `json:"produtos_ativos"`
	AlertasEstoque        int64           `json:"alertas_estoque"`
}

type VendaPorDia struct {
	Data       string          `json:"data"`
	Total      decimal.Decimal `json:"total"`
	Quantidade int64           `json:"quantidade"`
}

type VendaPorMes struct {
	Mes        string          `json:"mes"`
	Total      decimal.Decimal `json:"total"`
	Quantidade int64           `json:"quantidade"`
}

type VendasPorPeriodoResponse struct {
	Vendas interface{} `json:"vendas"`
}

type ProdutoMaisVendido struct {
	ID                uint            `json:"id"`
	Nome              string          `json:"nome"`
	QuantidadeVendida int64           `json:"quantidade_vendida"`
	ReceitaTotal      decimal.Decimal `json:"receita_total"`
}

type ProdutosMaisVendidosResponse struct {
	Produtos []ProdutoMaisVendido `json:"produtos"`
}

type VendaPorCategoria struct {
	Nome  string          `json:"nome"`
	Total decimal.Decimal `json:"total"`
}

type VendasPorCategoriaResponse struct {
	Categorias []VendaPorCategoria `json:"categorias"`
}

type VendaPorGenero struct {
	Genero     string          `json:"genero"`
	Quantidade int64           `json:"quantidade"`
	Total      decimal.Decimal `json:"total"`
}

type VendasPorGeneroResponse struct {
	Generos []VendaPorGenero `json:"generos"`
}

type TaxaConversaoResponse struct {
	VendasFinalizadas int64           `json:"vendas_finalizadas"`
	VendasCanceladas  int64           `json:"vendas_canceladas"`
	VendasPendentes   int64           `json:"vendas_pendentes"`
	TaxaConversao     decimal.Decimal `json:"taxa_conversao"`
}
