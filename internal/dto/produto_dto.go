package dto

import "github.com/shopspring/decimal"

// ─── Filter / List ──────────────────────────────────────────────────────────

// ProdutoFilter is bound from the query string of the public GET /api/produtos.
type ProdutoFilter struct {
	CategoriaID uint   `form:"categoria_id"`
	Genero      string `form:"genero"`
	FaixaEtaria string `form:"faixa_etaria"`
	Busca       string `form:"q"`
	Destaque    bool   `form:"destaque"`
	Ordem       string `form:"ordem,default=recentes"` // recentes | preco_asc | preco_desc | nome
	Page        int    `form:"page,default=1"      validate:"min=1"`
	Limit       int    `form:"per_page,default=20" validate:"min=1,max=100"`
}

type ProdutoListItem struct {
	ID                 uint                `json:"id"`
	Codigo             string              `json:"codigo"`
	Nome               string              `json:"nome"`
	Descricao          *string             `json:"descricao"`
	Slug               *string             `json:"slug"`
	PrecoVenda         decimal.Decimal     `json:"preco_venda"`
	PrecoPromocional   *decimal.Decimal    `json:"preco_promocional"`
	EstoqueDisponivel  bool                `json:"estoque_disponivel"`
	Destaque           bool                `json:"destaque"`
	Genero             *string             `json:"genero"`
	FaixaEtaria        *string             `json:"faixa_etaria"`
	Imagem             *string             `json:"imagem"`
	Categorias         []CategoriaResponse `json:"categorias"`
}

type ProdutoListResponse struct {
	Produtos    []ProdutoListItem `json:"produtos"`
	Total       int64             `json:"total"`
	Paginas     int               `json:"paginas"`
	PaginaAtual int               `json:"pagina_atual"`
	PorPagina   int               `json:"por_pagina"`
}

// ─── Request DTOs ────────────────────────────────────────────────────────────

type ImagemProdutoRequest struct {
	URL       string `json:"url"       validate:"required,url,max=500"`
	Principal bool   `json:"principal"`
	Ordem     int    `json:"ordem"     validate:"min=0"`
}

type VariacaoRequest struct {
	Tamanho        *string         `json:"tamanho"         validate:"omitempty,max=10"`
	Cor            *string         `json:"cor"             validate:"omitempty,max=50"`
	CodigoSKU      *string         `json:"codigo_sku"      validate:"omitempty,max=50"`
	Estoque        int             `json:"estoque"         validate:"min=0"`
	PrecoAdicional decimal.Decimal `json:"preco_adicional" validate:"min=0"`
}

type CriarProdutoRequest struct {
	Codigo           string           `json:"codigo"            validate:"required,max=50"`
	Nome             string           `json:"nome"              validate:"required,max=200"`
	Descricao        *string          `json:"descricao"`
	Slug             *string          `json:"slug"              validate:"omitempty,max=200"`
	Genero           *string          `json:"genero"            validate:"omitempty,oneof=masculino feminino unissex"`
	FaixaEtaria      *string          `json:"faixa_etaria"      validate:"omitempty,max=50"`
	PrecoCusto       decimal.Decimal  `json:"preco_custo"       validate:"min=0"`
	PrecoVenda       decimal.Decimal  `json:"preco_venda"       validate:"min=0"`
	PrecoPromocional *decimal.Decimal `json:"preco_promocional"`
	EstoqueAtual     int              `json:"estoque_atual"     validate:"min=0"`
	EstoqueMinimo    *int             `json:"estoque_minimo"    validate:"omitempty,min=0"`
	EstoqueMaximo    *int             `json:"estoque_maximo"    validate:"omitempty,min=0"`
	FornecedorID     *uint            `json:"fornecedor_id"`
	Peso             *decimal.Decimal `json:"peso"`
	Altura           *decimal.Decimal `json:"altura"`
	Largura          *decimal.Decimal `json:"largura"`
	Profundidade     *decimal.Decimal `json:"profundidade"`
	Ativo            *bool            `json:"ativo"`
	Destaque         bool             `json:"destaque"`
	Categorias       []uint           `json:"categorias"`
	Imagens          []ImagemProdutoRequest `json:"imagens"   validate:"omitempty,dive"`
	Variacoes        []VariacaoRequest      `json:"variacoes" validate:"omitempty,dive"`
}

// AtualizarProdutoRequest is an explicit patch: nil means "leave unchanged".
// Categorias, when present, replaces the whole category set.
type AtualizarProdutoRequest struct {
	Nome             *string          `json:"nome"              validate:"omitempty,max=200"`
	Descricao        *string          `json:"descricao"`
	Slug             *string          `json:"slug"              validate:"omitempty,max=200"`
	Genero           *string          `json:"genero"            validate:"omitempty,oneof=masculino feminino unissex"`
	FaixaEtaria      *string          `json:"faixa_etaria"      validate:"omitempty,max=50"`
	PrecoCusto       *decimal.Decimal `json:"preco_custo"`
	PrecoVenda       *decimal.Decimal `json:"preco_venda"`
	PrecoPromocional *decimal.Decimal `json:"preco_promocional"`
	EstoqueMinimo    *int             `json:"estoque_minimo"    validate:"omitempty,min=0"`
	EstoqueMaximo    *int             `json:"estoque_maximo"    validate:"omitempty,min=0"`
	FornecedorID     *uint            `json:"fornecedor_id"`
	Peso             *decimal.Decimal `json:"peso"`
	Altura           *decimal.Decimal `json:"altura"`
	Largura          *decimal.Decimal `json:"largura"`
	Profundidade     *decimal.Decimal `json:"profundidade"`
	Ativo            *bool            `json:"ativo"`
	Destaque         *bool            `json:"destaque"`
	Categorias       *[]uint          `json:"categorias"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ImagemResponse struct {
	ID        uint   `json:"id"`
	URL       string `json:"url"`
	Principal bool   `json:"principal"`
	Ordem     int    `json:"ordem"`
}

type VariacaoResponse struct {
	ID             uint            `json:"id"`
	Tamanho        *string         `json:"tamanho"`
	Cor            *string         `json:"cor"`
	Estoque        int             `json:"estoque"`
	PrecoAdicional decimal.Decimal `json:"preco_adicional"`
	Disponivel     bool            `json:"disponivel"`
}

type DimensoesResponse struct {
	Altura       *decimal.Decimal `json:"altura"`
	Largura      *decimal.Decimal `json:"largura"`
	Profundidade *decimal.Decimal `json:"profundidade"`
}

type ProdutoResponse struct {
	ID               uint                `json:"id"`
	Codigo           string              `json:"codigo"`
	Nome             string              `json:"nome"`
	Descricao        *string             `json:"descricao"`
	Slug             *string             `json:"slug"`
	Genero           *string             `json:"genero"`
	FaixaEtaria      *string             `json:"faixa_etaria"`
	PrecoVenda       decimal.Decimal     `json:"preco_venda"`
	PrecoPromocional *decimal.Decimal    `json:"preco_promocional"`
	EstoqueAtual     int                 `json:"estoque_atual"`
	Peso             *decimal.Decimal    `json:"peso"`
	Dimensoes        DimensoesResponse   `json:"dimensoes"`
	Imagens          []ImagemResponse    `json:"imagens"`
	Variacoes        []VariacaoResponse  `json:"variacoes"`
	Categorias       []CategoriaResponse `json:"categorias"`
}

type ProdutoCriadoResponse struct {
	ID     uint   `json:"id"`
	Codigo string `json:"codigo"`
	Nome   string `json:"nome"`
}
