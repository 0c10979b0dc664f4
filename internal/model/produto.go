package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto is a catalog item. Stock (EstoqueAtual) is mutated only through sale
// creation or explicit stock-movement entries — every change writes exactly one
// MovimentacaoEstoque row, so the live counter always equals the after-state of
// the most recent movement.
type Produto struct {
	ID        uint    `gorm:"primaryKey"`
	Codigo    string  `gorm:"size:50;uniqueIndex;not null"`
	Nome      string  `gorm:"size:200;index;not null"`
	Descricao *string `gorm:"type:text"`
	Slug      *string `gorm:"size:200;uniqueIndex"`

	// Classificação
	Genero      *string `gorm:"size:20"` // masculino | feminino | unissex
	FaixaEtaria *string `gorm:"size:50"` // RN, 0-3m, 3-6m, 1-2a, ...

	// Preços
	PrecoCusto       decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	PrecoVenda       decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	PrecoPromocional *decimal.Decimal `gorm:"type:decimal(10,2)"`
	// MargemLucro is derived: (PrecoVenda - PrecoCusto) / PrecoCusto * 100
	MargemLucro *decimal.Decimal `gorm:"type:decimal(5,2)"`

	// Estoque
	EstoqueAtual  int `gorm:"not null;default:0"`
	EstoqueMinimo int `gorm:"not null;default:5"`
	EstoqueMaximo int `gorm:"not null;default:100"`

	// Dimensões e peso
	Peso         *decimal.Decimal `gorm:"type:decimal(10,3)"` // kg
	Altura       *decimal.Decimal `gorm:"type:decimal(10,2)"` // cm
	Largura      *decimal.Decimal `gorm:"type:decimal(10,2)"`
	Profundidade *decimal.Decimal `gorm:"type:decimal(10,2)"`

	FornecedorID *uint `gorm:"index"`

	Ativo     bool `gorm:"not null;default:true"`
	Destaque  bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Fornecedor *Fornecedor        `gorm:"foreignKey:FornecedorID"`
	Categorias []ProdutoCategoria `gorm:"foreignKey:ProdutoID"`
	Imagens    []ImagemProduto    `gorm:"foreignKey:ProdutoID"`
	Variacoes  []ProdutoVariacao  `gorm:"foreignKey:ProdutoID"`
}

func (Produto) TableName() string { return "produtos" }

// ImagemProduto holds a product image URL. Principal marks the cover image.
type ImagemProduto struct {
	ID        uint   `gorm:"primaryKey"`
	ProdutoID uint   `gorm:"not null;index"`
	URL       string `gorm:"size:500;not null"`
	Principal bool   `gorm:"not null;default:false"`
	Ordem     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
}

func (ImagemProduto) TableName() string { return "imagens_produto" }
