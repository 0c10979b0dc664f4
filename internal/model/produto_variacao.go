package model

import "github.com/shopspring/decimal"

// ProdutoVariacao is a size/color refinement of a product with its own
// independent stock count and price add-on.
type ProdutoVariacao struct {
	ID             uint    `gorm:"primaryKey"`
	ProdutoID      uint    `gorm:"not null;index"`
	Tamanho        *string `gorm:"size:10"` // P, M, G, GG, 1, 2, 4, 6, 8, ...
	Cor            *string `gorm:"size:50"`
	CodigoSKU      *string `gorm:"column:codigo_sku;size:50;uniqueIndex"`
	Estoque        int     `gorm:"not null;default:0"`
	PrecoAdicional decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Ativo          bool    `gorm:"not null;default:true"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (ProdutoVariacao) TableName() string { return "produto_variacoes" }
