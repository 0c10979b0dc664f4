package model

import "time"

// Categoria classifies products. A product may belong to several categories
// through ProdutoCategoria.
type Categoria struct {
	ID        uint    `gorm:"primaryKey"`
	Nome      string  `gorm:"size:100;uniqueIndex;not null"`
	Descricao *string `gorm:"type:text"`
	Slug      *string `gorm:"size:100;uniqueIndex"`
	Ativo     bool    `gorm:"not null;default:true"`
	Ordem     int     `gorm:"not null;default:0"`
	CreatedAt time.Time
}

func (Categoria) TableName() string { return "categorias" }

// ProdutoCategoria is the explicit join entity between products and
// categories. Neither side owns the relation; rows are created and removed
// independently of the Produto lifecycle.
type ProdutoCategoria struct {
	ProdutoID   uint `gorm:"primaryKey"`
	CategoriaID uint `gorm:"primaryKey"`

	Produto   *Produto   `gorm:"foreignKey:ProdutoID"`
	Categoria *Categoria `gorm:"foreignKey:CategoriaID"`
}

func (ProdutoCategoria) TableName() string { return "produto_categoria" }
