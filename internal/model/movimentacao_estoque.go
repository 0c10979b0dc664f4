package model

import "time"

// MovimentacaoEstoque is an append-only ledger row bracketing every stock
// change. Rows are never updated or deleted; corrections create new entries.
// Tipo: "entrada" | "saida" | "ajuste" | "devolucao"
type MovimentacaoEstoque struct {
	ID         uint  `gorm:"primaryKey"`
	ProdutoID  uint  `gorm:"not null;index"`
	VariacaoID *uint `gorm:"index"`

	Tipo             string `gorm:"size:20;not null"`
	Quantidade       int    `gorm:"not null"`
	EstoqueAnterior  int    `gorm:"not null"`
	EstoqueAtual     int    `gorm:"not null"`

	Motivo      *string `gorm:"size:100"`
	Observacoes *string `gorm:"type:text"`

	VendaID   *uint `gorm:"index"`
	UsuarioID *uint

	DataMovimentacao time.Time `gorm:"not null;index"`

	Produto *Produto `gorm:"foreignKey:ProdutoID"`
}

func (MovimentacaoEstoque) TableName() string { return "movimentacoes_estoque" }
