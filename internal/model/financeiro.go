package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Financeiro is a receivable/payable entry for basic cash-flow bookkeeping.
// A paid sale creates a "receita" entry automatically at creation time.
// Tipo: "receita" | "despesa"
// Status: "pendente" | "pago" | "atrasado" | "cancelado"
type Financeiro struct {
	ID        uint            `gorm:"primaryKey"`
	Tipo      string          `gorm:"size:20;not null"`
	Categoria string          `gorm:"size:50;not null"` // venda, compra, aluguel, salario, ...
	Descricao string          `gorm:"size:200;not null"`
	Valor     decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	VendaID      *uint `gorm:"index"`
	FornecedorID *uint `gorm:"index"`

	DataVencimento time.Time `gorm:"type:date;not null"`
	DataPagamento  *time.Time `gorm:"type:date"`

	Status         string  `gorm:"size:20;not null;default:'pendente'"`
	FormaPagamento *string `gorm:"size:50"`
	Observacoes    *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Financeiro) TableName() string { return "financeiro" }
