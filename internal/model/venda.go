package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale status lifecycle: pendente → pago → enviado → entregue.
// "cancelado" is reachable from any state (no transition guard).
const (
	VendaPendente  = "pendente"
	VendaPago      = "pago"
	VendaEnviado   = "enviado"
	VendaEntregue  = "entregue"
	VendaCancelado = "cancelado"
)

// Venda is a customer order. Created atomically with its items; item rows are
// immutable after creation.
type Venda struct {
	ID          uint   `gorm:"primaryKey"`
	NumeroVenda string `gorm:"size:50;uniqueIndex;not null"`
	ClienteID   uint   `gorm:"not null;index"`
	UsuarioID   *uint  `gorm:"index"` // vendedor

	// Valores
	Subtotal decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Desconto decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Frete    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Total    decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Status string `gorm:"size:20;not null;default:'pendente'"`
	Origem string `gorm:"size:20;not null;default:'loja'"` // loja | ecommerce

	// Pagamento
	FormaPagamento *string `gorm:"size:50"` // dinheiro, cartao_credito, cartao_debito, pix, boleto
	Parcelas       int     `gorm:"not null;default:1"`

	// Datas — stamped once, the first time each status is reached
	DataVenda     time.Time `gorm:"not null"`
	DataPagamento *time.Time
	DataEnvio     *time.Time
	DataEntrega   *time.Time

	Observacoes *string `gorm:"type:text"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Cliente *Cliente    `gorm:"foreignKey:ClienteID"`
	Itens   []ItemVenda `gorm:"foreignKey:VendaID"`
}

func (Venda) TableName() string { return "vendas" }

// ItemVenda snapshots the unit price at sale time — it is never re-read from
// the product afterwards.
type ItemVenda struct {
	ID         uint  `gorm:"primaryKey"`
	VendaID    uint  `gorm:"not null;index"`
	ProdutoID  uint  `gorm:"not null;index"`
	VariacaoID *uint `gorm:"index"`

	Quantidade    int             `gorm:"not null"`
	PrecoUnitario decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Desconto      decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Produto  *Produto         `gorm:"foreignKey:ProdutoID"`
	Variacao *ProdutoVariacao `gorm:"foreignKey:VariacaoID"`
}

func (ItemVenda) TableName() string { return "itens_venda" }
