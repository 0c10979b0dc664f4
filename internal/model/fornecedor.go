package model

import "time"

// Fornecedor represents a supplier with commercial data.
type Fornecedor struct {
	ID           uint    `gorm:"primaryKey"`
	RazaoSocial  string  `gorm:"size:200;not null"`
	NomeFantasia *string `gorm:"size:200"`
	CNPJ         *string `gorm:"column:cnpj;size:18;uniqueIndex"`
	Email        *string `gorm:"size:120"`
	Telefone     *string `gorm:"size:20"`

	// Endereço
	CEP         *string `gorm:"column:cep;size:10"`
	Logradouro  *string `gorm:"size:200"`
	Numero      *string `gorm:"size:10"`
	Complemento *string `gorm:"size:100"`
	Bairro      *string `gorm:"size:100"`
	Cidade      *string `gorm:"size:100"`
	Estado      *string `gorm:"size:2"`

	Ativo     bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Produtos []Produto `gorm:"foreignKey:FornecedorID"`
}

func (Fornecedor) TableName() string { return "fornecedores" }
