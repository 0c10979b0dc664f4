package model

import "time"

// Cliente is a customer record, optionally linked to a login (Usuario).
type Cliente struct {
	ID             uint    `gorm:"primaryKey"`
	UsuarioID      *uint   `gorm:"index"`
	Nome           string  `gorm:"size:100;not null"`
	CPF            *string `gorm:"column:cpf;size:14;uniqueIndex"`
	Email          *string `gorm:"size:120"`
	Telefone       *string `gorm:"size:20"`
	DataNascimento *time.Time

	// Endereço
	CEP          *string `gorm:"column:cep;size:10"`
	Logradouro   *string `gorm:"size:200"`
	Numero       *string `gorm:"size:10"`
	Complemento  *string `gorm:"size:100"`
	Bairro       *string `gorm:"size:100"`
	Cidade       *string `gorm:"size:100"`
	Estado       *string `gorm:"size:2"`

	Ativo     bool `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Usuario *Usuario `gorm:"foreignKey:UsuarioID"`
	Vendas  []Venda  `gorm:"foreignKey:ClienteID"`
}

func (Cliente) TableName() string { return "clientes" }
