package models

import "time"

const (
	GeneroMasculino = "M"
	GeneroFeminino  = "F"
	GeneroOutro     = "Outro"
)

// Cliente - a store customer, owner of addresses and sales
type Cliente struct {
	ID             uint       `json:"id" gorm:"primaryKey"`
	Nome           string     `json:"nome" gorm:"size:100;not null"`
	Sobrenome      string     `json:"sobrenome" gorm:"size:100;not null"`
	Email          string     `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Telefone       string     `json:"telefone" gorm:"size:20"`
	CPF            *string    `json:"cpf" gorm:"size:14;uniqueIndex"`
	DataNascimento *Date      `json:"data_nascimento,omitempty" gorm:"type:date"`
	Genero         string     `json:"genero" gorm:"size:10;default:Outro"`
	CriadoEm       time.Time  `json:"criado_em" gorm:"autoCreateTime"`
	Enderecos      []Endereco `json:"enderecos,omitempty" gorm:"foreignKey:ClienteID"`
	Vendas         []Venda    `json:"vendas,omitempty" gorm:"foreignKey:ClienteID"`
}

func (Cliente) TableName() string { return "clientes" }

type CreateClienteRequest struct {
	Nome           string `json:"nome" binding:"required"`
	Sobrenome      string `json:"sobrenome" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Telefone       string `json:"telefone"`
	CPF            string `json:"cpf" binding:"omitempty,cpf"`
	DataNascimento *Date  `json:"data_nascimento"`
	Genero         string `json:"genero" binding:"omitempty,oneof=M F Outro"`
}

// UpdateClienteRequest replaces every field of the customer. Unlike the
// other resources there is no partial patch here.
type UpdateClienteRequest struct {
	Nome           string `json:"nome" binding:"required"`
	Sobrenome      string `json:"sobrenome" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Telefone       string `json:"telefone"`
	CPF            string `json:"cpf" binding:"omitempty,cpf"`
	DataNascimento *Date  `json:"data_nascimento"`
	Genero         string `json:"genero" binding:"omitempty,oneof=M F Outro"`
}
