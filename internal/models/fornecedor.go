package models

import "time"

// Fornecedor - a product supplier, unique by CNPJ
type Fornecedor struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Nome     string    `json:"nome" gorm:"size:100;not null"`
	Email    string    `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Telefone string    `json:"telefone" gorm:"size:20"`
	CNPJ     *string   `json:"cnpj" gorm:"size:18;uniqueIndex"`
	Endereco string    `json:"endereco" gorm:"type:text"`
	Cidade   string    `json:"cidade" gorm:"size:100"`
	Estado   string    `json:"estado" gorm:"size:2"`
	CEP      string    `json:"cep" gorm:"size:9"`
	Ativo    bool      `json:"ativo" gorm:"default:true"`
	CriadoEm time.Time `json:"criado_em" gorm:"autoCreateTime"`
	Produtos []Produto `json:"produtos,omitempty" gorm:"foreignKey:FornecedorID"`
}

func (Fornecedor) TableName() string { return "fornecedores" }

type CreateFornecedorRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Telefone string `json:"telefone"`
	CNPJ     string `json:"cnpj" binding:"omitempty,cnpj"`
	Endereco string `json:"endereco"`
	Cidade   string `json:"cidade"`
	Estado   string `json:"estado" binding:"omitempty,uf"`
	CEP      string `json:"cep" binding:"omitempty,cep"`
	Ativo    *bool  `json:"ativo"`
}

// UpdateFornecedorRequest replaces every field, mirroring the customer
// update semantics.
type UpdateFornecedorRequest struct {
	Nome     string `json:"nome" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Telefone string `json:"telefone"`
	CNPJ     string `json:"cnpj" binding:"omitempty,cnpj"`
	Endereco string `json:"endereco"`
	Cidade   string `json:"cidade"`
	Estado   string `json:"estado" binding:"omitempty,uf"`
	CEP      string `json:"cep" binding:"omitempty,cep"`
	Ativo    *bool  `json:"ativo"`
}
