package models

import "time"

// Produto - a sellable product; category and supplier links survive as NULL
// when the referenced row is deleted.
type Produto struct {
	ID                uint        `json:"id" gorm:"primaryKey"`
	Nome              string      `json:"nome" gorm:"size:200;not null"`
	Descricao         string      `json:"descricao" gorm:"type:text"`
	CategoriaID       *uint       `json:"categoria_id"`
	Categoria         *Categoria  `json:"-" gorm:"foreignKey:CategoriaID;constraint:OnDelete:SET NULL"`
	FornecedorID      *uint       `json:"fornecedor_id"`
	Fornecedor        *Fornecedor `json:"-" gorm:"foreignKey:FornecedorID;constraint:OnDelete:SET NULL"`
	Preco             float64     `json:"preco" gorm:"type:decimal(10,2);not null"`
	Custo             *float64    `json:"custo" gorm:"type:decimal(10,2)"`
	Peso              *float64    `json:"peso" gorm:"type:decimal(8,3)"`
	QuantidadeEstoque int         `json:"quantidade_estoque" gorm:"default:0"`
	EmEstoque         bool        `json:"em_estoque" gorm:"default:true"`
	Ativo             bool        `json:"ativo" gorm:"default:true"`
	CriadoEm          time.Time   `json:"criado_em" gorm:"autoCreateTime"`
}

func (Produto) TableName() string { return "produtos" }

type CreateProdutoRequest struct {
	Nome              string   `json:"nome" binding:"required"`
	Descricao         string   `json:"descricao" binding:"required"`
	CategoriaID       *uint    `json:"categoria_id"`
	FornecedorID      *uint    `json:"fornecedor_id"`
	Preco             float64  `json:"preco" binding:"required,gt=0"`
	Custo             *float64 `json:"custo"`
	Peso              *float64 `json:"peso"`
	QuantidadeEstoque *int     `json:"quantidade_estoque"`
	EmEstoque         *bool    `json:"em_estoque"`
	Ativo             *bool    `json:"ativo"`
}

type UpdateProdutoRequest struct {
	Nome              *string  `json:"nome"`
	Descricao         *string  `json:"descricao"`
	CategoriaID       *uint    `json:"categoria_id"`
	FornecedorID      *uint    `json:"fornecedor_id"`
	Preco             *float64 `json:"preco" binding:"omitempty,gt=0"`
	Custo             *float64 `json:"custo"`
	Peso              *float64 `json:"peso"`
	QuantidadeEstoque *int     `json:"quantidade_estoque"`
	EmEstoque         *bool    `json:"em_estoque"`
	Ativo             *bool    `json:"ativo"`
}
