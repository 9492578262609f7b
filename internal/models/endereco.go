package models

import "time"

// Endereco - a delivery address owned by a customer. Removed together with
// its customer; at most one primary address per customer is intended but not
// enforced.
type Endereco struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	ClienteID         uint      `json:"cliente_id" gorm:"not null"`
	Cliente           *Cliente  `json:"-" gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE"`
	CEP               string    `json:"cep" gorm:"size:10;not null"`
	Logradouro        string    `json:"logradouro" gorm:"size:200;not null"`
	Numero            string    `json:"numero" gorm:"size:10;not null"`
	Complemento       string    `json:"complemento" gorm:"size:100"`
	Bairro            string    `json:"bairro" gorm:"size:100;not null"`
	Cidade            string    `json:"cidade" gorm:"size:100;not null"`
	Estado            string    `json:"estado" gorm:"size:2;not null"`
	EnderecoPrincipal bool      `json:"endereco_principal" gorm:"default:false"`
	CriadoEm          time.Time `json:"criado_em" gorm:"autoCreateTime"`
}

func (Endereco) TableName() string { return "enderecos" }

type CreateEnderecoRequest struct {
	ClienteID         uint   `json:"cliente_id" binding:"required"`
	CEP               string `json:"cep" binding:"required,cep"`
	Logradouro        string `json:"logradouro" binding:"required"`
	Numero            string `json:"numero" binding:"required"`
	Complemento       string `json:"complemento"`
	Bairro            string `json:"bairro" binding:"required"`
	Cidade            string `json:"cidade" binding:"required"`
	Estado            string `json:"estado" binding:"required,uf"`
	EnderecoPrincipal bool   `json:"endereco_principal"`
}

type UpdateEnderecoRequest struct {
	CEP               *string `json:"cep" binding:"omitempty,cep"`
	Logradouro        *string `json:"logradouro"`
	Numero            *string `json:"numero"`
	Complemento       *string `json:"complemento"`
	Bairro            *string `json:"bairro"`
	Cidade            *string `json:"cidade"`
	Estado            *string `json:"estado" binding:"omitempty,uf"`
	EnderecoPrincipal *bool   `json:"endereco_principal"`
}
