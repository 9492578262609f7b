package models

import "time"

type Categoria struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Nome      string    `json:"nome" gorm:"size:100;not null"`
	Descricao string    `json:"descricao" gorm:"type:text;not null"`
	Ativa     bool      `json:"ativa" gorm:"default:true"`
	CriadoEm  time.Time `json:"criado_em" gorm:"autoCreateTime"`
	Produtos  []Produto `json:"produtos,omitempty" gorm:"foreignKey:CategoriaID"`
}

func (Categoria) TableName() string { return "categorias" }

type CreateCategoriaRequest struct {
	Nome      string `json:"nome" binding:"required"`
	Descricao string `json:"descricao" binding:"required"`
	Ativa     *bool  `json:"ativa"`
}

// UpdateCategoriaRequest only exposes the description and the active flag;
// a category cannot be renamed through the API.
type UpdateCategoriaRequest struct {
	Descricao *string `json:"descricao"`
	Ativa     *bool   `json:"ativa"`
}
