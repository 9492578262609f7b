package models

import "time"

const (
	VendaStatusPendente   = "Pendente"
	VendaStatusConfirmado = "Confirmado"
	VendaStatusEnviado    = "Enviado"
	VendaStatusEntregue   = "Entregue"
	VendaStatusCancelado  = "Cancelado"

	PagamentoCartaoCredito = "Cartao_Credito"
	PagamentoCartaoDebito  = "Cartao_Debito"
	PagamentoPIX           = "PIX"
	PagamentoBoleto        = "Boleto"

	PagamentoStatusPendente = "Pendente"
	PagamentoStatusAprovado = "Aprovado"
	PagamentoStatusRecusado = "Recusado"
)

// Venda - a sale belonging to a customer, with its line items. Subtotal,
// frete and total are stored exactly as supplied by the caller and are never
// recomputed from the line items.
type Venda struct {
	ID                  uint        `json:"id" gorm:"primaryKey"`
	ClienteID           uint        `json:"cliente_id" gorm:"not null"`
	Cliente             *Cliente    `json:"-" gorm:"foreignKey:ClienteID;constraint:OnDelete:CASCADE"`
	EnderecoEntregaID   *uint       `json:"endereco_entrega_id"`
	EnderecoEntrega     *Endereco   `json:"-" gorm:"foreignKey:EnderecoEntregaID;constraint:OnDelete:SET NULL"`
	Status              string      `json:"status" gorm:"size:20;not null;default:Pendente"`
	Subtotal            float64     `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	Frete               float64     `json:"frete" gorm:"type:decimal(10,2);not null;default:0"`
	Total               float64     `json:"total" gorm:"type:decimal(10,2);not null"`
	MetodoPagamento     string      `json:"metodo_pagamento" gorm:"size:20;not null"`
	StatusPagamento     string      `json:"status_pagamento" gorm:"size:20;not null;default:Pendente"`
	DataVenda           time.Time   `json:"data_venda"`
	DataEntregaPrevista *Date       `json:"data_entrega_prevista" gorm:"type:date"`
	CriadoEm            time.Time   `json:"criado_em" gorm:"autoCreateTime"`
	Itens               []ItemVenda `json:"itens,omitempty" gorm:"foreignKey:VendaID"`
}

func (Venda) TableName() string { return "vendas" }

// ItemVenda - a sale line item. Subtotal is a caller contract
// (quantidade * preco_unitario) and is not verified server-side.
type ItemVenda struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	VendaID       uint      `json:"venda_id" gorm:"not null"`
	Venda         *Venda    `json:"-" gorm:"foreignKey:VendaID;constraint:OnDelete:CASCADE"`
	ProdutoID     uint      `json:"produto_id" gorm:"not null"`
	Produto       *Produto  `json:"-" gorm:"foreignKey:ProdutoID;constraint:OnDelete:CASCADE"`
	Quantidade    int       `json:"quantidade" gorm:"not null;default:1"`
	PrecoUnitario float64   `json:"preco_unitario" gorm:"type:decimal(10,2);not null"`
	Subtotal      float64   `json:"subtotal" gorm:"type:decimal(10,2);not null"`
	CriadoEm      time.Time `json:"criado_em" gorm:"autoCreateTime"`
}

func (ItemVenda) TableName() string { return "itens_venda" }

type CreateVendaRequest struct {
	ClienteID           uint      `json:"cliente_id" binding:"required"`
	EnderecoEntregaID   *uint     `json:"endereco_entrega_id"`
	Status              string    `json:"status" binding:"required,oneof=Pendente Confirmado Enviado Entregue Cancelado"`
	Subtotal            float64   `json:"subtotal" binding:"required,min=0"`
	Frete               float64   `json:"frete" binding:"min=0"`
	Total               float64   `json:"total" binding:"required,min=0"`
	MetodoPagamento     string    `json:"metodo_pagamento" binding:"required,oneof=Cartao_Credito Cartao_Debito PIX Boleto"`
	StatusPagamento     string    `json:"status_pagamento" binding:"required,oneof=Pendente Aprovado Recusado"`
	DataVenda           time.Time `json:"data_venda" binding:"required"`
	DataEntregaPrevista *Date     `json:"data_entrega_prevista"`
}

type CreateItemVendaRequest struct {
	ProdutoID     uint    `json:"produto_id" binding:"required"`
	Quantidade    int     `json:"quantidade" binding:"required,min=1"`
	PrecoUnitario float64 `json:"preco_unitario" binding:"required,gt=0"`
	Subtotal      float64 `json:"subtotal" binding:"required,gt=0"`
}
