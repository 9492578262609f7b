package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vflopes/fake-ecommerce-api/internal/models"
	"gorm.io/gorm"
)

// VendaHandler manages sales and their line items. The stored subtotal,
// frete and total of a sale are whatever the caller supplied at creation;
// adding or removing items does not re-aggregate them.
type VendaHandler struct {
	db *gorm.DB
}

func NewVendaHandler(db *gorm.DB) *VendaHandler {
	return &VendaHandler{db: db}
}

// CreateVenda creates a sale for an existing customer
func (h *VendaHandler) CreateVenda(c *gin.Context) {
	var req models.CreateVendaRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, req.ClienteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Cliente não encontrado",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar cliente",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	venda := models.Venda{
		ClienteID:           req.ClienteID,
		EnderecoEntregaID:   req.EnderecoEntregaID,
		Status:              req.Status,
		Subtotal:            req.Subtotal,
		Frete:               req.Frete,
		Total:               req.Total,
		MetodoPagamento:     req.MetodoPagamento,
		StatusPagamento:     req.StatusPagamento,
		DataVenda:           req.DataVenda,
		DataEntregaPrevista: req.DataEntregaPrevista,
	}

	if err := h.db.Create(&venda).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao criar venda",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusCreated, venda)
}

func (h *VendaHandler) GetVendas(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	var vendas []models.Venda
	if err := h.db.Offset(skip).Limit(limit).Find(&vendas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao listar vendas",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, vendas)
}

func (h *VendaHandler) GetVenda(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("venda_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de venda inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var venda models.Venda
	if err := h.db.First(&venda, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Venda não encontrada",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar venda",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, venda)
}

// GetVendasByCliente lists the sales of a customer. A customer with zero
// sales is a 404, same as a missing customer.
func (h *VendaHandler) GetVendasByCliente(c *gin.Context) {
	clienteID, err := strconv.Atoi(c.Param("cliente_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de cliente inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, clienteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Cliente não encontrado",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar cliente",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	var vendas []models.Venda
	if err := h.db.Where("cliente_id = ?", clienteID).Find(&vendas).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao listar vendas",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if len(vendas) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Vendas não encontradas para este cliente",
			Code:    http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, vendas)
}

// DeleteVenda removes a sale; its items go with it via ON DELETE CASCADE
func (h *VendaHandler) DeleteVenda(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("venda_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de venda inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var venda models.Venda
	if err := h.db.First(&venda, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Venda não encontrada",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar venda",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if err := h.db.Delete(&venda).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao deletar venda",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteVendaByCliente removes only the first sale found for the customer,
// not all of them. Kept as documented behavior.
func (h *VendaHandler) DeleteVendaByCliente(c *gin.Context) {
	clienteID, err := strconv.Atoi(c.Param("cliente_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de cliente inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, clienteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Cliente não encontrado",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar cliente",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	var venda models.Venda
	if err := h.db.Where("cliente_id = ?", clienteID).First(&venda).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Venda não encontrada para este cliente",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar venda",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if err := h.db.Delete(&venda).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao deletar venda",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetItensVenda lists all line items of a sale, possibly empty
func (h *VendaHandler) GetItensVenda(c *gin.Context) {
	vendaID, err := strconv.Atoi(c.Param("venda_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de venda inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var venda models.Venda
	if err := h.db.First(&venda, vendaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Venda não encontrada",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar venda",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	var itens []models.ItemVenda
	if err := h.db.Where("venda_id = ?", vendaID).Find(&itens).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao listar itens da venda",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, itens)
}

// AddItemVenda appends a line item to an existing sale. The item subtotal
// is stored as supplied; the sale totals and the product stock are left
// untouched.
func (h *VendaHandler) AddItemVenda(c *gin.Context) {
	vendaID, err := strconv.Atoi(c.Param("venda_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de venda inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var venda models.Venda
	if err := h.db.First(&venda, vendaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Venda não encontrada",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar venda",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	var req models.CreateItemVendaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	item := models.ItemVenda{
		VendaID:       uint(vendaID),
		ProdutoID:     req.ProdutoID,
		Quantidade:    req.Quantidade,
		PrecoUnitario: req.PrecoUnitario,
		Subtotal:      req.Subtotal,
	}

	if err := h.db.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao adicionar item à venda",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// RemoveItemVenda deletes the line item matching both the item id and the
// sale id
func (h *VendaHandler) RemoveItemVenda(c *gin.Context) {
	vendaID, err := strconv.Atoi(c.Param("venda_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de venda inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	itemID, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de item inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var item models.ItemVenda
	if err := h.db.Where("id = ? AND venda_id = ?", itemID, vendaID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Item não encontrado na venda",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar item da venda",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if err := h.db.Delete(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao remover item da venda",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"detail": "Item removido com sucesso"})
}
