package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/vflopes/fake-ecommerce-api/internal/models"
	"gorm.io/gorm"
)

type EnderecoHandler struct {
	db *gorm.DB
}

func NewEnderecoHandler(db *gorm.DB) *EnderecoHandler {
	return &EnderecoHandler{db: db}
}

// CreateEndereco creates an address for an existing customer
func (h *EnderecoHandler) CreateEndereco(c *gin.Context) {
	var req models.CreateEnderecoRequest

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

	endereco := models.Endereco{
		ClienteID:         req.ClienteID,
		CEP:               req.CEP,
		Logradouro:        req.Logradouro,
		Numero:            req.Numero,
		Complemento:       req.Complemento,
		Bairro:            req.Bairro,
		Cidade:            req.Cidade,
		Estado:            strings.ToUpper(req.Estado),
		EnderecoPrincipal: req.EnderecoPrincipal,
	}

	if err := h.db.Create(&endereco).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao criar endereço",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusCreated, endereco)
}

func (h *EnderecoHandler) GetEnderecos(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	var enderecos []models.Endereco
	if err := h.db.Offset(skip).Limit(limit).Find(&enderecos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao listar endereços",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, enderecos)
}

// SearchEnderecos filters by customer id, CEP substring or street substring.
// Zero matches is a 404, not an empty list.
func (h *EnderecoHandler) SearchEnderecos(c *gin.Context) {
	clienteID := c.Query("cliente_id")
	cep := c.Query("cep")
	logradouro := c.Query("logradouro")

	query := h.db.Model(&models.Endereco{})
	if clienteID != "" {
		query = query.Where("cliente_id = ?", clienteID)
	}
	if cep != "" {
		query = query.Where("cep LIKE ?", "%"+cep+"%")
	}
	if logradouro != "" {
		query = query.Where("LOWER(logradouro) LIKE ?", "%"+strings.ToLower(logradouro)+"%")
	}

	var enderecos []models.Endereco
	if err := query.Find(&enderecos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar endereços",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if len(enderecos) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Nenhum endereço encontrado",
			Code:    http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, enderecos)
}

func (h *EnderecoHandler) GetEndereco(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de endereço inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var endereco models.Endereco
	if err := h.db.First(&endereco, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Endereço não encontrado",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar endereço",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, endereco)
}

// GetEnderecoByCliente returns the first address of a customer
func (h *EnderecoHandler) GetEnderecoByCliente(c *gin.Context) {
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

	var endereco models.Endereco
	if err := h.db.Where("cliente_id = ?", clienteID).First(&endereco).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Endereço não encontrado para este cliente",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar endereço",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, endereco)
}

// UpdateEndereco patches only the fields present in the request
func (h *EnderecoHandler) UpdateEndereco(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de endereço inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var req models.UpdateEnderecoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	var endereco models.Endereco
	if err := h.db.First(&endereco, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Endereço não encontrado",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar endereço",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if req.CEP != nil {
		endereco.CEP = *req.CEP
	}
	if req.Logradouro != nil {
		endereco.Logradouro = *req.Logradouro
	}
	if req.Numero != nil {
		endereco.Numero = *req.Numero
	}
	if req.Complemento != nil {
		endereco.Complemento = *req.Complemento
	}
	if req.Bairro != nil {
		endereco.Bairro = *req.Bairro
	}
	if req.Cidade != nil {
		endereco.Cidade = *req.Cidade
	}
	if req.Estado != nil {
		endereco.Estado = strings.ToUpper(*req.Estado)
	}
	if req.EnderecoPrincipal != nil {
		endereco.EnderecoPrincipal = *req.EnderecoPrincipal
	}

	if err := h.db.Save(&endereco).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao atualizar endereço",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, endereco)
}

func (h *EnderecoHandler) DeleteEndereco(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de endereço inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var endereco models.Endereco
	if err := h.db.First(&endereco, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Endereço não encontrado",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar endereço",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if err := h.db.Delete(&endereco).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao deletar endereço",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.Status(http.StatusNoContent)
}
