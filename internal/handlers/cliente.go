package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vflopes/fake-ecommerce-api/internal/models"
	"gorm.io/gorm"
)

type ClienteHandler struct {
	db *gorm.DB
}

func NewClienteHandler(db *gorm.DB) *ClienteHandler {
	return &ClienteHandler{db: db}
}

// CreateCliente creates a new customer, rejecting duplicate CPFs
func (h *ClienteHandler) CreateCliente(c *gin.Context) {
	var req models.CreateClienteRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	if req.DataNascimento != nil && req.DataNascimento.After(time.Now()) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Data de nascimento não pode ser no futuro",
			Code:    http.StatusBadRequest,
		})
		return
	}

	if req.CPF != "" {
		var existente models.Cliente
		if err := h.db.Where("cpf = ?", req.CPF).First(&existente).Error; err == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "cpf_already_exists",
				Message: "Cliente com este CPF já existe",
				Code:    http.StatusBadRequest,
			})
			return
		}
	}

	// an omitted CPF is stored as NULL so the unique index admits any
	// number of customers without one
	var cpf *string
	if req.CPF != "" {
		cpf = &req.CPF
	}

	cliente := models.Cliente{
		Nome:           req.Nome,
		Sobrenome:      req.Sobrenome,
		Email:          req.Email,
		Telefone:       req.Telefone,
		CPF:            cpf,
		DataNascimento: req.DataNascimento,
		Genero:         req.Genero,
	}
	if cliente.Genero == "" {
		cliente.Genero = models.GeneroOutro
	}

	if err := h.db.Create(&cliente).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao criar cliente",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusCreated, cliente)
}

func (h *ClienteHandler) GetClientes(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	var clientes []models.Cliente
	if err := h.db.Offset(skip).Limit(limit).Find(&clientes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao listar clientes",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, clientes)
}

// SearchClientes filters by name substring, exact CPF or email substring.
// Zero matches is a 404, not an empty list.
func (h *ClienteHandler) SearchClientes(c *gin.Context) {
	nome := c.Query("nome")
	cpf := c.Query("cpf")
	email := c.Query("email")

	query := h.db.Model(&models.Cliente{})
	if nome != "" {
		query = query.Where("LOWER(nome) LIKE ?", "%"+strings.ToLower(nome)+"%")
	}
	if cpf != "" {
		query = query.Where("cpf = ?", cpf)
	}
	if email != "" {
		query = query.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(email)+"%")
	}

	var clientes []models.Cliente
	if err := query.Find(&clientes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar clientes",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if len(clientes) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Nenhum cliente encontrado",
			Code:    http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, clientes)
}

func (h *ClienteHandler) GetCliente(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de cliente inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, id).Error; err != nil {
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

	c.JSON(http.StatusOK, cliente)
}

// UpdateCliente replaces every field of the customer (no partial patch)
func (h *ClienteHandler) UpdateCliente(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de cliente inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var req models.UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	if req.DataNascimento != nil && req.DataNascimento.After(time.Now()) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Data de nascimento não pode ser no futuro",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, id).Error; err != nil {
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

	cliente.Nome = req.Nome
	cliente.Sobrenome = req.Sobrenome
	cliente.Email = req.Email
	cliente.Telefone = req.Telefone
	cliente.CPF = nil
	if req.CPF != "" {
		cliente.CPF = &req.CPF
	}
	cliente.DataNascimento = req.DataNascimento
	cliente.Genero = req.Genero

	if err := h.db.Save(&cliente).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao atualizar cliente",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, cliente)
}

func (h *ClienteHandler) DeleteCliente(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de cliente inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var cliente models.Cliente
	if err := h.db.First(&cliente, id).Error; err != nil {
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

	// addresses and sales go with the customer via ON DELETE CASCADE
	if err := h.db.Delete(&cliente).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao deletar cliente",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.Status(http.StatusNoContent)
}
