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

type FornecedorHandler struct {
	db *gorm.DB
}

func NewFornecedorHandler(db *gorm.DB) *FornecedorHandler {
	return &FornecedorHandler{db: db}
}

// CreateFornecedor creates a new supplier, rejecting duplicate CNPJs
func (h *FornecedorHandler) CreateFornecedor(c *gin.Context) {
	var req models.CreateFornecedorRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	if req.CNPJ != "" {
		var existente models.Fornecedor
		if err := h.db.Where("cnpj = ?", req.CNPJ).First(&existente).Error; err == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "cnpj_already_exists",
				Message: "Fornecedor com este CNPJ já existe",
				Code:    http.StatusBadRequest,
			})
			return
		}
	}

	// an omitted CNPJ is stored as NULL so the unique index admits any
	// number of suppliers without one
	var cnpj *string
	if req.CNPJ != "" {
		cnpj = &req.CNPJ
	}

	fornecedor := models.Fornecedor{
		Nome:     req.Nome,
		Email:    req.Email,
		Telefone: req.Telefone,
		CNPJ:     cnpj,
		Endereco: req.Endereco,
		Cidade:   req.Cidade,
		Estado:   strings.ToUpper(req.Estado),
		CEP:      req.CEP,
		Ativo:    true,
	}
	if req.Ativo != nil {
		fornecedor.Ativo = *req.Ativo
	}

	if err := h.db.Create(&fornecedor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao criar fornecedor",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusCreated, fornecedor)
}

func (h *FornecedorHandler) GetFornecedores(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	var fornecedores []models.Fornecedor
	if err := h.db.Offset(skip).Limit(limit).Find(&fornecedores).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao listar fornecedores",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, fornecedores)
}

// SearchFornecedores filters by name substring, exact CNPJ or email
// substring. Zero matches is a 404, not an empty list.
func (h *FornecedorHandler) SearchFornecedores(c *gin.Context) {
	nome := c.Query("nome")
	cnpj := c.Query("cnpj")
	email := c.Query("email")

	query := h.db.Model(&models.Fornecedor{})
	if nome != "" {
		query = query.Where("LOWER(nome) LIKE ?", "%"+strings.ToLower(nome)+"%")
	}
	if cnpj != "" {
		query = query.Where("cnpj = ?", cnpj)
	}
	if email != "" {
		query = query.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(email)+"%")
	}

	var fornecedores []models.Fornecedor
	if err := query.Find(&fornecedores).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar fornecedores",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if len(fornecedores) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Nenhum fornecedor encontrado",
			Code:    http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, fornecedores)
}

func (h *FornecedorHandler) GetFornecedor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de fornecedor inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var fornecedor models.Fornecedor
	if err := h.db.First(&fornecedor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Fornecedor não encontrado",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar fornecedor",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, fornecedor)
}

// UpdateFornecedor replaces every field of the supplier (no partial patch)
func (h *FornecedorHandler) UpdateFornecedor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de fornecedor inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var req models.UpdateFornecedorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	var fornecedor models.Fornecedor
	if err := h.db.First(&fornecedor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Fornecedor não encontrado",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar fornecedor",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	fornecedor.Nome = req.Nome
	fornecedor.Email = req.Email
	fornecedor.Telefone = req.Telefone
	fornecedor.CNPJ = nil
	if req.CNPJ != "" {
		fornecedor.CNPJ = &req.CNPJ
	}
	fornecedor.Endereco = req.Endereco
	fornecedor.Cidade = req.Cidade
	fornecedor.Estado = strings.ToUpper(req.Estado)
	fornecedor.CEP = req.CEP
	if req.Ativo != nil {
		fornecedor.Ativo = *req.Ativo
	}

	if err := h.db.Save(&fornecedor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao atualizar fornecedor",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, fornecedor)
}

func (h *FornecedorHandler) DeleteFornecedor(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de fornecedor inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var fornecedor models.Fornecedor
	if err := h.db.First(&fornecedor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Fornecedor não encontrado",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar fornecedor",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	// products keep existing with fornecedor_id set to NULL
	if err := h.db.Delete(&fornecedor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao deletar fornecedor",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.Status(http.StatusNoContent)
}
