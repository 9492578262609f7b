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

type ProdutoHandler struct {
	db *gorm.DB
}

func NewProdutoHandler(db *gorm.DB) *ProdutoHandler {
	return &ProdutoHandler{db: db}
}

// CreateProduto creates a new product
func (h *ProdutoHandler) CreateProduto(c *gin.Context) {
	var req models.CreateProdutoRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	produto := models.Produto{
		Nome:         req.Nome,
		Descricao:    req.Descricao,
		CategoriaID:  req.CategoriaID,
		FornecedorID: req.FornecedorID,
		Preco:        req.Preco,
		Custo:        req.Custo,
		Peso:         req.Peso,
		EmEstoque:    true,
		Ativo:        true,
	}
	if req.QuantidadeEstoque != nil {
		produto.QuantidadeEstoque = *req.QuantidadeEstoque
	}
	if req.EmEstoque != nil {
		produto.EmEstoque = *req.EmEstoque
	}
	if req.Ativo != nil {
		produto.Ativo = *req.Ativo
	}

	if err := h.db.Create(&produto).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao criar produto",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusCreated, produto)
}

func (h *ProdutoHandler) GetProdutos(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	var produtos []models.Produto
	if err := h.db.Offset(skip).Limit(limit).Find(&produtos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao listar produtos",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, produtos)
}

// SearchProdutos filters by name substring or category id. Zero matches is
// a 404, not an empty list.
func (h *ProdutoHandler) SearchProdutos(c *gin.Context) {
	nome := c.Query("nome")
	categoriaID := c.Query("categoria_id")

	query := h.db.Model(&models.Produto{})
	if nome != "" {
		query = query.Where("LOWER(nome) LIKE ?", "%"+strings.ToLower(nome)+"%")
	}
	if categoriaID != "" {
		query = query.Where("categoria_id = ?", categoriaID)
	}

	var produtos []models.Produto
	if err := query.Find(&produtos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar produtos",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if len(produtos) == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "Nenhum produto encontrado",
			Code:    http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, produtos)
}

func (h *ProdutoHandler) GetProduto(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de produto inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var produto models.Produto
	if err := h.db.First(&produto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Produto não encontrado",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar produto",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, produto)
}

// UpdateProduto patches only the fields present in the request
func (h *ProdutoHandler) UpdateProduto(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de produto inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var req models.UpdateProdutoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	var produto models.Produto
	if err := h.db.First(&produto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Produto não encontrado",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar produto",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if req.Nome != nil {
		produto.Nome = *req.Nome
	}
	if req.Descricao != nil {
		produto.Descricao = *req.Descricao
	}
	if req.CategoriaID != nil {
		produto.CategoriaID = req.CategoriaID
	}
	if req.FornecedorID != nil {
		produto.FornecedorID = req.FornecedorID
	}
	if req.Preco != nil {
		produto.Preco = *req.Preco
	}
	if req.Custo != nil {
		produto.Custo = req.Custo
	}
	if req.Peso != nil {
		produto.Peso = req.Peso
	}
	if req.QuantidadeEstoque != nil {
		produto.QuantidadeEstoque = *req.QuantidadeEstoque
	}
	if req.EmEstoque != nil {
		produto.EmEstoque = *req.EmEstoque
	}
	if req.Ativo != nil {
		produto.Ativo = *req.Ativo
	}

	if err := h.db.Save(&produto).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao atualizar produto",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, produto)
}

func (h *ProdutoHandler) DeleteProduto(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de produto inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var produto models.Produto
	if err := h.db.First(&produto, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Produto não encontrado",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar produto",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if err := h.db.Delete(&produto).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao deletar produto",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.Status(http.StatusNoContent)
}
