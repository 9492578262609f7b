package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/vflopes/fake-ecommerce-api/internal/models"
	"gorm.io/gorm"
)

type CategoriaHandler struct {
	db *gorm.DB
}

func NewCategoriaHandler(db *gorm.DB) *CategoriaHandler {
	return &CategoriaHandler{db: db}
}

// CreateCategoria creates a new category
func (h *CategoriaHandler) CreateCategoria(c *gin.Context) {
	var req models.CreateCategoriaRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	categoria := models.Categoria{
		Nome:      req.Nome,
		Descricao: req.Descricao,
		Ativa:     true,
	}
	if req.Ativa != nil {
		categoria.Ativa = *req.Ativa
	}

	if err := h.db.Create(&categoria).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao criar categoria",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusCreated, categoria)
}

func (h *CategoriaHandler) GetCategorias(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	var categorias []models.Categoria
	if err := h.db.Offset(skip).Limit(limit).Find(&categorias).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao listar categorias",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, categorias)
}

func (h *CategoriaHandler) GetCategoria(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de categoria inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var categoria models.Categoria
	if err := h.db.First(&categoria, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Categoria não encontrada",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar categoria",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, categoria)
}

// UpdateCategoria patches the description and active flag only
func (h *CategoriaHandler) UpdateCategoria(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de categoria inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var req models.UpdateCategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
			Code:    http.StatusBadRequest,
		})
		return
	}

	var categoria models.Categoria
	if err := h.db.First(&categoria, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Categoria não encontrada",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar categoria",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if req.Descricao != nil {
		categoria.Descricao = *req.Descricao
	}
	if req.Ativa != nil {
		categoria.Ativa = *req.Ativa
	}

	if err := h.db.Save(&categoria).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao atualizar categoria",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, categoria)
}

func (h *CategoriaHandler) DeleteCategoria(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_id",
			Message: "id de categoria inválido",
			Code:    http.StatusBadRequest,
		})
		return
	}

	var categoria models.Categoria
	if err := h.db.First(&categoria, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse{
				Error:   "not_found",
				Message: "Categoria não encontrada",
				Code:    http.StatusNotFound,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao buscar categoria",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	if err := h.db.Delete(&categoria).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "database_error",
			Message: "falha ao deletar categoria",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.Status(http.StatusNoContent)
}
