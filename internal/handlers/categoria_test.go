package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/vflopes/fake-ecommerce-api/internal/models"
)

func TestCreateCategoria(t *testing.T) {
	db := setupTestDB()
	handler := NewCategoriaHandler(db)

	tests := []struct {
		name           string
		requestBody    models.CreateCategoriaRequest
		expectedStatus int
	}{
		{
			name: "valid category creation",
			requestBody: models.CreateCategoriaRequest{
				Nome:      "Eletrônicos",
				Descricao: "Aparelhos e acessórios eletrônicos",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "missing description",
			requestBody: models.CreateCategoriaRequest{
				Nome: "Livros",
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			jsonBody, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest("POST", "/categorias", bytes.NewBuffer(jsonBody))
			req.Header.Set("Content-Type", "application/json")
			c.Request = req

			handler.CreateCategoria(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}

	// active defaults to true when omitted
	var categoria models.Categoria
	db.First(&categoria)
	assert.True(t, categoria.Ativa)
}

func TestUpdateCategoria(t *testing.T) {
	db := setupTestDB()
	handler := NewCategoriaHandler(db)

	categoria := models.Categoria{Nome: "Eletrônicos", Descricao: "Aparelhos", Ativa: true}
	db.Create(&categoria)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ativa := false
	jsonBody, _ := json.Marshal(models.UpdateCategoriaRequest{Ativa: &ativa})
	req, _ := http.NewRequest("PATCH", "/categorias/1", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = []gin.Param{{Key: "id", Value: "1"}}

	handler.UpdateCategoria(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Categoria
	db.First(&updated, categoria.ID)
	assert.False(t, updated.Ativa)
	assert.Equal(t, "Eletrônicos", updated.Nome)
	assert.Equal(t, "Aparelhos", updated.Descricao)
}

func TestDeleteCategoria(t *testing.T) {
	db := setupTestDB()
	handler := NewCategoriaHandler(db)

	categoria := models.Categoria{Nome: "Eletrônicos", Descricao: "Aparelhos"}
	db.Create(&categoria)
	produto := models.Produto{Nome: "Notebook", Descricao: "Notebook 14 polegadas", CategoriaID: &categoria.ID, Preco: 3500}
	db.Create(&produto)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("DELETE", "/categorias/1", nil)
	c.Request = req
	c.Params = []gin.Param{{Key: "id", Value: "1"}}

	handler.DeleteCategoria(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)

	// the product survives with its category reference nulled
	var orphan models.Produto
	db.First(&orphan, produto.ID)
	assert.Nil(t, orphan.CategoriaID)
}

func TestGetCategoria(t *testing.T) {
	db := setupTestDB()
	handler := NewCategoriaHandler(db)

	db.Create(&models.Categoria{Nome: "Eletrônicos", Descricao: "Aparelhos"})

	tests := []struct {
		name           string
		categoriaID    string
		expectedStatus int
	}{
		{name: "existing category", categoriaID: "1", expectedStatus: http.StatusOK},
		{name: "missing category", categoriaID: "42", expectedStatus: http.StatusNotFound},
		{name: "invalid id", categoriaID: "abc", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			req, _ := http.NewRequest("GET", "/categorias/"+tt.categoriaID, nil)
			c.Request = req
			c.Params = []gin.Param{{Key: "id", Value: tt.categoriaID}}

			handler.GetCategoria(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
