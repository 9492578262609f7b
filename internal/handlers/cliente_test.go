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

func TestCreateCliente(t *testing.T) {
	db := setupTestDB()
	handler := NewClienteHandler(db)

	tests := []struct {
		name           string
		requestBody    models.CreateClienteRequest
		expectedStatus int
		expectedError  string
	}{
		{
			name: "valid customer creation",
			requestBody: models.CreateClienteRequest{
				Nome:      "Maria",
				Sobrenome: "Silva",
				Email:     "maria.silva@example.com",
				Telefone:  "+55 11 91234-5678",
				CPF:       "123.456.789-00",
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "duplicate cpf",
			requestBody: models.CreateClienteRequest{
				Nome:      "Outra",
				Sobrenome: "Maria",
				Email:     "outra.maria@example.com",
				CPF:       "123.456.789-00",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "cpf_already_exists",
		},
		{
			name: "cpf with 10 digits",
			requestBody: models.CreateClienteRequest{
				Nome:      "Joao",
				Sobrenome: "Souza",
				Email:     "joao.souza@example.com",
				CPF:       "1234567890",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid_request",
		},
		{
			name: "missing required fields",
			requestBody: models.CreateClienteRequest{
				Nome: "Maria",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid_request",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			jsonBody, _ := json.Marshal(tt.requestBody)
			req, _ := http.NewRequest("POST", "/clientes", bytes.NewBuffer(jsonBody))
			req.Header.Set("Content-Type", "application/json")
			c.Request = req

			handler.CreateCliente(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				var errorResponse models.ErrorResponse
				json.Unmarshal(w.Body.Bytes(), &errorResponse)
				assert.Equal(t, tt.expectedError, errorResponse.Error)
			}
		})
	}
}

func TestCreateClienteDuplicateKeepsOriginal(t *testing.T) {
	db := setupTestDB()
	handler := NewClienteHandler(db)

	original := models.Cliente{
		Nome:      "Maria",
		Sobrenome: "Silva",
		Email:     "maria.silva@example.com",
		CPF:       strPtr("123.456.789-00"),
	}
	db.Create(&original)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	jsonBody, _ := json.Marshal(models.CreateClienteRequest{
		Nome:      "Impostora",
		Sobrenome: "Silva",
		Email:     "impostora@example.com",
		CPF:       "123.456.789-00",
	})
	req, _ := http.NewRequest("POST", "/clientes", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.CreateCliente(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var stored models.Cliente
	db.Where("cpf = ?", "123.456.789-00").First(&stored)
	assert.Equal(t, original.ID, stored.ID)
	assert.Equal(t, "Maria", stored.Nome)

	var count int64
	db.Model(&models.Cliente{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCreateClienteWithoutCPF(t *testing.T) {
	db := setupTestDB()
	handler := NewClienteHandler(db)

	// CPF is optional; two customers without one must not collide on the
	// unique index
	requests := []models.CreateClienteRequest{
		{Nome: "Maria", Sobrenome: "Silva", Email: "maria.silva@example.com"},
		{Nome: "Pedro", Sobrenome: "Santos", Email: "pedro.santos@example.com"},
	}

	for _, reqBody := range requests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		jsonBody, _ := json.Marshal(reqBody)
		req, _ := http.NewRequest("POST", "/clientes", bytes.NewBuffer(jsonBody))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req

		handler.CreateCliente(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	}

	var clientes []models.Cliente
	db.Find(&clientes)
	assert.Len(t, clientes, 2)
	for _, cliente := range clientes {
		assert.Nil(t, cliente.CPF)
	}
}

func TestGetCliente(t *testing.T) {
	db := setupTestDB()
	handler := NewClienteHandler(db)

	cliente := models.Cliente{
		Nome:      "Maria",
		Sobrenome: "Silva",
		Email:     "maria.silva@example.com",
		CPF:       strPtr("123.456.789-00"),
	}
	db.Create(&cliente)

	tests := []struct {
		name           string
		clienteID      string
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "valid customer id",
			clienteID:      "1",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid customer id",
			clienteID:      "invalid",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid_id",
		},
		{
			name:           "non-existent customer",
			clienteID:      "999",
			expectedStatus: http.StatusNotFound,
			expectedError:  "not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			req, _ := http.NewRequest("GET", "/clientes/"+tt.clienteID, nil)
			c.Request = req
			c.Params = []gin.Param{{Key: "id", Value: tt.clienteID}}

			handler.GetCliente(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedError != "" {
				var errorResponse models.ErrorResponse
				json.Unmarshal(w.Body.Bytes(), &errorResponse)
				assert.Equal(t, tt.expectedError, errorResponse.Error)
			}
		})
	}
}

func TestSearchClientes(t *testing.T) {
	db := setupTestDB()
	handler := NewClienteHandler(db)

	clientes := []models.Cliente{
		{Nome: "Maria", Sobrenome: "Silva", Email: "maria.silva@example.com", CPF: strPtr("111.111.111-11")},
		{Nome: "Mariana", Sobrenome: "Souza", Email: "mariana.souza@example.com", CPF: strPtr("222.222.222-22")},
		{Nome: "Pedro", Sobrenome: "Santos", Email: "pedro.santos@example.com", CPF: strPtr("333.333.333-33")},
	}
	for i := range clientes {
		db.Create(&clientes[i])
	}

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expectedCount  int
	}{
		{
			name:           "match by name substring",
			query:          "nome=maria",
			expectedStatus: http.StatusOK,
			expectedCount:  2,
		},
		{
			name:           "match by exact cpf",
			query:          "cpf=333.333.333-33",
			expectedStatus: http.StatusOK,
			expectedCount:  1,
		},
		{
			name:           "no match returns 404 instead of empty list",
			query:          "email=nobody",
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			req, _ := http.NewRequest("GET", "/clientes/buscar?"+tt.query, nil)
			c.Request = req

			handler.SearchClientes(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var result []models.Cliente
				json.Unmarshal(w.Body.Bytes(), &result)
				assert.Len(t, result, tt.expectedCount)
			}
		})
	}
}

func TestUpdateCliente(t *testing.T) {
	db := setupTestDB()
	handler := NewClienteHandler(db)

	cliente := models.Cliente{
		Nome:      "Maria",
		Sobrenome: "Silva",
		Email:     "maria.silva@example.com",
		Telefone:  "+55 11 91234-5678",
		CPF:       strPtr("123.456.789-00"),
	}
	db.Create(&cliente)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	// full replace: telefone omitted on purpose, it must be overwritten
	jsonBody, _ := json.Marshal(models.UpdateClienteRequest{
		Nome:      "Maria",
		Sobrenome: "Oliveira",
		Email:     "maria.oliveira@example.com",
		CPF:       "123.456.789-00",
	})
	req, _ := http.NewRequest("PUT", "/clientes/1", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = []gin.Param{{Key: "id", Value: "1"}}

	handler.UpdateCliente(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Cliente
	db.First(&updated, cliente.ID)
	assert.Equal(t, "Oliveira", updated.Sobrenome)
	assert.Equal(t, "maria.oliveira@example.com", updated.Email)
	assert.Equal(t, "", updated.Telefone)
}

func TestDeleteCliente(t *testing.T) {
	db := setupTestDB()
	handler := NewClienteHandler(db)

	cliente := models.Cliente{
		Nome:      "Maria",
		Sobrenome: "Silva",
		Email:     "maria.silva@example.com",
		CPF:       strPtr("123.456.789-00"),
	}
	db.Create(&cliente)
	db.Create(&models.Endereco{
		ClienteID:  cliente.ID,
		CEP:        "01310-100",
		Logradouro: "Avenida Paulista",
		Numero:     "1000",
		Bairro:     "Bela Vista",
		Cidade:     "São Paulo",
		Estado:     "SP",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest("DELETE", "/clientes/1", nil)
	c.Request = req
	c.Params = []gin.Param{{Key: "id", Value: "1"}}

	handler.DeleteCliente(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)

	var clienteCount, enderecoCount int64
	db.Model(&models.Cliente{}).Count(&clienteCount)
	db.Model(&models.Endereco{}).Count(&enderecoCount)
	assert.Equal(t, int64(0), clienteCount)
	assert.Equal(t, int64(0), enderecoCount)
}
