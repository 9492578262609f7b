package api

import (
	"github.com/gin-gonic/gin"
	"github.com/vflopes/fake-ecommerce-api/internal/handlers"
	"github.com/vflopes/fake-ecommerce-api/internal/services"
	"gorm.io/gorm"
)

// SetupRouter registers every route under the versioned prefix. The DB is
// injected into each handler; nothing here holds global state.
func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	healthHandler := handlers.NewHealthHandler(services.NewHealthService(db))
	categoriaHandler := handlers.NewCategoriaHandler(db)
	clienteHandler := handlers.NewClienteHandler(db)
	enderecoHandler := handlers.NewEnderecoHandler(db)
	fornecedorHandler := handlers.NewFornecedorHandler(db)
	produtoHandler := handlers.NewProdutoHandler(db)
	vendaHandler := handlers.NewVendaHandler(db)

	v1 := r.Group("/ecomm/v1")
	{
		v1.GET("/health", healthHandler.Check)

		categorias := v1.Group("/categorias")
		{
			categorias.POST("", categoriaHandler.CreateCategoria)
			categorias.GET("", categoriaHandler.GetCategorias)
			categorias.GET("/:id", categoriaHandler.GetCategoria)
			categorias.PATCH("/:id", categoriaHandler.UpdateCategoria)
			categorias.DELETE("/:id", categoriaHandler.DeleteCategoria)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clienteHandler.CreateCliente)
			clientes.GET("", clienteHandler.GetClientes)
			clientes.GET("/buscar", clienteHandler.SearchClientes)
			clientes.GET("/:id", clienteHandler.GetCliente)
			clientes.PUT("/:id", clienteHandler.UpdateCliente)
			clientes.DELETE("/:id", clienteHandler.DeleteCliente)
		}

		enderecos := v1.Group("/enderecos")
		{
			enderecos.POST("", enderecoHandler.CreateEndereco)
			enderecos.GET("", enderecoHandler.GetEnderecos)
			enderecos.GET("/buscar", enderecoHandler.SearchEnderecos)
			enderecos.GET("/cliente/:cliente_id", enderecoHandler.GetEnderecoByCliente)
			enderecos.GET("/:id", enderecoHandler.GetEndereco)
			enderecos.PUT("/:id", enderecoHandler.UpdateEndereco)
			enderecos.DELETE("/:id", enderecoHandler.DeleteEndereco)
		}

		fornecedores := v1.Group("/fornecedores")
		{
			fornecedores.POST("", fornecedorHandler.CreateFornecedor)
			fornecedores.GET("", fornecedorHandler.GetFornecedores)
			fornecedores.GET("/buscar", fornecedorHandler.SearchFornecedores)
			fornecedores.GET("/:id", fornecedorHandler.GetFornecedor)
			fornecedores.PUT("/:id", fornecedorHandler.UpdateFornecedor)
			fornecedores.DELETE("/:id", fornecedorHandler.DeleteFornecedor)
		}

		produtos := v1.Group("/produtos")
		{
			produtos.POST("", produtoHandler.CreateProduto)
			produtos.GET("", produtoHandler.GetProdutos)
			produtos.GET("/buscar", produtoHandler.SearchProdutos)
			produtos.GET("/:id", produtoHandler.GetProduto)
			produtos.PUT("/:id", produtoHandler.UpdateProduto)
			produtos.DELETE("/:id", produtoHandler.DeleteProduto)
		}

		vendas := v1.Group("/vendas")
		{
			vendas.POST("", vendaHandler.CreateVenda)
			vendas.GET("", vendaHandler.GetVendas)
			vendas.GET("/cliente/:cliente_id", vendaHandler.GetVendasByCliente)
			vendas.DELETE("/cliente/:cliente_id", vendaHandler.DeleteVendaByCliente)
			vendas.GET("/:venda_id", vendaHandler.GetVenda)
			vendas.DELETE("/:venda_id", vendaHandler.DeleteVenda)
			vendas.GET("/:venda_id/itens", vendaHandler.GetItensVenda)
			vendas.POST("/:venda_id/itens", vendaHandler.AddItemVenda)
			vendas.DELETE("/:venda_id/itens/:item_id", vendaHandler.RemoveItemVenda)
		}
	}

	return r
}
