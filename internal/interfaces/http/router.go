package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donnatureza/pdv-api/internal/application/auth"
	"github.com/donnatureza/pdv-api/internal/application/estoque"
	"github.com/donnatureza/pdv-api/internal/application/usecase"
	"github.com/donnatureza/pdv-api/internal/application/venda"
	"github.com/donnatureza/pdv-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	ProdutoUC   *usecase.ProdutoUseCase
	EstoqueUC   *estoque.EstoqueUseCase
	VendaUC     *venda.VendaUseCase
	CupomUC     *venda.CupomUseCase
	RelatorioUC *usecase.RelatorioUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
	FotosDir    string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Registrar)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Produtos
	produtos := protected.Group("/produtos")
	produtoHandler := NewProdutoHandler(deps.ProdutoUC, deps.FotosDir)
	produtos.Post("/", produtoHandler.Criar)
	produtos.Get("/", produtoHandler.Listar)
	produtos.Get("/buscar", produtoHandler.Buscar)
	produtos.Get("/:id", produtoHandler.ObterPorID)
	produtos.Put("/:id", produtoHandler.Atualizar)
	produtos.Post("/:id/foto", produtoHandler.AtualizarFoto)
	produtos.Delete("/:id", RequirePapel(entity.PapelAdmin), produtoHandler.Excluir)

	// Estoque (ledger de movimentos)
	estoqueGroup := protected.Group("/estoque")
	estoqueHandler := NewEstoqueHandler(deps.EstoqueUC, deps.RelatorioUC)
	estoqueGroup.Post("/movimento", RequirePapel(entity.PapelAdmin), estoqueHandler.Movimento)
	estoqueGroup.Post("/entrada", estoqueHandler.Entrada)
	estoqueGroup.Post("/ajuste", RequirePapel(entity.PapelAdmin), estoqueHandler.Ajuste)
	estoqueGroup.Get("/movimentos", estoqueHandler.Movimentos)
	estoqueGroup.Get("/alertas", estoqueHandler.Alertas)
	estoqueGroup.Get("/relatorio", estoqueHandler.Relatorio)

	// Vendas
	vendas := protected.Group("/vendas")
	vendaHandler := NewVendaHandler(deps.VendaUC, deps.CupomUC)
	vendas.Post("/", vendaHandler.Criar)
	vendas.Get("/", vendaHandler.Listar)
	vendas.Get("/:id", vendaHandler.ObterPorID)
	vendas.Get("/:id/cupom", vendaHandler.Cupom)
	vendas.Get("/:id/cupom/pdf", vendaHandler.CupomPDF)

	// Relatórios de vendas
	relatorios := protected.Group("/relatorios")
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	relatorios.Get("/vendas", relatorioHandler.VendasPeriodo)
	relatorios.Get("/vendas/hoje", relatorioHandler.VendasHoje)
	relatorios.Get("/mais-vendidos", relatorioHandler.MaisVendidos)
	relatorios.Get("/formas-pagamento", relatorioHandler.FormasPagamento)
}
