package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// CategoriaEstoque agregado de estoque por categoria.
type CategoriaEstoque struct {
	Categoria  string
	Quantidade int
	Valor      decimal.Decimal
}

// PosicaoEstoque situação de estoque de um produto para o relatório geral.
type PosicaoEstoque struct {
	ProdutoID     string
	Nome          string
	Categoria     string
	EstoqueAtual  int
	EstoqueMinimo int
	EstoqueMaximo int
	Preco         decimal.Decimal
	ValorTotal    decimal.Decimal // Preco * EstoqueAtual
}

// TotaisVendas agregado de vendas de um período.
type TotaisVendas struct {
	TotalVendas      decimal.Decimal
	QuantidadeVendas int
}

// ProdutoMaisVendido linha do ranking de produtos por quantidade vendida.
type ProdutoMaisVendido struct {
	Nome              string
	QuantidadeVendida int
	Faturamento       decimal.Decimal
}

// FormaPagamentoTotal agregado de vendas por forma de pagamento.
type FormaPagamentoTotal struct {
	FormaPagamento string
	Quantidade     int
	Total          decimal.Decimal
}

// RelatorioRepository consultas de agregação somente leitura (group-by no
// banco, sem passar pelos use cases de escrita).
type RelatorioRepository interface {
	// PosicoesEstoque lista produtos ativos com valorização (preco * estoque).
	PosicoesEstoque(ctx context.Context) ([]PosicaoEstoque, error)
	// EstoquePorCategoria agrega quantidade e valor por categoria de ativos.
	EstoquePorCategoria(ctx context.Context) ([]CategoriaEstoque, error)
	// TotaisVendasPeriodo soma vendas não canceladas no intervalo (datas opcionais).
	TotaisVendasPeriodo(ctx context.Context, inicio, fim *time.Time) (*TotaisVendas, error)
	// ProdutosMaisVendidos ranking por quantidade em vendas não canceladas.
	ProdutosMaisVendidos(ctx context.Context, limit int) ([]ProdutoMaisVendido, error)
	// TotaisPorFormaPagamento agrega vendas não canceladas por forma de pagamento.
	TotaisPorFormaPagamento(ctx context.Context) ([]FormaPagamentoTotal, error)
}
