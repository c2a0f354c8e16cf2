package dto

import "github.com/shopspring/decimal"

// ResumoEstoque cabeçalho do relatório geral de estoque.
type ResumoEstoque struct {
	TotalProdutos        int             `json:"total_produtos"`
	TotalValorEstoque    decimal.Decimal `json:"total_valor_estoque"`
	ProdutosEstoqueBaixo int             `json:"produtos_estoque_baixo"`
	ProdutosEstoqueAlto  int             `json:"produtos_estoque_alto"`
}

// CategoriaEstoqueDTO agregado por categoria.
type CategoriaEstoqueDTO struct {
	Quantidade int             `json:"quantidade"`
	Valor      decimal.Decimal `json:"valor"`
}

// ProdutoEstoqueDTO linha do relatório geral de estoque.
// Status: "baixo" | "normal" | "alto" (limites inclusivos).
type ProdutoEstoqueDTO struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	Categoria     string          `json:"categoria,omitempty"`
	EstoqueAtual  int             `json:"estoque_atual"`
	EstoqueMinimo int             `json:"estoque_minimo"`
	EstoqueMaximo int             `json:"estoque_maximo"`
	Preco         decimal.Decimal `json:"preco"`
	ValorTotal    decimal.Decimal `json:"valor_total"`
	Status        string          `json:"status"`
}

// RelatorioEstoqueResponse payload de GET /api/estoque/relatorio.
type RelatorioEstoqueResponse struct {
	Resumo     ResumoEstoque                  `json:"resumo"`
	Categorias map[string]CategoriaEstoqueDTO `json:"categorias"`
	Produtos   []ProdutoEstoqueDTO            `json:"produtos"`
}

// VendasPeriodoResponse agregado de vendas por período.
type VendasPeriodoResponse struct {
	TotalVendas      decimal.Decimal `json:"total_vendas"`
	QuantidadeVendas int             `json:"quantidade_vendas"`
	TicketMedio      decimal.Decimal `json:"ticket_medio"`
}

// ProdutoMaisVendidoDTO linha do ranking de mais vendidos.
type ProdutoMaisVendidoDTO struct {
	Produto           string          `json:"produto"`
	QuantidadeVendida int             `json:"quantidade_vendida"`
	Faturamento       decimal.Decimal `json:"faturamento"`
}

// FormaPagamentoDTO agregado por forma de pagamento.
type FormaPagamentoDTO struct {
	FormaPagamento string          `json:"forma_pagamento"`
	Quantidade     int             `json:"quantidade"`
	Total          decimal.Decimal `json:"total"`
}
