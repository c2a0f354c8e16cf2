package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarMovimentoRequest body para POST /api/estoque/movimento.
// Aceita qualquer tipo da enumeração (entrada, saida, ajuste_positivo,
// ajuste_negativo, venda, compra, perda); quantidade é sempre magnitude.
type CriarMovimentoRequest struct {
	ProdutoID     string           `json:"produto_id"`
	Tipo          string           `json:"tipo_movimento"`
	Quantidade    int              `json:"quantidade"`
	PrecoUnitario *decimal.Decimal `json:"preco_unitario,omitempty"`
	Motivo        string           `json:"motivo"`
	Observacoes   string           `json:"observacoes,omitempty"`
	Documento     string           `json:"documento,omitempty"`
}

// EntradaEstoqueRequest body para POST /api/estoque/entrada.
type EntradaEstoqueRequest struct {
	ProdutoID     string           `json:"produto_id"`
	Quantidade    int              `json:"quantidade"`
	PrecoUnitario *decimal.Decimal `json:"preco_unitario,omitempty"`
	Motivo        string           `json:"motivo"`
	Documento     string           `json:"documento,omitempty"`
}

// AjusteEstoqueRequest body para POST /api/estoque/ajuste.
// QuantidadeNova é o alvo absoluto; o use case calcula o delta.
type AjusteEstoqueRequest struct {
	ProdutoID      string `json:"produto_id"`
	QuantidadeNova int    `json:"quantidade_nova"`
	Motivo         string `json:"motivo"`
}

// MovimentoResponse saída de um movimento do ledger.
type MovimentoResponse struct {
	ID                 string           `json:"id"`
	ProdutoID          string           `json:"produto_id"`
	ProdutoNome        string           `json:"produto_nome,omitempty"`
	Tipo               string           `json:"tipo_movimento"`
	Quantidade         int              `json:"quantidade"`
	QuantidadeAnterior int              `json:"quantidade_anterior"`
	QuantidadeNova     int              `json:"quantidade_nova"`
	PrecoUnitario      *decimal.Decimal `json:"preco_unitario,omitempty"`
	ValorTotal         *decimal.Decimal `json:"valor_total,omitempty"`
	Motivo             string           `json:"motivo,omitempty"`
	Observacoes        string           `json:"observacoes,omitempty"`
	Usuario            string           `json:"usuario,omitempty"`
	Documento          string           `json:"documento,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
}

// AlertaEstoque produto em situação de alerta (baixo ou alto).
type AlertaEstoque struct {
	ID            string `json:"id"`
	Nome          string `json:"nome"`
	CodigoBarras  string `json:"codigo_barras,omitempty"`
	EstoqueAtual  int    `json:"estoque_atual"`
	EstoqueMinimo int    `json:"estoque_minimo,omitempty"`
	EstoqueMaximo int    `json:"estoque_maximo,omitempty"`
	Categoria     string `json:"categoria,omitempty"`
}

// AlertasEstoqueResponse payload de GET /api/estoque/alertas.
type AlertasEstoqueResponse struct {
	EstoqueBaixo []AlertaEstoque `json:"estoque_baixo"`
	EstoqueAlto  []AlertaEstoque `json:"estoque_alto"`
}
