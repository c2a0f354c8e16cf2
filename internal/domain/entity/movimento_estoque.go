package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TipoMovimento classifica uma mudança de estoque. Enumeração fechada:
// tags desconhecidas são rejeitadas na borda, antes de qualquer escrita.
type TipoMovimento string

// Tipos de movimento reconhecidos.
const (
	TipoEntrada        TipoMovimento = "entrada"
	TipoSaida          TipoMovimento = "saida"
	TipoAjustePositivo TipoMovimento = "ajuste_positivo"
	TipoAjusteNegativo TipoMovimento = "ajuste_negativo"
	TipoVenda          TipoMovimento = "venda"
	TipoCompra         TipoMovimento = "compra"
	TipoPerda          TipoMovimento = "perda"
)

// tabela de sinais: true soma ao estoque, false subtrai.
var sinalPorTipo = map[TipoMovimento]bool{
	TipoEntrada:        true,
	TipoCompra:         true,
	TipoAjustePositivo: true,
	TipoSaida:          false,
	TipoVenda:          false,
	TipoPerda:          false,
	TipoAjusteNegativo: false,
}

// Valido informa se o tipo pertence à enumeração.
func (t TipoMovimento) Valido() bool {
	_, ok := sinalPorTipo[t]
	return ok
}

// Aumenta informa se o tipo soma ao estoque. Só faz sentido para tipos válidos.
func (t TipoMovimento) Aumenta() bool {
	return sinalPorTipo[t]
}

// MovimentoEstoque é um lançamento imutável do ledger de estoque.
// Quantidade é sempre magnitude positiva; o sinal vem do tipo.
// QuantidadeAnterior/QuantidadeNova registram o snapshot antes/depois.
// Uma vez criado, nunca é atualizado nem removido.
type MovimentoEstoque struct {
	ID                 string
	ProdutoID          string
	ProdutoNome        string // denormalizado: não é coluna do ledger, vem do produto
	Tipo               TipoMovimento
	Quantidade         int
	QuantidadeAnterior int
	QuantidadeNova     int
	PrecoUnitario      *decimal.Decimal
	ValorTotal         *decimal.Decimal // PrecoUnitario * Quantidade quando há preço
	Motivo             string
	Observacoes        string
	Usuario            string // quem fez a movimentação
	Documento          string // nota fiscal, pedido de compra, VENDA-<id>, etc.
	CreatedAt          time.Time
}
