package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status possíveis de uma venda.
const (
	VendaPendente   = "pendente"
	VendaAutorizada = "autorizada"
	VendaCancelada  = "cancelada"
)

// Formas de pagamento aceitas.
const (
	PagamentoDinheiro      = "dinheiro"
	PagamentoCartaoCredito = "cartao_credito"
	PagamentoCartaoDebito  = "cartao_debito"
	PagamentoPix           = "pix"
)

var formasPagamento = map[string]bool{
	PagamentoDinheiro:      true,
	PagamentoCartaoCredito: true,
	PagamentoCartaoDebito:  true,
	PagamentoPix:           true,
}

// FormaPagamentoValida informa se a forma pertence à enumeração.
func FormaPagamentoValida(forma string) bool {
	return formasPagamento[forma]
}

// Venda agrega itens vendidos em uma operação de caixa.
// Total = soma dos subtotais dos itens - Desconto.
// Os campos NFCe* são pass-through: gravados quando informados, nunca gerados.
type Venda struct {
	ID             string
	Total          decimal.Decimal
	Desconto       decimal.Decimal
	CPFCliente     string
	FormaPagamento string // dinheiro, cartao_credito, cartao_debito, pix
	NFCeNumero     string
	NFCeChave      string
	NFCeQRCode     string
	Status         string
	CreatedAt      time.Time
	Itens          []*ItemVenda
}

// ItemVenda é uma linha da venda: produto, quantidade e preço praticado.
type ItemVenda struct {
	ID            string
	VendaID       string
	ProdutoID     string
	Quantidade    int
	PrecoUnitario decimal.Decimal
}

// Subtotal retorna Quantidade * PrecoUnitario.
func (i *ItemVenda) Subtotal() decimal.Decimal {
	return i.PrecoUnitario.Mul(decimal.NewFromInt(int64(i.Quantidade)))
}
