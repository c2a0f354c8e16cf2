package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item do catálogo da loja.
// Estoque é mantido exclusivamente pelo motor de movimentos (ledger);
// nenhum outro caminho do código escreve nesse campo.
// Os campos fiscais (NCM, CFOP, CST, alíquotas) são atributos opacos da NFC-e:
// armazenados e devolvidos como vieram, nunca calculados aqui.
type Produto struct {
	ID             string
	Nome           string
	CodigoBarras   string // opcional, único quando presente
	Preco          decimal.Decimal
	Estoque        int
	EstoqueMinimo  int
	EstoqueMaximo  int
	EstoqueInicial int
	Categoria      string
	Descricao      string
	FotoURL        string

	// Campos fiscais (pass-through NFC-e)
	NCM            string
	CFOP           string
	UnidadeMedida  string
	Origem         string
	CSTICMS        string
	AliquotaICMS   decimal.Decimal
	CSTPIS         string
	AliquotaPIS    decimal.Decimal
	CSTCOFINS      string
	AliquotaCOFINS decimal.Decimal
	CSTIPI         *string
	AliquotaIPI    decimal.Decimal

	Ativo     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// EstoqueBaixo indica estoque no limite mínimo ou abaixo (limite inclusivo).
func (p *Produto) EstoqueBaixo() bool { return p.Estoque <= p.EstoqueMinimo }

// EstoqueAlto indica estoque no limite máximo ou acima (limite inclusivo).
func (p *Produto) EstoqueAlto() bool { return p.Estoque >= p.EstoqueMaximo }
