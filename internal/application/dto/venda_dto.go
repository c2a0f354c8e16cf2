package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemVendaRequest linha de uma venda a criar.
// PrecoUnitario zero usa o preço atual do catálogo.
type ItemVendaRequest struct {
	ProdutoID     string          `json:"produto_id"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
}

// CriarVendaRequest body para POST /api/vendas.
type CriarVendaRequest struct {
	Itens          []ItemVendaRequest `json:"itens"`
	Desconto       decimal.Decimal    `json:"desconto"`
	CPFCliente     string             `json:"cpf_cliente,omitempty"`
	FormaPagamento string             `json:"forma_pagamento"`
}

// ItemVendaResponse linha de venda na resposta.
type ItemVendaResponse struct {
	ID            string          `json:"id"`
	ProdutoID     string          `json:"produto_id"`
	Quantidade    int             `json:"quantidade"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// VendaResponse saída de uma venda.
type VendaResponse struct {
	ID             string              `json:"id"`
	Total          decimal.Decimal     `json:"total"`
	Desconto       decimal.Decimal     `json:"desconto"`
	CPFCliente     string              `json:"cpf_cliente,omitempty"`
	FormaPagamento string              `json:"forma_pagamento"`
	NFCeNumero     string              `json:"nfce_numero,omitempty"`
	NFCeChave      string              `json:"nfce_chave,omitempty"`
	NFCeQRCode     string              `json:"nfce_qr_code,omitempty"`
	Status         string              `json:"status"`
	CreatedAt      time.Time           `json:"created_at"`
	Itens          []ItemVendaResponse `json:"itens"`
}

// VendaListResponse lista paginada de vendas.
type VendaListResponse struct {
	Items []VendaResponse `json:"items"`
	Page  PageResponse    `json:"page"`
}

// CupomResponse cupom em HTML para impressão.
type CupomResponse struct {
	CupomHTML string `json:"cupom_html"`
}
