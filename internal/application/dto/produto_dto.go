package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarProdutoRequest entrada para criar um produto.
// Os campos fiscais são opcionais e gravados como vieram (pass-through NFC-e).
type CriarProdutoRequest struct {
	Nome           string           `json:"nome"`
	CodigoBarras   string           `json:"codigo_barras"`
	Preco          decimal.Decimal  `json:"preco"`
	EstoqueInicial int              `json:"estoque_inicial"`
	EstoqueMinimo  *int             `json:"estoque_minimo"`
	EstoqueMaximo  *int             `json:"estoque_maximo"`
	Categoria      string           `json:"categoria"`
	Descricao      string           `json:"descricao"`
	NCM            string           `json:"ncm"`
	CFOP           string           `json:"cfop"`
	UnidadeMedida  string           `json:"unidade_medida"`
	Origem         string           `json:"origem"`
	CSTICMS        string           `json:"cst_icms"`
	AliquotaICMS   decimal.Decimal  `json:"aliquota_icms"`
	CSTPIS         string           `json:"cst_pis"`
	AliquotaPIS    decimal.Decimal  `json:"aliquota_pis"`
	CSTCOFINS      string           `json:"cst_cofins"`
	AliquotaCOFINS decimal.Decimal  `json:"aliquota_cofins"`
	CSTIPI         *string          `json:"cst_ipi"`
	AliquotaIPI    decimal.Decimal  `json:"aliquota_ipi"`
}

// AtualizarProdutoRequest atualização parcial (Estoque não é editável aqui:
// só via movimentos).
type AtualizarProdutoRequest struct {
	Nome          *string          `json:"nome"`
	CodigoBarras  *string          `json:"codigo_barras"`
	Preco         *decimal.Decimal `json:"preco"`
	EstoqueMinimo *int             `json:"estoque_minimo"`
	EstoqueMaximo *int             `json:"estoque_maximo"`
	Categoria     *string          `json:"categoria"`
	Descricao     *string          `json:"descricao"`
	NCM           *string          `json:"ncm"`
	CFOP          *string          `json:"cfop"`
	UnidadeMedida *string          `json:"unidade_medida"`
	CSTICMS       *string          `json:"cst_icms"`
	AliquotaICMS  *decimal.Decimal `json:"aliquota_icms"`
}

// ProdutoResponse saída de um produto.
type ProdutoResponse struct {
	ID             string          `json:"id"`
	Nome           string          `json:"nome"`
	CodigoBarras   string          `json:"codigo_barras,omitempty"`
	Preco          decimal.Decimal `json:"preco"`
	Estoque        int             `json:"estoque"`
	EstoqueMinimo  int             `json:"estoque_minimo"`
	EstoqueMaximo  int             `json:"estoque_maximo"`
	EstoqueInicial int             `json:"estoque_inicial"`
	Categoria      string          `json:"categoria,omitempty"`
	Descricao      string          `json:"descricao,omitempty"`
	FotoURL        string          `json:"foto_url,omitempty"`
	NCM            string          `json:"ncm"`
	CFOP           string          `json:"cfop"`
	UnidadeMedida  string          `json:"unidade_medida"`
	Origem         string          `json:"origem"`
	Ativo          bool            `json:"ativo"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProdutoListResponse lista paginada de produtos.
type ProdutoListResponse struct {
	Items []ProdutoResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
