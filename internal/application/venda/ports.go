package venda

import (
	"context"

	"github.com/donnatureza/pdv-api/internal/domain/entity"
	"github.com/donnatureza/pdv-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação com os repositórios de
// venda e de estoque atados à mesma tx. Venda, itens e movimentos do ledger
// são um único commit: ou tudo entra, ou nada entra.
type TxRunner interface {
	RunVenda(ctx context.Context, fn func(
		movRepo repository.MovimentoRepository,
		produtoRepo repository.ProdutoRepository,
		vendaRepo repository.VendaRepository,
	) error) error
}

// LinhaCupom linha do cupom com o nome do produto resolvido.
type LinhaCupom struct {
	Nome          string
	Quantidade    int
	PrecoUnitario string
	Subtotal      string
}

// CupomPDFGenerator gera a representação em PDF do cupom de uma venda.
type CupomPDFGenerator interface {
	GerarCupomPDF(ctx context.Context, venda *entity.Venda, linhas []LinhaCupom) ([]byte, error)
}
