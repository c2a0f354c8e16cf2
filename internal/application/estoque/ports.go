package estoque

import (
	"context"

	"github.com/donnatureza/pdv-api/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de BD, passando
// repositórios atados a essa tx. Garante que o lançamento no ledger e a
// atualização do estoque do produto sejam commitados juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentoRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}
