package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/donnatureza/pdv-api/internal/application/estoque"
	"github.com/donnatureza/pdv-api/internal/application/venda"
	"github.com/donnatureza/pdv-api/internal/domain/repository"
)

// Ensure TxRunner implements estoque.TxRunner and venda.TxRunner.
var _ estoque.TxRunner = (*TxRunner)(nil)
var _ venda.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com os repos do ledger atados à tx e
// faz Commit ou Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimentoRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMovimentoRepository(tx), NewProdutoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunVenda inicia uma transação com os repos de ledger e de venda
// (para CriarVenda: cabeçalho, itens e movimentos em um único commit).
func (r *TxRunner) RunVenda(ctx context.Context, fn func(
	movRepo repository.MovimentoRepository,
	produtoRepo repository.ProdutoRepository,
	vendaRepo repository.VendaRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMovimentoRepository(tx), NewProdutoRepository(tx), NewVendaRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
