package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/donnatureza/pdv-api/internal/domain/repository"
)

var _ repository.RelatorioRepository = (*RelatorioRepo)(nil)

// RelatorioRepo consultas de agregação somente leitura. Os group-by ficam
// no banco; os use cases só formatam o resultado.
type RelatorioRepo struct {
	q Querier
}

func NewRelatorioRepository(q Querier) *RelatorioRepo {
	return &RelatorioRepo{q: q}
}

func (r *RelatorioRepo) PosicoesEstoque(ctx context.Context) ([]repository.PosicaoEstoque, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, nome, COALESCE(categoria, ''), estoque, estoque_minimo, estoque_maximo, preco,
			preco * estoque AS valor_total
		FROM produtos
		WHERE ativo = true
		ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("posicoes de estoque: %w", err)
	}
	defer rows.Close()

	var list []repository.PosicaoEstoque
	for rows.Next() {
		var p repository.PosicaoEstoque
		if err := rows.Scan(&p.ProdutoID, &p.Nome, &p.Categoria, &p.EstoqueAtual,
			&p.EstoqueMinimo, &p.EstoqueMaximo, &p.Preco, &p.ValorTotal); err != nil {
			return nil, fmt.Errorf("scan posicao de estoque: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *RelatorioRepo) EstoquePorCategoria(ctx context.Context) ([]repository.CategoriaEstoque, error) {
	rows, err := r.q.Query(ctx, `
		SELECT COALESCE(categoria, ''), COALESCE(SUM(estoque), 0), COALESCE(SUM(preco * estoque), 0)
		FROM produtos
		WHERE ativo = true
		GROUP BY categoria
		ORDER BY COALESCE(categoria, '')`)
	if err != nil {
		return nil, fmt.Errorf("estoque por categoria: %w", err)
	}
	defer rows.Close()

	var list []repository.CategoriaEstoque
	for rows.Next() {
		var c repository.CategoriaEstoque
		if err := rows.Scan(&c.Categoria, &c.Quantidade, &c.Valor); err != nil {
			return nil, fmt.Errorf("scan categoria: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *RelatorioRepo) TotaisVendasPeriodo(ctx context.Context, inicio, fim *time.Time) (*repository.TotaisVendas, error) {
	query := `SELECT COALESCE(SUM(total), 0), COUNT(*) FROM vendas WHERE status <> 'cancelada'`
	args := []interface{}{}
	idx := 1
	if inicio != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", idx)
		args = append(args, *inicio)
		idx++
	}
	if fim != nil {
		query += fmt.Sprintf(" AND created_at < $%d", idx)
		args = append(args, *fim)
	}

	var t repository.TotaisVendas
	if err := r.q.QueryRow(ctx, query, args...).Scan(&t.TotalVendas, &t.QuantidadeVendas); err != nil {
		return nil, fmt.Errorf("totais de vendas: %w", err)
	}
	return &t, nil
}

func (r *RelatorioRepo) ProdutosMaisVendidos(ctx context.Context, limit int) ([]repository.ProdutoMaisVendido, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.nome, COALESCE(SUM(i.quantidade), 0), COALESCE(SUM(i.quantidade * i.preco_unitario), 0)
		FROM itens_venda i
		JOIN vendas v ON v.id = i.venda_id
		JOIN produtos p ON p.id = i.produto_id
		WHERE v.status <> 'cancelada'
		GROUP BY p.nome
		ORDER BY SUM(i.quantidade) DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("produtos mais vendidos: %w", err)
	}
	defer rows.Close()

	var list []repository.ProdutoMaisVendido
	for rows.Next() {
		var p repository.ProdutoMaisVendido
		if err := rows.Scan(&p.Nome, &p.QuantidadeVendida, &p.Faturamento); err != nil {
			return nil, fmt.Errorf("scan mais vendido: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func (r *RelatorioRepo) TotaisPorFormaPagamento(ctx context.Context) ([]repository.FormaPagamentoTotal, error) {
	rows, err := r.q.Query(ctx, `
		SELECT forma_pagamento, COUNT(*), COALESCE(SUM(total), 0)
		FROM vendas
		WHERE status <> 'cancelada'
		GROUP BY forma_pagamento
		ORDER BY SUM(total) DESC`)
	if err != nil {
		return nil, fmt.Errorf("totais por forma de pagamento: %w", err)
	}
	defer rows.Close()

	var list []repository.FormaPagamentoTotal
	for rows.Next() {
		var f repository.FormaPagamentoTotal
		if err := rows.Scan(&f.FormaPagamento, &f.Quantidade, &f.Total); err != nil {
			return nil, fmt.Errorf("scan forma de pagamento: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}
