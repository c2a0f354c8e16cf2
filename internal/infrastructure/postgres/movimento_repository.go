package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/donnatureza/pdv-api/internal/domain/entity"
	"github.com/donnatureza/pdv-api/internal/domain/repository"
)

var _ repository.MovimentoRepository = (*MovimentoRepo)(nil)

// MovimentoRepo persistência do ledger de movimentos de estoque.
// O ledger é append-only: só existem Create e List.
type MovimentoRepo struct {
	q Querier
}

func NewMovimentoRepository(q Querier) *MovimentoRepo {
	return &MovimentoRepo{q: q}
}

// Create lança um movimento no ledger.
func (r *MovimentoRepo) Create(mov *entity.MovimentoEstoque) error {
	query := `
		INSERT INTO movimentos_estoque (id, produto_id, tipo, quantidade, quantidade_anterior, quantidade_nova,
			preco_unitario, valor_total, motivo, observacoes, usuario, documento, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.ProdutoID, string(mov.Tipo), mov.Quantidade, mov.QuantidadeAnterior, mov.QuantidadeNova,
		mov.PrecoUnitario, mov.ValorTotal,
		strOuNil(mov.Motivo), strOuNil(mov.Observacoes), strOuNil(mov.Usuario), strOuNil(mov.Documento),
		mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert movimento: %w", err)
	}
	return nil
}

// List retorna movimentos mais recentes primeiro, com filtros opcionais
// por produto e tipo. O nome do produto vem por join (LEFT: o movimento
// sobrevive mesmo que a linha do produto suma).
func (r *MovimentoRepo) List(filtro repository.FiltroMovimentos) ([]*entity.MovimentoEstoque, error) {
	query := `
		SELECT m.id, m.produto_id, COALESCE(p.nome, ''), m.tipo, m.quantidade,
			m.quantidade_anterior, m.quantidade_nova, m.preco_unitario, m.valor_total,
			m.motivo, m.observacoes, m.usuario, m.documento, m.created_at
		FROM movimentos_estoque m
		LEFT JOIN produtos p ON p.id = m.produto_id
		WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if filtro.ProdutoID != "" {
		query += fmt.Sprintf(" AND m.produto_id = $%d", idx)
		args = append(args, filtro.ProdutoID)
		idx++
	}
	if filtro.Tipo != "" {
		query += fmt.Sprintf(" AND m.tipo = $%d", idx)
		args = append(args, string(filtro.Tipo))
		idx++
	}
	query += fmt.Sprintf(" ORDER BY m.created_at DESC LIMIT $%d", idx)
	args = append(args, filtro.Limit)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentos: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovimentoEstoque
	for rows.Next() {
		m, err := scanMovimento(rows)
		if err != nil {
			return nil, fmt.Errorf("scan movimento: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}

func scanMovimento(row pgx.Row) (*entity.MovimentoEstoque, error) {
	var m entity.MovimentoEstoque
	var tipo string
	var motivo, observacoes, usuario, documento *string
	err := row.Scan(
		&m.ID, &m.ProdutoID, &m.ProdutoNome, &tipo, &m.Quantidade, &m.QuantidadeAnterior, &m.QuantidadeNova,
		&m.PrecoUnitario, &m.ValorTotal, &motivo, &observacoes, &usuario, &documento, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	m.Tipo = entity.TipoMovimento(tipo)
	if motivo != nil {
		m.Motivo = *motivo
	}
	if observacoes != nil {
		m.Observacoes = *observacoes
	}
	if usuario != nil {
		m.Usuario = *usuario
	}
	if documento != nil {
		m.Documento = *documento
	}
	return &m, nil
}
