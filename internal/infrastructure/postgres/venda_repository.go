package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/donnatureza/pdv-api/internal/domain/entity"
	"github.com/donnatureza/pdv-api/internal/domain/repository"
)

var _ repository.VendaRepository = (*VendaRepo)(nil)

// VendaRepo persistência de vendas e itens de venda.
type VendaRepo struct {
	q Querier
}

func NewVendaRepository(q Querier) *VendaRepo {
	return &VendaRepo{q: q}
}

const vendaColunas = `id, total, desconto, cpf_cliente, forma_pagamento, nfce_numero, nfce_chave, nfce_qrcode, status, created_at`

// Create persiste a venda (sem itens; usar CreateItem na mesma transação).
func (r *VendaRepo) Create(venda *entity.Venda) error {
	query := `
		INSERT INTO vendas (id, total, desconto, cpf_cliente, forma_pagamento, nfce_numero, nfce_chave, nfce_qrcode, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		venda.ID, venda.Total, venda.Desconto,
		strOuNil(venda.CPFCliente), venda.FormaPagamento,
		strOuNil(venda.NFCeNumero), strOuNil(venda.NFCeChave), strOuNil(venda.NFCeQRCode),
		venda.Status, venda.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert venda: %w", err)
	}
	return nil
}

// CreateItem persiste uma linha da venda.
func (r *VendaRepo) CreateItem(item *entity.ItemVenda) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO itens_venda (id, venda_id, produto_id, quantidade, preco_unitario)
		 VALUES ($1, $2, $3, $4, $5)`,
		item.ID, item.VendaID, item.ProdutoID, item.Quantidade, item.PrecoUnitario,
	)
	if err != nil {
		return fmt.Errorf("insert item de venda: %w", err)
	}
	return nil
}

// GetByID devolve a venda com os itens carregados; nil se não existir.
func (r *VendaRepo) GetByID(id string) (*entity.Venda, error) {
	v, err := scanVenda(r.q.QueryRow(context.Background(),
		`SELECT `+vendaColunas+` FROM vendas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venda: %w", err)
	}
	itens, err := r.itensDaVenda(v.ID)
	if err != nil {
		return nil, err
	}
	v.Itens = itens
	return v, nil
}

// List retorna vendas mais recentes primeiro, com itens carregados.
func (r *VendaRepo) List(limit, offset int) ([]*entity.Venda, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+vendaColunas+` FROM vendas ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list vendas: %w", err)
	}
	defer rows.Close()

	var list []*entity.Venda
	for rows.Next() {
		v, err := scanVenda(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venda: %w", err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, v := range list {
		itens, err := r.itensDaVenda(v.ID)
		if err != nil {
			return nil, err
		}
		v.Itens = itens
	}
	return list, nil
}

func (r *VendaRepo) itensDaVenda(vendaID string) ([]*entity.ItemVenda, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT id, venda_id, produto_id, quantidade, preco_unitario
		 FROM itens_venda WHERE venda_id = $1 ORDER BY id`, vendaID)
	if err != nil {
		return nil, fmt.Errorf("list itens da venda: %w", err)
	}
	defer rows.Close()

	var itens []*entity.ItemVenda
	for rows.Next() {
		var it entity.ItemVenda
		if err := rows.Scan(&it.ID, &it.VendaID, &it.ProdutoID, &it.Quantidade, &it.PrecoUnitario); err != nil {
			return nil, fmt.Errorf("scan item de venda: %w", err)
		}
		itens = append(itens, &it)
	}
	return itens, rows.Err()
}

func scanVenda(row pgx.Row) (*entity.Venda, error) {
	var v entity.Venda
	var cpf, nfceNumero, nfceChave, nfceQRCode *string
	err := row.Scan(
		&v.ID, &v.Total, &v.Desconto, &cpf, &v.FormaPagamento,
		&nfceNumero, &nfceChave, &nfceQRCode, &v.Status, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if cpf != nil {
		v.CPFCliente = *cpf
	}
	if nfceNumero != nil {
		v.NFCeNumero = *nfceNumero
	}
	if nfceChave != nil {
		v.NFCeChave = *nfceChave
	}
	if nfceQRCode != nil {
		v.NFCeQRCode = *nfceQRCode
	}
	return &v, nil
}
