package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/donnatureza/pdv-api/internal/domain"
	"github.com/donnatureza/pdv-api/internal/domain/entity"
	"github.com/donnatureza/pdv-api/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

// ProdutoRepo implementação de ProdutoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

const produtoColunas = `id, nome, codigo_barras, preco, estoque, estoque_minimo, estoque_maximo, estoque_inicial,
	categoria, descricao, foto_url, ncm, cfop, unidade_medida, origem,
	cst_icms, aliquota_icms, cst_pis, aliquota_pis, cst_cofins, aliquota_cofins, cst_ipi, aliquota_ipi,
	ativo, created_at, updated_at`

// scanProduto lê uma linha de produtos. codigo_barras é NULL quando vazio
// (constraint único só vale para valores presentes).
func scanProduto(row pgx.Row) (*entity.Produto, error) {
	var p entity.Produto
	var codigoBarras, categoria, descricao, fotoURL *string
	err := row.Scan(
		&p.ID, &p.Nome, &codigoBarras, &p.Preco, &p.Estoque, &p.EstoqueMinimo, &p.EstoqueMaximo, &p.EstoqueInicial,
		&categoria, &descricao, &fotoURL, &p.NCM, &p.CFOP, &p.UnidadeMedida, &p.Origem,
		&p.CSTICMS, &p.AliquotaICMS, &p.CSTPIS, &p.AliquotaPIS, &p.CSTCOFINS, &p.AliquotaCOFINS, &p.CSTIPI, &p.AliquotaIPI,
		&p.Ativo, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if codigoBarras != nil {
		p.CodigoBarras = *codigoBarras
	}
	if categoria != nil {
		p.Categoria = *categoria
	}
	if descricao != nil {
		p.Descricao = *descricao
	}
	if fotoURL != nil {
		p.FotoURL = *fotoURL
	}
	return &p, nil
}

func strOuNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Create persiste um novo produto.
func (r *ProdutoRepo) Create(produto *entity.Produto) error {
	query := `
		INSERT INTO produtos (id, nome, codigo_barras, preco, estoque, estoque_minimo, estoque_maximo, estoque_inicial,
			categoria, descricao, foto_url, ncm, cfop, unidade_medida, origem,
			cst_icms, aliquota_icms, cst_pis, aliquota_pis, cst_cofins, aliquota_cofins, cst_ipi, aliquota_ipi,
			ativo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, strOuNil(produto.CodigoBarras), produto.Preco,
		produto.Estoque, produto.EstoqueMinimo, produto.EstoqueMaximo, produto.EstoqueInicial,
		strOuNil(produto.Categoria), strOuNil(produto.Descricao), strOuNil(produto.FotoURL),
		produto.NCM, produto.CFOP, produto.UnidadeMedida, produto.Origem,
		produto.CSTICMS, produto.AliquotaICMS, produto.CSTPIS, produto.AliquotaPIS,
		produto.CSTCOFINS, produto.AliquotaCOFINS, produto.CSTIPI, produto.AliquotaIPI,
		produto.Ativo, produto.CreatedAt, produto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID; nil se não existir.
func (r *ProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	p, err := scanProduto(r.q.QueryRow(context.Background(),
		`SELECT `+produtoColunas+` FROM produtos WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return p, nil
}

// GetByCodigoBarras obtém um produto pelo código de barras; nil se não existir.
func (r *ProdutoRepo) GetByCodigoBarras(codigo string) (*entity.Produto, error) {
	p, err := scanProduto(r.q.QueryRow(context.Background(),
		`SELECT `+produtoColunas+` FROM produtos WHERE codigo_barras = $1`, codigo))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto por codigo de barras: %w", err)
	}
	return p, nil
}

// GetForUpdate obtém o produto bloqueando a linha (SELECT ... FOR UPDATE).
// Usar apenas dentro de uma transação do TxRunner.
func (r *ProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	p, err := scanProduto(r.q.QueryRow(context.Background(),
		`SELECT `+produtoColunas+` FROM produtos WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto for update: %w", err)
	}
	return p, nil
}

// AtualizarEstoque grava a nova quantidade. Chamado só pelo motor de
// movimentos, na mesma transação do lançamento no ledger.
func (r *ProdutoRepo) AtualizarEstoque(id string, quantidade int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET estoque = $2, updated_at = now() WHERE id = $1`,
		id, quantidade,
	)
	if err != nil {
		return fmt.Errorf("atualizar estoque: %w", err)
	}
	return nil
}

// Update atualiza os campos editáveis do produto (estoque fica de fora).
func (r *ProdutoRepo) Update(produto *entity.Produto) error {
	query := `
		UPDATE produtos SET nome = $2, codigo_barras = $3, preco = $4, estoque_minimo = $5, estoque_maximo = $6,
			categoria = $7, descricao = $8, ncm = $9, cfop = $10, unidade_medida = $11,
			cst_icms = $12, aliquota_icms = $13, updated_at = $14
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		produto.ID, produto.Nome, strOuNil(produto.CodigoBarras), produto.Preco,
		produto.EstoqueMinimo, produto.EstoqueMaximo,
		strOuNil(produto.Categoria), strOuNil(produto.Descricao),
		produto.NCM, produto.CFOP, produto.UnidadeMedida,
		produto.CSTICMS, produto.AliquotaICMS, produto.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// AtualizarFoto grava a URL da foto.
func (r *ProdutoRepo) AtualizarFoto(id, fotoURL string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET foto_url = $2, updated_at = now() WHERE id = $1`,
		id, strOuNil(fotoURL),
	)
	if err != nil {
		return fmt.Errorf("atualizar foto: %w", err)
	}
	return nil
}

// SoftDelete marca o produto como inativo.
func (r *ProdutoRepo) SoftDelete(id string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET ativo = false, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("soft delete produto: %w", err)
	}
	return nil
}

// ListAtivos lista produtos ativos com paginação.
func (r *ProdutoRepo) ListAtivos(limit, offset int) ([]*entity.Produto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+produtoColunas+` FROM produtos WHERE ativo = true ORDER BY nome LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	return coletarProdutos(rows)
}

// Buscar filtra ativos por nome, código de barras ou categoria (substring,
// case-insensitive).
func (r *ProdutoRepo) Buscar(termo string, limit int) ([]*entity.Produto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+produtoColunas+` FROM produtos
		 WHERE ativo = true
		   AND (nome ILIKE '%' || $1 || '%' OR codigo_barras ILIKE '%' || $1 || '%' OR categoria ILIKE '%' || $1 || '%')
		 ORDER BY nome LIMIT $2`,
		termo, limit)
	if err != nil {
		return nil, fmt.Errorf("buscar produtos: %w", err)
	}
	return coletarProdutos(rows)
}

// ListEstoqueBaixo ativos com estoque <= estoque_minimo (limite inclusivo).
func (r *ProdutoRepo) ListEstoqueBaixo() ([]*entity.Produto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+produtoColunas+` FROM produtos WHERE ativo = true AND estoque <= estoque_minimo ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list estoque baixo: %w", err)
	}
	return coletarProdutos(rows)
}

// ListEstoqueAlto ativos com estoque >= estoque_maximo (limite inclusivo).
func (r *ProdutoRepo) ListEstoqueAlto() ([]*entity.Produto, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+produtoColunas+` FROM produtos WHERE ativo = true AND estoque >= estoque_maximo ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("list estoque alto: %w", err)
	}
	return coletarProdutos(rows)
}

func coletarProdutos(rows pgx.Rows) ([]*entity.Produto, error) {
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		p, err := scanProduto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}
