package repository

import (
	"github.com/donnatureza/pdv-api/internal/domain/entity"
)

// ProdutoRepository porta de persistência do catálogo.
// GetForUpdate e AtualizarEstoque só devem ser usados dentro de uma transação
// (repos atados à tx pelo TxRunner): toda mutação de estoque passa por eles.
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id string) (*entity.Produto, error)
	GetByCodigoBarras(codigo string) (*entity.Produto, error)
	// GetForUpdate bloqueia a linha do produto (SELECT ... FOR UPDATE).
	GetForUpdate(id string) (*entity.Produto, error)
	// AtualizarEstoque grava a nova quantidade; commit junto com o movimento.
	AtualizarEstoque(id string, quantidade int) error
	Update(produto *entity.Produto) error
	AtualizarFoto(id, fotoURL string) error
	// SoftDelete marca ativo=false; produtos nunca são removidos fisicamente.
	SoftDelete(id string) error
	ListAtivos(limit, offset int) ([]*entity.Produto, error)
	// Buscar filtra ativos por nome, código de barras ou categoria (substring).
	Buscar(termo string, limit int) ([]*entity.Produto, error)
	// ListEstoqueBaixo: ativos com estoque <= estoque_minimo, ordenado por nome.
	ListEstoqueBaixo() ([]*entity.Produto, error)
	// ListEstoqueAlto: ativos com estoque >= estoque_maximo, ordenado por nome.
	ListEstoqueAlto() ([]*entity.Produto, error)
}
