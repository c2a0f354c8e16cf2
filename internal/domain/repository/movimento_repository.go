package repository

import (
	"github.com/donnatureza/pdv-api/internal/domain/entity"
)

// FiltroMovimentos filtros do histórico de movimentações.
// ProdutoID e Tipo vazios significam "todos". Limit <= 0 usa o padrão do repo.
type FiltroMovimentos struct {
	ProdutoID string
	Tipo      entity.TipoMovimento
	Limit     int
}

// MovimentoRepository porta do ledger de movimentos. Apenas inserção e
// leitura: lançamentos nunca são atualizados nem removidos.
type MovimentoRepository interface {
	Create(movimento *entity.MovimentoEstoque) error
	// List retorna movimentos do mais recente para o mais antigo.
	List(filtro FiltroMovimentos) ([]*entity.MovimentoEstoque, error)
}
