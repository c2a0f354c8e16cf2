package repository

import (
	"github.com/donnatureza/pdv-api/internal/domain/entity"
)

// VendaRepository porta de persistência de vendas e seus itens.
type VendaRepository interface {
	Create(venda *entity.Venda) error
	CreateItem(item *entity.ItemVenda) error
	// GetByID devolve a venda com itens carregados; nil se não existir.
	GetByID(id string) (*entity.Venda, error)
	List(limit, offset int) ([]*entity.Venda, error)
}
