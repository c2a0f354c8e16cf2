package repository

import (
	"github.com/donnatureza/pdv-api/internal/domain/entity"
)

// UsuarioRepository porta de persistência de operadores do PDV.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id string) (*entity.Usuario, error)
	GetByEmail(email string) (*entity.Usuario, error)
}
