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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo persistência de operadores do PDV.
type UsuarioRepo struct {
	q Querier
}

func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um usuário. Email duplicado vira ErrEmailJaCadastrado.
func (r *UsuarioRepo) Create(usuario *entity.Usuario) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO usuarios (id, nome, email, senha_hash, papel, ativo, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		usuario.ID, usuario.Nome, usuario.Email, usuario.SenhaHash, usuario.Papel, usuario.Ativo, usuario.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailJaCadastrado
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

func (r *UsuarioRepo) GetByID(id string) (*entity.Usuario, error) {
	return r.get(`SELECT id, nome, email, senha_hash, papel, ativo, created_at FROM usuarios WHERE id = $1`, id)
}

func (r *UsuarioRepo) GetByEmail(email string) (*entity.Usuario, error) {
	return r.get(`SELECT id, nome, email, senha_hash, papel, ativo, created_at FROM usuarios WHERE email = $1`, email)
}

func (r *UsuarioRepo) get(query, arg string) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.Papel, &u.Ativo, &u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
