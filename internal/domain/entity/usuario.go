package entity

import "time"

// Papéis de usuário.
const (
	PapelAdmin    = "admin"
	PapelVendedor = "vendedor"
)

// Usuario operador do PDV. O Nome é usado como rótulo de ator nos
// movimentos de estoque que o usuário dispara.
type Usuario struct {
	ID        string
	Nome      string
	Email     string
	SenhaHash string
	Papel     string
	Ativo     bool
	CreatedAt time.Time
}
