package dto

import "time"

// RegistrarUsuarioRequest body para POST /api/auth/register.
type RegistrarUsuarioRequest struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Senha string `json:"senha"`
	Papel string `json:"papel"`
}

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

// UsuarioResponse saída de um usuário (sem hash de senha).
type UsuarioResponse struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Papel     string    `json:"papel"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token + usuário autenticado.
type LoginResponse struct {
	Token   string          `json:"token"`
	Usuario UsuarioResponse `json:"usuario"`
}
