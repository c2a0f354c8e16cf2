package auth

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/donnatureza/pdv-api/internal/application/dto"
	"github.com/donnatureza/pdv-api/internal/domain"
	"github.com/donnatureza/pdv-api/internal/domain/entity"
	"github.com/donnatureza/pdv-api/internal/domain/repository"
	"github.com/donnatureza/pdv-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro e login de operadores do PDV.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Registrar cria um usuário com senha em hash bcrypt.
// Devolve ErrEmailJaCadastrado se o email já existir.
func (uc *AuthUseCase) Registrar(in dto.RegistrarUsuarioRequest) (*dto.UsuarioResponse, error) {
	if in.Email == "" || in.Senha == "" {
		return nil, domain.ErrEntradaInvalida
	}
	existente, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailJaCadastrado
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	nome := in.Nome
	if nome == "" {
		nome = in.Email
	}
	papel := in.Papel
	if papel == "" {
		papel = entity.PapelVendedor
	}
	usuario := &entity.Usuario{
		ID:        uuid.New().String(),
		Nome:      nome,
		Email:     in.Email,
		SenhaHash: string(hash),
		Papel:     papel,
		Ativo:     true,
		CreatedAt: time.Now(),
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return toUsuarioResponse(usuario), nil
}

// Login verifica email/senha e devolve token JWT + usuário.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	usuario, err := uc.usuarioRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNaoEncontrado
	}
	if !usuario.Ativo {
		return nil, domain.ErrNaoAutorizado
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrNaoAutorizado
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Nome, usuario.Papel, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Usuario: *toUsuarioResponse(usuario)}, nil
}

func toUsuarioResponse(u *entity.Usuario) *dto.UsuarioResponse {
	return &dto.UsuarioResponse{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		Papel:     u.Papel,
		CreatedAt: u.CreatedAt,
	}
}
