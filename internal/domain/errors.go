package domain

import (
	"errors"
	"fmt"
)

// Erros de domínio (sem dependências externas).
var (
	ErrNaoEncontrado         = errors.New("recurso não encontrado")
	ErrUsuarioNaoEncontrado  = errors.New("usuário não encontrado")
	ErrEmailJaCadastrado     = errors.New("o email já está cadastrado")
	ErrEntradaInvalida       = errors.New("entrada inválida")
	ErrDuplicado             = errors.New("recurso duplicado")
	ErrNaoAutorizado         = errors.New("não autorizado")
	ErrTipoMovimentoInvalido = errors.New("tipo de movimento inválido")
	ErrEstoqueInsuficiente   = errors.New("estoque insuficiente")
	ErrSemAlteracao          = errors.New("quantidade já está correta")
)

// ErroEstoqueInsuficiente indica que uma saída deixaria o estoque negativo.
// Carrega o estoque atual e a quantidade solicitada para a mensagem ao caller.
type ErroEstoqueInsuficiente struct {
	Atual      int
	Solicitado int
}

func (e *ErroEstoqueInsuficiente) Error() string {
	return fmt.Sprintf("Estoque insuficiente. Atual: %d, Solicitado: %d", e.Atual, e.Solicitado)
}

// Is permite errors.Is(err, domain.ErrEstoqueInsuficiente).
func (e *ErroEstoqueInsuficiente) Is(target error) bool {
	return target == ErrEstoqueInsuficiente
}
