package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/donnatureza/pdv-api/internal/application/dto"
	"github.com/donnatureza/pdv-api/internal/domain"
)

// responderErro mapeia erros de domínio para status HTTP.
// ErroEstoqueInsuficiente vira 409 com a mensagem do próprio erro
// ("Estoque insuficiente. Atual: N, Solicitado: M").
func responderErro(c *fiber.Ctx, err error) error {
	var faltaEstoque *domain.ErroEstoqueInsuficiente
	switch {
	case errors.As(err, &faltaEstoque):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ESTOQUE_INSUFICIENTE", Message: faltaEstoque.Error()})
	case errors.Is(err, domain.ErrNaoEncontrado), errors.Is(err, domain.ErrUsuarioNaoEncontrado):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrEntradaInvalida), errors.Is(err, domain.ErrTipoMovimentoInvalido), errors.Is(err, domain.ErrSemAlteracao):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicado), errors.Is(err, domain.ErrEmailJaCadastrado):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: err.Error()})
	case errors.Is(err, domain.ErrNaoAutorizado):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
