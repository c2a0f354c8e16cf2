package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donnatureza/pdv-api/internal/application/dto"
	"github.com/donnatureza/pdv-api/internal/application/estoque"
	"github.com/donnatureza/pdv-api/internal/application/usecase"
	"github.com/donnatureza/pdv-api/internal/domain/entity"
	"github.com/donnatureza/pdv-api/internal/domain/repository"
)

// EstoqueHandler operações do ledger de estoque (protegido).
type EstoqueHandler struct {
	uc          *estoque.EstoqueUseCase
	relatorioUC *usecase.RelatorioUseCase
}

// NewEstoqueHandler constrói o handler.
func NewEstoqueHandler(uc *estoque.EstoqueUseCase, relatorioUC *usecase.RelatorioUseCase) *EstoqueHandler {
	return &EstoqueHandler{uc: uc, relatorioUC: relatorioUC}
}

// Movimento godoc
// @Summary      Registrar movimento de estoque de qualquer tipo
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarMovimentoRequest  true  "Movimento"
// @Success      201   {object}  dto.MovimentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/estoque/movimento [post]
func (h *EstoqueHandler) Movimento(c *fiber.Ctx) error {
	var in dto.CriarMovimentoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	mov, err := h.uc.CriarMovimento(c.Context(), estoque.CriarMovimentoInput{
		ProdutoID:     in.ProdutoID,
		Tipo:          entity.TipoMovimento(in.Tipo),
		Quantidade:    in.Quantidade,
		PrecoUnitario: in.PrecoUnitario,
		Motivo:        in.Motivo,
		Observacoes:   in.Observacoes,
		Documento:     in.Documento,
		Usuario:       GetUsuarioNome(c),
	})
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovimentoResponse(mov))
}

// Entrada godoc
// @Summary      Registrar entrada de estoque
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.EntradaEstoqueRequest  true  "Entrada"
// @Success      201   {object}  dto.MovimentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/estoque/entrada [post]
func (h *EstoqueHandler) Entrada(c *fiber.Ctx) error {
	var in dto.EntradaEstoqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	mov, err := h.uc.EntradaEstoque(c.Context(), estoque.EntradaInput{
		ProdutoID:     in.ProdutoID,
		Quantidade:    in.Quantidade,
		PrecoUnitario: in.PrecoUnitario,
		Motivo:        in.Motivo,
		Documento:     in.Documento,
		Usuario:       GetUsuarioNome(c),
	})
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovimentoResponse(mov))
}

// Ajuste godoc
// @Summary      Ajustar estoque para uma quantidade absoluta
// @Tags         estoque
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AjusteEstoqueRequest  true  "Ajuste"
// @Success      201   {object}  dto.MovimentoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/estoque/ajuste [post]
func (h *EstoqueHandler) Ajuste(c *fiber.Ctx) error {
	var in dto.AjusteEstoqueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	mov, err := h.uc.AjusteEstoque(c.Context(), estoque.AjusteInput{
		ProdutoID:      in.ProdutoID,
		QuantidadeNova: in.QuantidadeNova,
		Motivo:         in.Motivo,
		Usuario:        GetUsuarioNome(c),
	})
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toMovimentoResponse(mov))
}

// Movimentos godoc
// @Summary      Histórico de movimentações (mais recentes primeiro)
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Param        produto_id  query  string  false  "Filtrar por produto"
// @Param        tipo        query  string  false  "Filtrar por tipo de movimento"
// @Param        limit       query  int     false  "Limite"  default(100)
// @Success      200  {array}  dto.MovimentoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/estoque/movimentos [get]
func (h *EstoqueHandler) Movimentos(c *fiber.Ctx) error {
	filtro := repository.FiltroMovimentos{
		ProdutoID: c.Query("produto_id"),
		Tipo:      entity.TipoMovimento(c.Query("tipo")),
		Limit:     c.QueryInt("limit", 100),
	}
	movs, err := h.uc.ObterMovimentos(c.Context(), filtro)
	if err != nil {
		return responderErro(c, err)
	}
	out := make([]dto.MovimentoResponse, 0, len(movs))
	for _, m := range movs {
		out = append(out, *toMovimentoResponse(m))
	}
	return c.JSON(out)
}

// Alertas godoc
// @Summary      Produtos com estoque baixo ou alto (limites inclusivos)
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.AlertasEstoqueResponse
// @Router       /api/estoque/alertas [get]
func (h *EstoqueHandler) Alertas(c *fiber.Ctx) error {
	baixo, err := h.uc.EstoqueBaixo(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	alto, err := h.uc.EstoqueAlto(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	out := dto.AlertasEstoqueResponse{
		EstoqueBaixo: make([]dto.AlertaEstoque, 0, len(baixo)),
		EstoqueAlto:  make([]dto.AlertaEstoque, 0, len(alto)),
	}
	for _, p := range baixo {
		out.EstoqueBaixo = append(out.EstoqueBaixo, toAlertaEstoque(p))
	}
	for _, p := range alto {
		out.EstoqueAlto = append(out.EstoqueAlto, toAlertaEstoque(p))
	}
	return c.JSON(out)
}

// Relatorio godoc
// @Summary      Relatório geral de estoque (resumo, categorias, produtos)
// @Tags         estoque
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.RelatorioEstoqueResponse
// @Router       /api/estoque/relatorio [get]
func (h *EstoqueHandler) Relatorio(c *fiber.Ctx) error {
	out, err := h.relatorioUC.RelatorioEstoque(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

func toMovimentoResponse(m *entity.MovimentoEstoque) *dto.MovimentoResponse {
	return &dto.MovimentoResponse{
		ID:                 m.ID,
		ProdutoID:          m.ProdutoID,
		ProdutoNome:        m.ProdutoNome,
		Tipo:               string(m.Tipo),
		Quantidade:         m.Quantidade,
		QuantidadeAnterior: m.QuantidadeAnterior,
		QuantidadeNova:     m.QuantidadeNova,
		PrecoUnitario:      m.PrecoUnitario,
		ValorTotal:         m.ValorTotal,
		Motivo:             m.Motivo,
		Observacoes:        m.Observacoes,
		Usuario:            m.Usuario,
		Documento:          m.Documento,
		CreatedAt:          m.CreatedAt,
	}
}

func toAlertaEstoque(p *entity.Produto) dto.AlertaEstoque {
	return dto.AlertaEstoque{
		ID:            p.ID,
		Nome:          p.Nome,
		CodigoBarras:  p.CodigoBarras,
		EstoqueAtual:  p.Estoque,
		EstoqueMinimo: p.EstoqueMinimo,
		EstoqueMaximo: p.EstoqueMaximo,
		Categoria:     p.Categoria,
	}
}
