package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/donnatureza/pdv-api/internal/application/dto"
	"github.com/donnatureza/pdv-api/internal/application/usecase"
)

// RelatorioHandler relatórios gerenciais de vendas (protegido).
type RelatorioHandler struct {
	uc *usecase.RelatorioUseCase
}

// NewRelatorioHandler constrói o handler.
func NewRelatorioHandler(uc *usecase.RelatorioUseCase) *RelatorioHandler {
	return &RelatorioHandler{uc: uc}
}

// VendasPeriodo godoc
// @Summary      Totais de vendas por período
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        inicio  query  string  false  "Data inicial (YYYY-MM-DD)"
// @Param        fim     query  string  false  "Data final, exclusiva (YYYY-MM-DD)"
// @Success      200  {object}  dto.VendasPeriodoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/relatorios/vendas [get]
func (h *RelatorioHandler) VendasPeriodo(c *fiber.Ctx) error {
	inicio, err := parseData(c.Query("inicio"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "inicio inválido, use YYYY-MM-DD"})
	}
	fim, err := parseData(c.Query("fim"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fim inválido, use YYYY-MM-DD"})
	}
	out, err := h.uc.VendasPorPeriodo(c.Context(), inicio, fim)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// VendasHoje godoc
// @Summary      Totais de vendas do dia corrente
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.VendasPeriodoResponse
// @Router       /api/relatorios/vendas/hoje [get]
func (h *RelatorioHandler) VendasHoje(c *fiber.Ctx) error {
	out, err := h.uc.VendasHoje(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// MaisVendidos godoc
// @Summary      Ranking de produtos por quantidade vendida
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Tamanho do ranking"  default(10)
// @Success      200  {array}  dto.ProdutoMaisVendidoDTO
// @Router       /api/relatorios/mais-vendidos [get]
func (h *RelatorioHandler) MaisVendidos(c *fiber.Ctx) error {
	out, err := h.uc.ProdutosMaisVendidos(c.Context(), c.QueryInt("limit", 10))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// FormasPagamento godoc
// @Summary      Totais de vendas por forma de pagamento
// @Tags         relatorios
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.FormaPagamentoDTO
// @Router       /api/relatorios/formas-pagamento [get]
func (h *RelatorioHandler) FormasPagamento(c *fiber.Ctx) error {
	out, err := h.uc.FormasPagamento(c.Context())
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// parseData aceita vazio (nil) ou YYYY-MM-DD.
func parseData(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
