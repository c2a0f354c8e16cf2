package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/donnatureza/pdv-api/internal/application/dto"
	"github.com/donnatureza/pdv-api/internal/application/venda"
)

// VendaHandler criação e consulta de vendas + cupom (protegido).
type VendaHandler struct {
	uc      *venda.VendaUseCase
	cupomUC *venda.CupomUseCase
}

// NewVendaHandler constrói o handler.
func NewVendaHandler(uc *venda.VendaUseCase, cupomUC *venda.CupomUseCase) *VendaHandler {
	return &VendaHandler{uc: uc, cupomUC: cupomUC}
}

// Criar godoc
// @Summary      Registrar venda (baixa estoque na mesma transação)
// @Tags         vendas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarVendaRequest  true  "Itens da venda"
// @Success      201   {object}  dto.VendaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vendas [post]
func (h *VendaHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarVendaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if len(in.Itens) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "venda sem itens"})
	}
	out, err := h.uc.CriarVenda(c.Context(), in, GetUsuarioNome(c))
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Listar godoc
// @Summary      Listar vendas (mais recentes primeiro)
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.VendaListResponse
// @Router       /api/vendas [get]
func (h *VendaHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginação inválida"})
	}
	out, err := h.uc.ListarVendas(c.Context(), page)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// ObterPorID godoc
// @Summary      Obter venda por ID
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {object}  dto.VendaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id} [get]
func (h *VendaHandler) ObterPorID(c *fiber.Ctx) error {
	out, err := h.uc.ObterVenda(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "venda não encontrada"})
	}
	return c.JSON(out)
}

// Cupom godoc
// @Summary      Cupom da venda em HTML (bobina 58mm)
// @Tags         vendas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {object}  dto.CupomResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id}/cupom [get]
func (h *VendaHandler) Cupom(c *fiber.Ctx) error {
	html, err := h.cupomUC.GerarCupomHTML(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(dto.CupomResponse{CupomHTML: html})
}

// CupomPDF godoc
// @Summary      Cupom da venda em PDF
// @Tags         vendas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID da venda"
// @Success      200  {file}  file
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vendas/{id}/cupom/pdf [get]
func (h *VendaHandler) CupomPDF(c *fiber.Ctx) error {
	pdfBytes, err := h.cupomUC.GerarCupomPDF(c.Context(), c.Params("id"))
	if err != nil {
		return responderErro(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="cupom.pdf"`)
	return c.Send(pdfBytes)
}
