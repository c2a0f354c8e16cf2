package http

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/donnatureza/pdv-api/internal/application/dto"
	"github.com/donnatureza/pdv-api/internal/application/usecase"
)

// ProdutoHandler CRUD do catálogo de produtos (protegido).
type ProdutoHandler struct {
	uc       *usecase.ProdutoUseCase
	fotosDir string
}

// NewProdutoHandler constrói o handler. fotosDir é o diretório onde as fotos
// enviadas por upload são gravadas (servido em /static).
func NewProdutoHandler(uc *usecase.ProdutoUseCase, fotosDir string) *ProdutoHandler {
	return &ProdutoHandler{uc: uc, fotosDir: fotosDir}
}

// Criar godoc
// @Summary      Criar produto
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CriarProdutoRequest  true  "Dados do produto"
// @Success      201   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/produtos [post]
func (h *ProdutoHandler) Criar(c *fiber.Ctx) error {
	var in dto.CriarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Criar(in)
	if err != nil {
		return responderErro(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ObterPorID godoc
// @Summary      Obter produto por ID
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProdutoResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [get]
func (h *ProdutoHandler) ObterPorID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.ObterPorID(id)
	if err != nil {
		return responderErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(out)
}

// Listar godoc
// @Summary      Listar produtos ativos
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {object}  dto.ProdutoListResponse
// @Router       /api/produtos [get]
func (h *ProdutoHandler) Listar(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "paginação inválida"})
	}
	out, err := h.uc.Listar(page)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Buscar godoc
// @Summary      Buscar produtos por nome, código de barras ou categoria
// @Tags         produtos
// @Security     Bearer
// @Produce      json
// @Param        q    query  string  true  "Termo de busca"
// @Success      200  {array}  dto.ProdutoResponse
// @Router       /api/produtos/buscar [get]
func (h *ProdutoHandler) Buscar(c *fiber.Ctx) error {
	termo := strings.TrimSpace(c.Query("q"))
	if termo == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parâmetro q é obrigatório"})
	}
	out, err := h.uc.Buscar(termo)
	if err != nil {
		return responderErro(c, err)
	}
	return c.JSON(out)
}

// Atualizar godoc
// @Summary      Atualizar produto (estoque não é editável aqui)
// @Tags         produtos
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.AtualizarProdutoRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.ProdutoResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [put]
func (h *ProdutoHandler) Atualizar(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.AtualizarProdutoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	out, err := h.uc.Atualizar(id, in)
	if err != nil {
		return responderErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(out)
}

// AtualizarFoto godoc
// @Summary      Enviar foto do produto (multipart)
// @Tags         produtos
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        id    path      string  true  "ID do produto"
// @Param        foto  formData  file    true  "Imagem (jpg/png/webp)"
// @Success      200   {object}  dto.ProdutoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/produtos/{id}/foto [post]
func (h *ProdutoHandler) AtualizarFoto(c *fiber.Ctx) error {
	id := c.Params("id")
	file, err := c.FormFile("foto")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "campo foto é obrigatório"})
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "formato de imagem não suportado"})
	}

	nomeArquivo := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	if err := c.SaveFile(file, filepath.Join(h.fotosDir, nomeArquivo)); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "falha ao gravar imagem"})
	}

	out, err := h.uc.AtualizarFoto(id, "/static/"+nomeArquivo)
	if err != nil {
		return responderErro(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "produto não encontrado"})
	}
	return c.JSON(out)
}

// Excluir godoc
// @Summary      Excluir produto (soft delete)
// @Tags         produtos
// @Security     Bearer
// @Param        id  path  string  true  "ID do produto"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/produtos/{id} [delete]
func (h *ProdutoHandler) Excluir(c *fiber.Ctx) error {
	if err := h.uc.Excluir(c.Params("id")); err != nil {
		return responderErro(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
