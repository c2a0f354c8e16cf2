package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donnatureza/pdv-api/internal/application/dto"
	"github.com/donnatureza/pdv-api/internal/domain"
	"github.com/donnatureza/pdv-api/internal/domain/entity"
	"github.com/donnatureza/pdv-api/internal/domain/repository"
)

// ProdutoUseCase CRUD do catálogo. Estoque não é editável por aqui:
// só via movimentos do ledger.
type ProdutoUseCase struct {
	repo repository.ProdutoRepository
}

// NewProdutoUseCase constrói o caso de uso.
func NewProdutoUseCase(repo repository.ProdutoRepository) *ProdutoUseCase {
	return &ProdutoUseCase{repo: repo}
}

// Criar cria um produto. Preço deve ser positivo; código de barras, quando
// informado, precisa ser único. O estoque inicial entra como snapshot base do
// ledger (estoque == estoque_inicial antes de qualquer movimento).
func (uc *ProdutoUseCase) Criar(in dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	if in.Nome == "" || !in.Preco.GreaterThan(decimal.Zero) || in.EstoqueInicial < 0 {
		return nil, domain.ErrEntradaInvalida
	}
	if in.CodigoBarras != "" {
		existente, err := uc.repo.GetByCodigoBarras(in.CodigoBarras)
		if err != nil {
			return nil, err
		}
		if existente != nil {
			return nil, domain.ErrDuplicado
		}
	}

	minimo := 5
	if in.EstoqueMinimo != nil {
		minimo = *in.EstoqueMinimo
	}
	maximo := 100
	if in.EstoqueMaximo != nil {
		maximo = *in.EstoqueMaximo
	}

	now := time.Now()
	produto := &entity.Produto{
		ID:             uuid.New().String(),
		Nome:           in.Nome,
		CodigoBarras:   in.CodigoBarras,
		Preco:          in.Preco,
		Estoque:        in.EstoqueInicial,
		EstoqueMinimo:  minimo,
		EstoqueMaximo:  maximo,
		EstoqueInicial: in.EstoqueInicial,
		Categoria:      in.Categoria,
		Descricao:      in.Descricao,
		NCM:            defaultStr(in.NCM, "00000000"),
		CFOP:           defaultStr(in.CFOP, "5102"),
		UnidadeMedida:  defaultStr(in.UnidadeMedida, "UN"),
		Origem:         defaultStr(in.Origem, "0"),
		CSTICMS:        defaultStr(in.CSTICMS, "102"),
		AliquotaICMS:   in.AliquotaICMS,
		CSTPIS:         defaultStr(in.CSTPIS, "07"),
		AliquotaPIS:    in.AliquotaPIS,
		CSTCOFINS:      defaultStr(in.CSTCOFINS, "07"),
		AliquotaCOFINS: in.AliquotaCOFINS,
		CSTIPI:         in.CSTIPI,
		AliquotaIPI:    in.AliquotaIPI,
		Ativo:          true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// ObterPorID devolve um produto; nil se não existir.
func (uc *ProdutoUseCase) ObterPorID(id string) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, nil
	}
	return toProdutoResponse(produto), nil
}

// Listar lista produtos ativos com paginação.
func (uc *ProdutoUseCase) Listar(page dto.PageRequest) (*dto.ProdutoListResponse, error) {
	page.DefaultPage()
	produtos, err := uc.repo.ListAtivos(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.ProdutoListResponse{
		Items: make([]dto.ProdutoResponse, 0, len(produtos)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, p := range produtos {
		out.Items = append(out.Items, *toProdutoResponse(p))
	}
	return out, nil
}

// Buscar busca ativos por nome, código de barras ou categoria.
func (uc *ProdutoUseCase) Buscar(termo string) ([]dto.ProdutoResponse, error) {
	produtos, err := uc.repo.Buscar(termo, 20)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, *toProdutoResponse(p))
	}
	return out, nil
}

// Atualizar atualização parcial; campos nulos mantêm o valor atual.
func (uc *ProdutoUseCase) Atualizar(id string, in dto.AtualizarProdutoRequest) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, nil
	}
	if in.Nome != nil {
		produto.Nome = *in.Nome
	}
	if in.CodigoBarras != nil && *in.CodigoBarras != produto.CodigoBarras {
		if *in.CodigoBarras != "" {
			existente, err := uc.repo.GetByCodigoBarras(*in.CodigoBarras)
			if err != nil {
				return nil, err
			}
			if existente != nil && existente.ID != id {
				return nil, domain.ErrDuplicado
			}
		}
		produto.CodigoBarras = *in.CodigoBarras
	}
	if in.Preco != nil {
		if !in.Preco.GreaterThan(decimal.Zero) {
			return nil, domain.ErrEntradaInvalida
		}
		produto.Preco = *in.Preco
	}
	if in.EstoqueMinimo != nil {
		produto.EstoqueMinimo = *in.EstoqueMinimo
	}
	if in.EstoqueMaximo != nil {
		produto.EstoqueMaximo = *in.EstoqueMaximo
	}
	if in.Categoria != nil {
		produto.Categoria = *in.Categoria
	}
	if in.Descricao != nil {
		produto.Descricao = *in.Descricao
	}
	if in.NCM != nil {
		produto.NCM = *in.NCM
	}
	if in.CFOP != nil {
		produto.CFOP = *in.CFOP
	}
	if in.UnidadeMedida != nil {
		produto.UnidadeMedida = *in.UnidadeMedida
	}
	if in.CSTICMS != nil {
		produto.CSTICMS = *in.CSTICMS
	}
	if in.AliquotaICMS != nil {
		produto.AliquotaICMS = *in.AliquotaICMS
	}
	produto.UpdatedAt = time.Now()
	if err := uc.repo.Update(produto); err != nil {
		return nil, err
	}
	return toProdutoResponse(produto), nil
}

// AtualizarFoto grava a URL da foto do produto.
func (uc *ProdutoUseCase) AtualizarFoto(id, fotoURL string) (*dto.ProdutoResponse, error) {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if produto == nil {
		return nil, nil
	}
	if err := uc.repo.AtualizarFoto(id, fotoURL); err != nil {
		return nil, err
	}
	produto.FotoURL = fotoURL
	return toProdutoResponse(produto), nil
}

// Excluir soft delete: marca ativo=false, histórico de movimentos preservado.
func (uc *ProdutoUseCase) Excluir(id string) error {
	produto, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if produto == nil {
		return domain.ErrNaoEncontrado
	}
	return uc.repo.SoftDelete(id)
}

func defaultStr(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func toProdutoResponse(p *entity.Produto) *dto.ProdutoResponse {
	return &dto.ProdutoResponse{
		ID:             p.ID,
		Nome:           p.Nome,
		CodigoBarras:   p.CodigoBarras,
		Preco:          p.Preco,
		Estoque:        p.Estoque,
		EstoqueMinimo:  p.EstoqueMinimo,
		EstoqueMaximo:  p.EstoqueMaximo,
		EstoqueInicial: p.EstoqueInicial,
		Categoria:      p.Categoria,
		Descricao:      p.Descricao,
		FotoURL:        p.FotoURL,
		NCM:            p.NCM,
		CFOP:           p.CFOP,
		UnidadeMedida:  p.UnidadeMedida,
		Origem:         p.Origem,
		Ativo:          p.Ativo,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
