package venda

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donnatureza/pdv-api/internal/application/dto"
	"github.com/donnatureza/pdv-api/internal/application/estoque"
	"github.com/donnatureza/pdv-api/internal/domain"
	"github.com/donnatureza/pdv-api/internal/domain/entity"
	"github.com/donnatureza/pdv-api/internal/domain/repository"
)

// VendaUseCase cria e consulta vendas. A criação persiste cabeçalho, itens e
// os movimentos de saída do ledger em uma única transação.
type VendaUseCase struct {
	txRunner    TxRunner
	estoqueUC   *estoque.EstoqueUseCase
	produtoRepo repository.ProdutoRepository
	vendaRepo   repository.VendaRepository
}

// NewVendaUseCase constrói o caso de uso.
func NewVendaUseCase(
	txRunner TxRunner,
	estoqueUC *estoque.EstoqueUseCase,
	produtoRepo repository.ProdutoRepository,
	vendaRepo repository.VendaRepository,
) *VendaUseCase {
	return &VendaUseCase{
		txRunner:    txRunner,
		estoqueUC:   estoqueUC,
		produtoRepo: produtoRepo,
		vendaRepo:   vendaRepo,
	}
}

// CriarVenda valida os itens, persiste a venda e emite um movimento tipo=venda
// por item, tudo no mesmo commit. A verificação definitiva de estoque acontece
// sob o bloqueio de linha dentro da transação; se qualquer item falhar
// (ex.: estoque consumido por outra venda concorrente), nada é gravado.
func (uc *VendaUseCase) CriarVenda(ctx context.Context, in dto.CriarVendaRequest, usuario string) (*dto.VendaResponse, error) {
	if len(in.Itens) == 0 || in.Desconto.LessThan(decimal.Zero) {
		return nil, domain.ErrEntradaInvalida
	}
	formaPagamento := in.FormaPagamento
	if formaPagamento == "" {
		formaPagamento = entity.PagamentoDinheiro
	}
	if !entity.FormaPagamentoValida(formaPagamento) {
		return nil, domain.ErrEntradaInvalida
	}

	// Validar produtos e resolver preços fora da tx (somente leitura).
	itens := make([]*entity.ItemVenda, 0, len(in.Itens))
	total := decimal.Zero
	for _, item := range in.Itens {
		if item.ProdutoID == "" || item.Quantidade <= 0 || item.PrecoUnitario.LessThan(decimal.Zero) {
			return nil, domain.ErrEntradaInvalida
		}
		produto, err := uc.produtoRepo.GetByID(item.ProdutoID)
		if err != nil {
			return nil, err
		}
		if produto == nil {
			return nil, domain.ErrNaoEncontrado
		}
		preco := item.PrecoUnitario
		if preco.IsZero() {
			preco = produto.Preco
		}
		iv := &entity.ItemVenda{
			ID:            uuid.New().String(),
			ProdutoID:     item.ProdutoID,
			Quantidade:    item.Quantidade,
			PrecoUnitario: preco,
		}
		total = total.Add(iv.Subtotal())
		itens = append(itens, iv)
	}
	total = total.Sub(in.Desconto)

	vendaEnt := &entity.Venda{
		ID:             uuid.New().String(),
		Total:          total,
		Desconto:       in.Desconto,
		CPFCliente:     in.CPFCliente,
		FormaPagamento: formaPagamento,
		Status:         entity.VendaPendente,
		CreatedAt:      time.Now(),
		Itens:          itens,
	}
	for _, iv := range itens {
		iv.VendaID = vendaEnt.ID
	}

	// Venda + itens + movimentos: um único commit. A venda entra antes dos
	// movimentos para que o documento VENDA-<id> referencie um id persistido.
	err := uc.txRunner.RunVenda(ctx, func(
		movRepo repository.MovimentoRepository,
		produtoRepo repository.ProdutoRepository,
		vendaRepo repository.VendaRepository,
	) error {
		if err := vendaRepo.Create(vendaEnt); err != nil {
			return err
		}
		for _, iv := range itens {
			if err := vendaRepo.CreateItem(iv); err != nil {
				return err
			}
		}
		_, err := uc.estoqueUC.ProcessarVendaTx(movRepo, produtoRepo, vendaEnt, usuario)
		return err
	})
	if err != nil {
		return nil, err
	}
	return toVendaResponse(vendaEnt), nil
}

// ObterVenda devolve uma venda com itens; nil se não existir.
func (uc *VendaUseCase) ObterVenda(ctx context.Context, id string) (*dto.VendaResponse, error) {
	vendaEnt, err := uc.vendaRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vendaEnt == nil {
		return nil, nil
	}
	return toVendaResponse(vendaEnt), nil
}

// ListarVendas lista vendas paginadas, mais recentes primeiro.
func (uc *VendaUseCase) ListarVendas(ctx context.Context, page dto.PageRequest) (*dto.VendaListResponse, error) {
	page.DefaultPage()
	vendas, err := uc.vendaRepo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := &dto.VendaListResponse{
		Items: make([]dto.VendaResponse, 0, len(vendas)),
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}
	for _, v := range vendas {
		out.Items = append(out.Items, *toVendaResponse(v))
	}
	return out, nil
}

func toVendaResponse(v *entity.Venda) *dto.VendaResponse {
	out := &dto.VendaResponse{
		ID:             v.ID,
		Total:          v.Total,
		Desconto:       v.Desconto,
		CPFCliente:     v.CPFCliente,
		FormaPagamento: v.FormaPagamento,
		NFCeNumero:     v.NFCeNumero,
		NFCeChave:      v.NFCeChave,
		NFCeQRCode:     v.NFCeQRCode,
		Status:         v.Status,
		CreatedAt:      v.CreatedAt,
		Itens:          make([]dto.ItemVendaResponse, 0, len(v.Itens)),
	}
	for _, item := range v.Itens {
		out.Itens = append(out.Itens, dto.ItemVendaResponse{
			ID:            item.ID,
			ProdutoID:     item.ProdutoID,
			Quantidade:    item.Quantidade,
			PrecoUnitario: item.PrecoUnitario,
			Subtotal:      item.Subtotal(),
		})
	}
	return out
}
