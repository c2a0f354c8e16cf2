package estoque

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/donnatureza/pdv-api/internal/domain"
	"github.com/donnatureza/pdv-api/internal/domain/entity"
	"github.com/donnatureza/pdv-api/internal/domain/repository"
)

// UsuarioSistema rótulo de ator para movimentos sem operador autenticado
// (seed, rotinas internas).
const UsuarioSistema = "sistema"

// EstoqueUseCase é o único caminho sancionado de mutação de estoque.
// Cada mudança vira um lançamento imutável em movimentos_estoque e a
// atualização de produtos.estoque acontece na mesma transação, com bloqueio
// de linha (SELECT FOR UPDATE) para fechar a corrida read-then-write.
type EstoqueUseCase struct {
	txRunner    TxRunner
	produtoRepo repository.ProdutoRepository // leituras fora de tx
	movRepo     repository.MovimentoRepository
}

// NewEstoqueUseCase constrói o caso de uso.
func NewEstoqueUseCase(txRunner TxRunner, produtoRepo repository.ProdutoRepository, movRepo repository.MovimentoRepository) *EstoqueUseCase {
	return &EstoqueUseCase{txRunner: txRunner, produtoRepo: produtoRepo, movRepo: movRepo}
}

// CriarMovimentoInput entrada para criar um movimento de estoque.
// Quantidade é sempre magnitude positiva; o sinal vem do Tipo.
type CriarMovimentoInput struct {
	ProdutoID     string
	Tipo          entity.TipoMovimento
	Quantidade    int
	PrecoUnitario *decimal.Decimal
	Motivo        string
	Observacoes   string
	Usuario       string
	Documento     string
}

// CriarMovimento registra um movimento de estoque.
// Valida o tipo na borda (enumeração fechada), abre a transação, bloqueia a
// linha do produto, aplica a regra de sinal e persiste movimento + novo
// estoque juntos. Saída que deixaria o estoque negativo falha com
// ErroEstoqueInsuficiente sem nenhuma mutação.
func (uc *EstoqueUseCase) CriarMovimento(ctx context.Context, in CriarMovimentoInput) (*entity.MovimentoEstoque, error) {
	if !in.Tipo.Valido() {
		return nil, fmt.Errorf("%w: %s", domain.ErrTipoMovimentoInvalido, in.Tipo)
	}
	if in.ProdutoID == "" || in.Quantidade <= 0 {
		return nil, domain.ErrEntradaInvalida
	}
	if in.Usuario == "" {
		in.Usuario = UsuarioSistema
	}

	var mov *entity.MovimentoEstoque
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentoRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		produto, err := produtoRepo.GetForUpdate(in.ProdutoID)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrNaoEncontrado
		}
		mov, err = aplicarMovimento(movRepo, produtoRepo, produto, in)
		return err
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// aplicarMovimento aplica um movimento sobre um produto já bloqueado na tx.
// Snapshot anterior/nova, verificação de piso, gravação do lançamento e do
// novo estoque — tudo com os repositórios atados à transação do caller.
func aplicarMovimento(
	movRepo repository.MovimentoRepository,
	produtoRepo repository.ProdutoRepository,
	produto *entity.Produto,
	in CriarMovimentoInput,
) (*entity.MovimentoEstoque, error) {
	anterior := produto.Estoque
	var nova int
	if in.Tipo.Aumenta() {
		nova = anterior + in.Quantidade
	} else {
		nova = anterior - in.Quantidade
		if nova < 0 {
			return nil, &domain.ErroEstoqueInsuficiente{Atual: anterior, Solicitado: in.Quantidade}
		}
	}

	var valorTotal *decimal.Decimal
	if in.PrecoUnitario != nil {
		v := in.PrecoUnitario.Mul(decimal.NewFromInt(int64(in.Quantidade)))
		valorTotal = &v
	}

	mov := &entity.MovimentoEstoque{
		ID:                 uuid.New().String(),
		ProdutoID:          produto.ID,
		ProdutoNome:        produto.Nome,
		Tipo:               in.Tipo,
		Quantidade:         in.Quantidade,
		QuantidadeAnterior: anterior,
		QuantidadeNova:     nova,
		PrecoUnitario:      in.PrecoUnitario,
		ValorTotal:         valorTotal,
		Motivo:             in.Motivo,
		Observacoes:        in.Observacoes,
		Usuario:            in.Usuario,
		Documento:          in.Documento,
		CreatedAt:          time.Now(),
	}

	if err := produtoRepo.AtualizarEstoque(produto.ID, nova); err != nil {
		return nil, err
	}
	if err := movRepo.Create(mov); err != nil {
		return nil, err
	}
	produto.Estoque = nova
	return mov, nil
}

// EntradaInput entrada de estoque (recebimento de mercadoria).
type EntradaInput struct {
	ProdutoID     string
	Quantidade    int
	PrecoUnitario *decimal.Decimal
	Motivo        string
	Documento     string
	Usuario       string
}

// EntradaEstoque registra uma entrada (tipo=entrada).
func (uc *EstoqueUseCase) EntradaEstoque(ctx context.Context, in EntradaInput) (*entity.MovimentoEstoque, error) {
	motivo := in.Motivo
	if motivo == "" {
		motivo = "Entrada de estoque"
	}
	return uc.CriarMovimento(ctx, CriarMovimentoInput{
		ProdutoID:     in.ProdutoID,
		Tipo:          entity.TipoEntrada,
		Quantidade:    in.Quantidade,
		PrecoUnitario: in.PrecoUnitario,
		Motivo:        motivo,
		Documento:     in.Documento,
		Usuario:       in.Usuario,
	})
}

// AjusteInput ajuste de estoque para uma quantidade absoluta.
type AjusteInput struct {
	ProdutoID      string
	QuantidadeNova int
	Motivo         string
	Usuario        string
}

// AjusteEstoque leva o estoque ao valor alvo. O delta é calculado sob o mesmo
// bloqueio de linha que aplica o movimento, então leituras concorrentes não
// produzem ajustes baseados em estoque velho. Alvo igual ao atual falha com
// ErrSemAlteracao e não gera lançamento.
func (uc *EstoqueUseCase) AjusteEstoque(ctx context.Context, in AjusteInput) (*entity.MovimentoEstoque, error) {
	if in.ProdutoID == "" || in.QuantidadeNova < 0 {
		return nil, domain.ErrEntradaInvalida
	}
	motivo := in.Motivo
	if motivo == "" {
		motivo = "Ajuste de estoque"
	}
	usuario := in.Usuario
	if usuario == "" {
		usuario = UsuarioSistema
	}

	var mov *entity.MovimentoEstoque
	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentoRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		produto, err := produtoRepo.GetForUpdate(in.ProdutoID)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrNaoEncontrado
		}
		delta := in.QuantidadeNova - produto.Estoque
		if delta == 0 {
			return domain.ErrSemAlteracao
		}
		tipo := entity.TipoAjustePositivo
		if delta < 0 {
			tipo = entity.TipoAjusteNegativo
			delta = -delta
		}
		mov, err = aplicarMovimento(movRepo, produtoRepo, produto, CriarMovimentoInput{
			ProdutoID:  in.ProdutoID,
			Tipo:       tipo,
			Quantidade: delta,
			Motivo:     motivo,
			Usuario:    usuario,
		})
		return err
	})
	if err != nil {
		return nil, err
	}
	return mov, nil
}

// ProcessarVendaTx emite um movimento tipo=venda por item da venda usando os
// repositórios da transação do caller (mesma tx que persiste a venda).
// Qualquer falha — inclusive estoque insuficiente em um item — propaga e
// derruba a transação inteira: venda e ledger nunca divergem.
func (uc *EstoqueUseCase) ProcessarVendaTx(
	movRepo repository.MovimentoRepository,
	produtoRepo repository.ProdutoRepository,
	venda *entity.Venda,
	usuario string,
) ([]*entity.MovimentoEstoque, error) {
	if usuario == "" {
		usuario = "vendedor"
	}
	movimentos := make([]*entity.MovimentoEstoque, 0, len(venda.Itens))
	for _, item := range venda.Itens {
		produto, err := produtoRepo.GetForUpdate(item.ProdutoID)
		if err != nil {
			return nil, err
		}
		if produto == nil {
			return nil, domain.ErrNaoEncontrado
		}
		preco := item.PrecoUnitario
		mov, err := aplicarMovimento(movRepo, produtoRepo, produto, CriarMovimentoInput{
			ProdutoID:     item.ProdutoID,
			Tipo:          entity.TipoVenda,
			Quantidade:    item.Quantidade,
			PrecoUnitario: &preco,
			Motivo:        fmt.Sprintf("Venda #%s", venda.ID),
			Usuario:       usuario,
			Documento:     fmt.Sprintf("VENDA-%s", venda.ID),
		})
		if err != nil {
			return nil, err
		}
		movimentos = append(movimentos, mov)
	}
	return movimentos, nil
}

// EstoqueBaixo lista produtos ativos com estoque no mínimo ou abaixo.
func (uc *EstoqueUseCase) EstoqueBaixo(ctx context.Context) ([]*entity.Produto, error) {
	return uc.produtoRepo.ListEstoqueBaixo()
}

// EstoqueAlto lista produtos ativos com estoque no máximo ou acima.
func (uc *EstoqueUseCase) EstoqueAlto(ctx context.Context) ([]*entity.Produto, error) {
	return uc.produtoRepo.ListEstoqueAlto()
}

// ObterMovimentos histórico de movimentações, mais recentes primeiro.
func (uc *EstoqueUseCase) ObterMovimentos(ctx context.Context, filtro repository.FiltroMovimentos) ([]*entity.MovimentoEstoque, error) {
	if filtro.Tipo != "" && !filtro.Tipo.Valido() {
		return nil, fmt.Errorf("%w: %s", domain.ErrTipoMovimentoInvalido, filtro.Tipo)
	}
	if filtro.Limit <= 0 {
		filtro.Limit = 100
	}
	return uc.movRepo.List(filtro)
}
