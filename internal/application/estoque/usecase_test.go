package estoque_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donnatureza/pdv-api/internal/application/estoque"
	"github.com/donnatureza/pdv-api/internal/domain"
	"github.com/donnatureza/pdv-api/internal/domain/entity"
	"github.com/donnatureza/pdv-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeProdutoRepo struct {
	produtos map[string]*entity.Produto
}

func newFakeProdutoRepo(produtos ...*entity.Produto) *fakeProdutoRepo {
	m := make(map[string]*entity.Produto, len(produtos))
	for _, p := range produtos {
		m[p.ID] = p
	}
	return &fakeProdutoRepo{produtos: m}
}

func (f *fakeProdutoRepo) Create(p *entity.Produto) error {
	f.produtos[p.ID] = p
	return nil
}

func (f *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	return f.produtos[id], nil
}

func (f *fakeProdutoRepo) GetByCodigoBarras(codigo string) (*entity.Produto, error) {
	for _, p := range f.produtos {
		if p.CodigoBarras == codigo {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	return f.produtos[id], nil
}

func (f *fakeProdutoRepo) AtualizarEstoque(id string, quantidade int) error {
	p, ok := f.produtos[id]
	if !ok {
		return domain.ErrNaoEncontrado
	}
	p.Estoque = quantidade
	return nil
}

func (f *fakeProdutoRepo) Update(p *entity.Produto) error     { return nil }
func (f *fakeProdutoRepo) AtualizarFoto(id, url string) error { return nil }
func (f *fakeProdutoRepo) SoftDelete(id string) error         { return nil }

func (f *fakeProdutoRepo) ListAtivos(limit, offset int) ([]*entity.Produto, error) {
	return nil, nil
}

func (f *fakeProdutoRepo) Buscar(termo string, limit int) ([]*entity.Produto, error) {
	return nil, nil
}

func (f *fakeProdutoRepo) ListEstoqueBaixo() ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range f.produtos {
		if p.Ativo && p.EstoqueBaixo() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProdutoRepo) ListEstoqueAlto() ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range f.produtos {
		if p.Ativo && p.EstoqueAlto() {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeMovimentoRepo struct {
	movs        []*entity.MovimentoEstoque
	falhaCreate error
	ultimoLimit int
}

func (f *fakeMovimentoRepo) Create(m *entity.MovimentoEstoque) error {
	if f.falhaCreate != nil {
		return f.falhaCreate
	}
	f.movs = append(f.movs, m)
	return nil
}

func (f *fakeMovimentoRepo) List(filtro repository.FiltroMovimentos) ([]*entity.MovimentoEstoque, error) {
	f.ultimoLimit = filtro.Limit
	out := make([]*entity.MovimentoEstoque, 0, len(f.movs))
	for i := len(f.movs) - 1; i >= 0; i-- {
		m := f.movs[i]
		if filtro.ProdutoID != "" && m.ProdutoID != filtro.ProdutoID {
			continue
		}
		if filtro.Tipo != "" && m.Tipo != filtro.Tipo {
			continue
		}
		out = append(out, m)
		if len(out) == filtro.Limit {
			break
		}
	}
	return out, nil
}

// fakeTxRunner emula a semântica transacional: em caso de erro restaura o
// estoque e descarta os lançamentos feito dentro do callback.
type fakeTxRunner struct {
	produtos *fakeProdutoRepo
	movs     *fakeMovimentoRepo
}

func (f *fakeTxRunner) Run(ctx context.Context, fn func(repository.MovimentoRepository, repository.ProdutoRepository) error) error {
	antes := make(map[string]int, len(f.produtos.produtos))
	for id, p := range f.produtos.produtos {
		antes[id] = p.Estoque
	}
	nMovs := len(f.movs.movs)

	if err := fn(f.movs, f.produtos); err != nil {
		for id, e := range antes {
			f.produtos.produtos[id].Estoque = e
		}
		f.movs.movs = f.movs.movs[:nMovs]
		return err
	}
	return nil
}

func produtoTeste(id string, estoque int) *entity.Produto {
	return &entity.Produto{
		ID:            id,
		Nome:          "Sabonete Natural Lavanda",
		Preco:         decimal.RequireFromString("15.90"),
		Estoque:       estoque,
		EstoqueMinimo: 5,
		EstoqueMaximo: 50,
		Ativo:         true,
	}
}

func montarUseCase(produtos ...*entity.Produto) (*estoque.EstoqueUseCase, *fakeProdutoRepo, *fakeMovimentoRepo) {
	produtoRepo := newFakeProdutoRepo(produtos...)
	movRepo := &fakeMovimentoRepo{}
	tx := &fakeTxRunner{produtos: produtoRepo, movs: movRepo}
	return estoque.NewEstoqueUseCase(tx, produtoRepo, movRepo), produtoRepo, movRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// CriarMovimento
// ──────────────────────────────────────────────────────────────────────────────

func TestCriarMovimento_EntradaAtualizaEstoqueComSnapshots(t *testing.T) {
	uc, produtoRepo, movRepo := montarUseCase(produtoTeste("p1", 10))
	preco := decimal.RequireFromString("12.00")

	mov, err := uc.CriarMovimento(context.Background(), estoque.CriarMovimentoInput{
		ProdutoID:     "p1",
		Tipo:          entity.TipoEntrada,
		Quantidade:    5,
		PrecoUnitario: &preco,
		Motivo:        "Recebimento fornecedor",
		Usuario:       "Maria",
	})
	require.NoError(t, err)

	assert.Equal(t, 10, mov.QuantidadeAnterior)
	assert.Equal(t, 15, mov.QuantidadeNova)
	assert.Equal(t, 15, produtoRepo.produtos["p1"].Estoque)
	assert.Len(t, movRepo.movs, 1)

	require.NotNil(t, mov.ValorTotal)
	assert.True(t, mov.ValorTotal.Equal(decimal.RequireFromString("60.00")),
		"valor_total deve ser preco_unitario * quantidade")
	assert.Equal(t, "Maria", mov.Usuario)
	assert.Equal(t, "Sabonete Natural Lavanda", mov.ProdutoNome,
		"lançamento carrega o nome do produto para a listagem")
}

func TestCriarMovimento_TipoDesconhecidoRejeitadoNaBorda(t *testing.T) {
	uc, produtoRepo, movRepo := montarUseCase(produtoTeste("p1", 10))

	_, err := uc.CriarMovimento(context.Background(), estoque.CriarMovimentoInput{
		ProdutoID:  "p1",
		Tipo:       entity.TipoMovimento("transferencia"),
		Quantidade: 5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTipoMovimentoInvalido)
	assert.Equal(t, 10, produtoRepo.produtos["p1"].Estoque, "estoque não pode mudar")
	assert.Empty(t, movRepo.movs, "nenhum lançamento deve ser gravado")
}

func TestCriarMovimento_QuantidadeNaoPositiva(t *testing.T) {
	uc, _, _ := montarUseCase(produtoTeste("p1", 10))

	for _, quantidade := range []int{0, -3} {
		_, err := uc.CriarMovimento(context.Background(), estoque.CriarMovimentoInput{
			ProdutoID:  "p1",
			Tipo:       entity.TipoEntrada,
			Quantidade: quantidade,
		})
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	}
}

func TestCriarMovimento_ProdutoInexistente(t *testing.T) {
	uc, _, movRepo := montarUseCase()

	_, err := uc.CriarMovimento(context.Background(), estoque.CriarMovimentoInput{
		ProdutoID:  "nao-existe",
		Tipo:       entity.TipoEntrada,
		Quantidade: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
	assert.Empty(t, movRepo.movs)
}

func TestCriarMovimento_SaidaAlemDoEstoqueNaoMutaNada(t *testing.T) {
	uc, produtoRepo, movRepo := montarUseCase(produtoTeste("p1", 3))

	_, err := uc.CriarMovimento(context.Background(), estoque.CriarMovimentoInput{
		ProdutoID:  "p1",
		Tipo:       entity.TipoSaida,
		Quantidade: 5,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)
	assert.EqualError(t, err, "Estoque insuficiente. Atual: 3, Solicitado: 5")

	var faltaEstoque *domain.ErroEstoqueInsuficiente
	require.ErrorAs(t, err, &faltaEstoque)
	assert.Equal(t, 3, faltaEstoque.Atual)
	assert.Equal(t, 5, faltaEstoque.Solicitado)

	assert.Equal(t, 3, produtoRepo.produtos["p1"].Estoque, "estoque intacto após falha")
	assert.Empty(t, movRepo.movs, "falha não pode deixar lançamento no ledger")
}

func TestCriarMovimento_SaidaAteZeroPermitida(t *testing.T) {
	uc, produtoRepo, _ := montarUseCase(produtoTeste("p1", 5))

	mov, err := uc.CriarMovimento(context.Background(), estoque.CriarMovimentoInput{
		ProdutoID:  "p1",
		Tipo:       entity.TipoVenda,
		Quantidade: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, mov.QuantidadeNova)
	assert.Equal(t, 0, produtoRepo.produtos["p1"].Estoque)
}

// ──────────────────────────────────────────────────────────────────────────────
// AjusteEstoque
// ──────────────────────────────────────────────────────────────────────────────

// Exemplo clássico: 10 → ajusta para 15 (delta +5) → ajusta para 8 (delta -7).
func TestAjusteEstoque_DeltaCalculadoSobreEstoqueAtual(t *testing.T) {
	uc, produtoRepo, movRepo := montarUseCase(produtoTeste("p1", 10))
	ctx := context.Background()

	mov, err := uc.AjusteEstoque(ctx, estoque.AjusteInput{ProdutoID: "p1", QuantidadeNova: 15, Usuario: "Maria"})
	require.NoError(t, err)
	assert.Equal(t, entity.TipoAjustePositivo, mov.Tipo)
	assert.Equal(t, 5, mov.Quantidade)
	assert.Equal(t, 10, mov.QuantidadeAnterior)
	assert.Equal(t, 15, mov.QuantidadeNova)

	mov, err = uc.AjusteEstoque(ctx, estoque.AjusteInput{ProdutoID: "p1", QuantidadeNova: 8, Usuario: "Maria"})
	require.NoError(t, err)
	assert.Equal(t, entity.TipoAjusteNegativo, mov.Tipo)
	assert.Equal(t, 7, mov.Quantidade, "quantidade do lançamento é a magnitude do delta")
	assert.Equal(t, 15, mov.QuantidadeAnterior)
	assert.Equal(t, 8, mov.QuantidadeNova)

	assert.Equal(t, 8, produtoRepo.produtos["p1"].Estoque)
	assert.Len(t, movRepo.movs, 2)
}

func TestAjusteEstoque_SemAlteracaoNaoGeraLancamento(t *testing.T) {
	uc, produtoRepo, movRepo := montarUseCase(produtoTeste("p1", 10))

	_, err := uc.AjusteEstoque(context.Background(), estoque.AjusteInput{ProdutoID: "p1", QuantidadeNova: 10})
	assert.ErrorIs(t, err, domain.ErrSemAlteracao)
	assert.Equal(t, 10, produtoRepo.produtos["p1"].Estoque)
	assert.Empty(t, movRepo.movs)
}

func TestAjusteEstoque_AlvoNegativoInvalido(t *testing.T) {
	uc, _, _ := montarUseCase(produtoTeste("p1", 10))

	_, err := uc.AjusteEstoque(context.Background(), estoque.AjusteInput{ProdutoID: "p1", QuantidadeNova: -1})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestAjusteEstoque_ParaZeroPermitido(t *testing.T) {
	uc, produtoRepo, _ := montarUseCase(produtoTeste("p1", 10))

	mov, err := uc.AjusteEstoque(context.Background(), estoque.AjusteInput{ProdutoID: "p1", QuantidadeNova: 0})
	require.NoError(t, err)
	assert.Equal(t, entity.TipoAjusteNegativo, mov.Tipo)
	assert.Equal(t, 0, produtoRepo.produtos["p1"].Estoque)
}

// ──────────────────────────────────────────────────────────────────────────────
// Invariante do ledger: estoque atual = inicial + Σ movimentos com sinal
// ──────────────────────────────────────────────────────────────────────────────

func TestLedger_SomaDosMovimentosReconstroiEstoque(t *testing.T) {
	const inicial = 20
	uc, produtoRepo, movRepo := montarUseCase(produtoTeste("p1", inicial))
	ctx := context.Background()

	_, err := uc.EntradaEstoque(ctx, estoque.EntradaInput{ProdutoID: "p1", Quantidade: 30})
	require.NoError(t, err)
	_, err = uc.CriarMovimento(ctx, estoque.CriarMovimentoInput{ProdutoID: "p1", Tipo: entity.TipoVenda, Quantidade: 12})
	require.NoError(t, err)
	_, err = uc.CriarMovimento(ctx, estoque.CriarMovimentoInput{ProdutoID: "p1", Tipo: entity.TipoPerda, Quantidade: 3})
	require.NoError(t, err)
	_, err = uc.AjusteEstoque(ctx, estoque.AjusteInput{ProdutoID: "p1", QuantidadeNova: 40})
	require.NoError(t, err)

	soma := inicial
	for _, m := range movRepo.movs {
		if m.Tipo.Aumenta() {
			soma += m.Quantidade
		} else {
			soma -= m.Quantidade
		}
	}
	assert.Equal(t, produtoRepo.produtos["p1"].Estoque, soma,
		"replay dos movimentos deve reconstruir o estoque atual")

	// Os snapshots encadeiam: nova de um lançamento == anterior do seguinte.
	for i := 1; i < len(movRepo.movs); i++ {
		assert.Equal(t, movRepo.movs[i-1].QuantidadeNova, movRepo.movs[i].QuantidadeAnterior)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ObterMovimentos / alertas
// ──────────────────────────────────────────────────────────────────────────────

func TestObterMovimentos_FiltroTipoInvalido(t *testing.T) {
	uc, _, _ := montarUseCase()

	_, err := uc.ObterMovimentos(context.Background(), repository.FiltroMovimentos{Tipo: "qualquer"})
	assert.ErrorIs(t, err, domain.ErrTipoMovimentoInvalido)
}

func TestObterMovimentos_LimitPadrao(t *testing.T) {
	uc, _, movRepo := montarUseCase()

	_, err := uc.ObterMovimentos(context.Background(), repository.FiltroMovimentos{})
	require.NoError(t, err)
	assert.Equal(t, 100, movRepo.ultimoLimit, "limit <= 0 usa o padrão 100")
}

func TestObterMovimentos_MaisRecentesPrimeiro(t *testing.T) {
	uc, _, _ := montarUseCase(produtoTeste("p1", 10))
	ctx := context.Background()

	_, err := uc.EntradaEstoque(ctx, estoque.EntradaInput{ProdutoID: "p1", Quantidade: 1})
	require.NoError(t, err)
	_, err = uc.EntradaEstoque(ctx, estoque.EntradaInput{ProdutoID: "p1", Quantidade: 2})
	require.NoError(t, err)

	movs, err := uc.ObterMovimentos(ctx, repository.FiltroMovimentos{ProdutoID: "p1"})
	require.NoError(t, err)
	require.Len(t, movs, 2)
	assert.Equal(t, 2, movs[0].Quantidade, "o lançamento mais recente vem primeiro")
}

func TestAlertas_LimitesInclusivos(t *testing.T) {
	// estoque == minimo conta como baixo; estoque == maximo conta como alto
	noMinimo := produtoTeste("baixo", 5)
	noMaximo := produtoTeste("alto", 50)
	normal := produtoTeste("normal", 20)
	uc, _, _ := montarUseCase(noMinimo, noMaximo, normal)
	ctx := context.Background()

	baixos, err := uc.EstoqueBaixo(ctx)
	require.NoError(t, err)
	require.Len(t, baixos, 1)
	assert.Equal(t, "baixo", baixos[0].ID)

	altos, err := uc.EstoqueAlto(ctx)
	require.NoError(t, err)
	require.Len(t, altos, 1)
	assert.Equal(t, "alto", altos[0].ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Falha no meio da transação
// ──────────────────────────────────────────────────────────────────────────────

func TestCriarMovimento_FalhaNoLedgerDesfazEstoque(t *testing.T) {
	uc, produtoRepo, movRepo := montarUseCase(produtoTeste("p1", 10))
	movRepo.falhaCreate = errors.New("disco cheio")

	_, err := uc.CriarMovimento(context.Background(), estoque.CriarMovimentoInput{
		ProdutoID:  "p1",
		Tipo:       entity.TipoEntrada,
		Quantidade: 5,
	})
	require.Error(t, err)
	assert.Equal(t, 10, produtoRepo.produtos["p1"].Estoque,
		"rollback deve restaurar o estoque quando o lançamento falha")
	assert.Empty(t, movRepo.movs)
}
