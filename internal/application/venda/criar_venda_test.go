package venda_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donnatureza/pdv-api/internal/application/dto"
	"github.com/donnatureza/pdv-api/internal/application/estoque"
	"github.com/donnatureza/pdv-api/internal/application/venda"
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

func (f *fakeProdutoRepo) Create(p *entity.Produto) error { f.produtos[p.ID] = p; return nil }
func (f *fakeProdutoRepo) GetByID(id string) (*entity.Produto, error) {
	return f.produtos[id], nil
}
func (f *fakeProdutoRepo) GetByCodigoBarras(codigo string) (*entity.Produto, error) {
	return nil, nil
}
func (f *fakeProdutoRepo) GetForUpdate(id string) (*entity.Produto, error) {
	return f.produtos[id], nil
}
func (f *fakeProdutoRepo) AtualizarEstoque(id string, quantidade int) error {
	f.produtos[id].Estoque = quantidade
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
func (f *fakeProdutoRepo) ListEstoqueBaixo() ([]*entity.Produto, error) { return nil, nil }
func (f *fakeProdutoRepo) ListEstoqueAlto() ([]*entity.Produto, error)  { return nil, nil }

type fakeMovimentoRepo struct {
	movs []*entity.MovimentoEstoque
}

func (f *fakeMovimentoRepo) Create(m *entity.MovimentoEstoque) error {
	f.movs = append(f.movs, m)
	return nil
}

func (f *fakeMovimentoRepo) List(filtro repository.FiltroMovimentos) ([]*entity.MovimentoEstoque, error) {
	return f.movs, nil
}

type fakeVendaRepo struct {
	vendas map[string]*entity.Venda
	itens  []*entity.ItemVenda
}

func (f *fakeVendaRepo) Create(v *entity.Venda) error { f.vendas[v.ID] = v; return nil }
func (f *fakeVendaRepo) CreateItem(item *entity.ItemVenda) error {
	f.itens = append(f.itens, item)
	return nil
}
func (f *fakeVendaRepo) GetByID(id string) (*entity.Venda, error) { return f.vendas[id], nil }
func (f *fakeVendaRepo) List(limit, offset int) ([]*entity.Venda, error) {
	return nil, nil
}

// fakeTx implementa estoque.TxRunner e venda.TxRunner. Em caso de erro
// restaura estoques e descarta venda, itens e lançamentos do callback.
type fakeTx struct {
	produtos *fakeProdutoRepo
	movs     *fakeMovimentoRepo
	vendas   *fakeVendaRepo
}

func (f *fakeTx) Run(ctx context.Context, fn func(repository.MovimentoRepository, repository.ProdutoRepository) error) error {
	return f.RunVenda(ctx, func(m repository.MovimentoRepository, p repository.ProdutoRepository, _ repository.VendaRepository) error {
		return fn(m, p)
	})
}

func (f *fakeTx) RunVenda(ctx context.Context, fn func(repository.MovimentoRepository, repository.ProdutoRepository, repository.VendaRepository) error) error {
	estoques := make(map[string]int, len(f.produtos.produtos))
	for id, p := range f.produtos.produtos {
		estoques[id] = p.Estoque
	}
	vendasAntes := make(map[string]*entity.Venda, len(f.vendas.vendas))
	for id, v := range f.vendas.vendas {
		vendasAntes[id] = v
	}
	nItens, nMovs := len(f.vendas.itens), len(f.movs.movs)

	if err := fn(f.movs, f.produtos, f.vendas); err != nil {
		for id, e := range estoques {
			f.produtos.produtos[id].Estoque = e
		}
		f.vendas.vendas = vendasAntes
		f.vendas.itens = f.vendas.itens[:nItens]
		f.movs.movs = f.movs.movs[:nMovs]
		return err
	}
	return nil
}

func produtoTeste(id, nome, preco string, estoque int) *entity.Produto {
	return &entity.Produto{
		ID:      id,
		Nome:    nome,
		Preco:   decimal.RequireFromString(preco),
		Estoque: estoque,
		Ativo:   true,
	}
}

func montarVendaUseCase(produtos ...*entity.Produto) (*venda.VendaUseCase, *fakeProdutoRepo, *fakeMovimentoRepo, *fakeVendaRepo) {
	produtoRepo := &fakeProdutoRepo{produtos: map[string]*entity.Produto{}}
	for _, p := range produtos {
		produtoRepo.produtos[p.ID] = p
	}
	movRepo := &fakeMovimentoRepo{}
	vendaRepo := &fakeVendaRepo{vendas: map[string]*entity.Venda{}}
	tx := &fakeTx{produtos: produtoRepo, movs: movRepo, vendas: vendaRepo}

	estoqueUC := estoque.NewEstoqueUseCase(tx, produtoRepo, movRepo)
	return venda.NewVendaUseCase(tx, estoqueUC, produtoRepo, vendaRepo), produtoRepo, movRepo, vendaRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// CriarVenda
// ──────────────────────────────────────────────────────────────────────────────

func TestCriarVenda_TotalEBaixaDeEstoque(t *testing.T) {
	uc, produtoRepo, movRepo, vendaRepo := montarVendaUseCase(
		produtoTeste("p1", "Sabonete Natural Lavanda", "15.90", 25),
		produtoTeste("p2", "Mel Puro Silvestre", "22.00", 30),
	)

	out, err := uc.CriarVenda(context.Background(), dto.CriarVendaRequest{
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: "p1", Quantidade: 2},
			{ProdutoID: "p2", Quantidade: 1},
		},
		Desconto:       decimal.RequireFromString("3.80"),
		FormaPagamento: "pix",
	}, "Maria")
	require.NoError(t, err)

	// total = 2*15.90 + 22.00 - 3.80 = 50.00
	assert.True(t, out.Total.Equal(decimal.RequireFromString("50.00")), "total errado: %s", out.Total)
	assert.Equal(t, entity.VendaPendente, out.Status)
	assert.Equal(t, "pix", out.FormaPagamento)
	require.Len(t, out.Itens, 2)

	// preço zero no request usa o preço do catálogo
	assert.True(t, out.Itens[0].PrecoUnitario.Equal(decimal.RequireFromString("15.90")))

	// baixa de estoque via ledger, um movimento tipo=venda por item
	assert.Equal(t, 23, produtoRepo.produtos["p1"].Estoque)
	assert.Equal(t, 29, produtoRepo.produtos["p2"].Estoque)
	require.Len(t, movRepo.movs, 2)
	for _, m := range movRepo.movs {
		assert.Equal(t, entity.TipoVenda, m.Tipo)
		assert.Equal(t, "Maria", m.Usuario)
		assert.True(t, strings.HasPrefix(m.Documento, "VENDA-"+out.ID))
	}

	// venda e itens persistidos na mesma transação
	assert.Len(t, vendaRepo.vendas, 1)
	assert.Len(t, vendaRepo.itens, 2)
}

func TestCriarVenda_PrecoInformadoPrevalece(t *testing.T) {
	uc, _, movRepo, _ := montarVendaUseCase(produtoTeste("p1", "Chá Verde Orgânico", "12.50", 40))

	out, err := uc.CriarVenda(context.Background(), dto.CriarVendaRequest{
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: "p1", Quantidade: 3, PrecoUnitario: decimal.RequireFromString("10.00")},
		},
	}, "")
	require.NoError(t, err)

	assert.True(t, out.Total.Equal(decimal.RequireFromString("30.00")))
	assert.Equal(t, "dinheiro", out.FormaPagamento, "forma de pagamento vazia usa dinheiro")
	require.Len(t, movRepo.movs, 1)
	require.NotNil(t, movRepo.movs[0].PrecoUnitario)
	assert.True(t, movRepo.movs[0].PrecoUnitario.Equal(decimal.RequireFromString("10.00")),
		"movimento registra o preço praticado na venda")
}

func TestCriarVenda_SemItens(t *testing.T) {
	uc, _, _, _ := montarVendaUseCase()

	_, err := uc.CriarVenda(context.Background(), dto.CriarVendaRequest{}, "")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestCriarVenda_ProdutoInexistente(t *testing.T) {
	uc, _, _, vendaRepo := montarVendaUseCase()

	_, err := uc.CriarVenda(context.Background(), dto.CriarVendaRequest{
		Itens: []dto.ItemVendaRequest{{ProdutoID: "fantasma", Quantidade: 1}},
	}, "")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
	assert.Empty(t, vendaRepo.vendas)
}

// Estoque insuficiente no segundo item: a transação inteira cai — nem a venda,
// nem os itens, nem o movimento do primeiro item podem sobrar.
func TestCriarVenda_EstoqueInsuficienteDerrubaTudo(t *testing.T) {
	uc, produtoRepo, movRepo, vendaRepo := montarVendaUseCase(
		produtoTeste("p1", "Sabonete Natural Lavanda", "15.90", 25),
		produtoTeste("p2", "Creme Facial Natural", "45.00", 2),
	)

	_, err := uc.CriarVenda(context.Background(), dto.CriarVendaRequest{
		Itens: []dto.ItemVendaRequest{
			{ProdutoID: "p1", Quantidade: 1},
			{ProdutoID: "p2", Quantidade: 5},
		},
	}, "Maria")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEstoqueInsuficiente)
	assert.EqualError(t, err, "Estoque insuficiente. Atual: 2, Solicitado: 5")

	assert.Equal(t, 25, produtoRepo.produtos["p1"].Estoque, "estoque do primeiro item restaurado")
	assert.Equal(t, 2, produtoRepo.produtos["p2"].Estoque)
	assert.Empty(t, vendaRepo.vendas, "venda não pode ser persistida")
	assert.Empty(t, vendaRepo.itens)
	assert.Empty(t, movRepo.movs, "ledger limpo após rollback")
}

func TestCriarVenda_FormaPagamentoDesconhecida(t *testing.T) {
	uc, produtoRepo, movRepo, vendaRepo := montarVendaUseCase(
		produtoTeste("p1", "Mel Puro Silvestre", "22.00", 30),
	)

	_, err := uc.CriarVenda(context.Background(), dto.CriarVendaRequest{
		Itens:          []dto.ItemVendaRequest{{ProdutoID: "p1", Quantidade: 1}},
		FormaPagamento: "cheque",
	}, "")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida,
		"forma fora da enumeração é rejeitada na borda, não no banco")
	assert.Equal(t, 30, produtoRepo.produtos["p1"].Estoque)
	assert.Empty(t, vendaRepo.vendas)
	assert.Empty(t, movRepo.movs)
}

func TestObterVenda_CamposNFCePassThrough(t *testing.T) {
	uc, _, _, vendaRepo := montarVendaUseCase()
	vendaRepo.vendas["v1"] = &entity.Venda{
		ID:             "v1",
		Total:          decimal.RequireFromString("31.80"),
		FormaPagamento: entity.PagamentoPix,
		NFCeNumero:     "123",
		NFCeChave:      "35200114200166000187650010000000046550000046",
		NFCeQRCode:     "https://nfce.fazenda.sp.gov.br/qrcode?p=352001",
		Status:         entity.VendaAutorizada,
	}

	out, err := uc.ObterVenda(context.Background(), "v1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "123", out.NFCeNumero)
	assert.Equal(t, "35200114200166000187650010000000046550000046", out.NFCeChave)
	assert.Equal(t, "https://nfce.fazenda.sp.gov.br/qrcode?p=352001", out.NFCeQRCode,
		"o QR Code gravado volta intacto na resposta")
}

func TestCriarVenda_DescontoNegativoInvalido(t *testing.T) {
	uc, _, _, _ := montarVendaUseCase(produtoTeste("p1", "Mel Puro Silvestre", "22.00", 30))

	_, err := uc.CriarVenda(context.Background(), dto.CriarVendaRequest{
		Itens:    []dto.ItemVendaRequest{{ProdutoID: "p1", Quantidade: 1}},
		Desconto: decimal.RequireFromString("-1.00"),
	}, "")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}
