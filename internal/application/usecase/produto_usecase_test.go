package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donnatureza/pdv-api/internal/application/dto"
	"github.com/donnatureza/pdv-api/internal/application/usecase"
	"github.com/donnatureza/pdv-api/internal/domain"
	"github.com/donnatureza/pdv-api/internal/domain/entity"
)

type fakeProdutoRepo struct {
	produtos map[string]*entity.Produto
}

func newFakeRepo() *fakeProdutoRepo {
	return &fakeProdutoRepo{produtos: map[string]*entity.Produto{}}
}

func (f *fakeProdutoRepo) Create(p *entity.Produto) error { f.produtos[p.ID] = p; return nil }
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
	f.produtos[id].Estoque = quantidade
	return nil
}
func (f *fakeProdutoRepo) Update(p *entity.Produto) error { f.produtos[p.ID] = p; return nil }
func (f *fakeProdutoRepo) AtualizarFoto(id, url string) error {
	f.produtos[id].FotoURL = url
	return nil
}
func (f *fakeProdutoRepo) SoftDelete(id string) error {
	f.produtos[id].Ativo = false
	return nil
}
func (f *fakeProdutoRepo) ListAtivos(limit, offset int) ([]*entity.Produto, error) {
	var out []*entity.Produto
	for _, p := range f.produtos {
		if p.Ativo {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeProdutoRepo) Buscar(termo string, limit int) ([]*entity.Produto, error) {
	return nil, nil
}
func (f *fakeProdutoRepo) ListEstoqueBaixo() ([]*entity.Produto, error) { return nil, nil }
func (f *fakeProdutoRepo) ListEstoqueAlto() ([]*entity.Produto, error)  { return nil, nil }

func TestCriar_DefaultsDeCatalogoEFiscais(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.NewProdutoUseCase(repo)

	out, err := uc.Criar(dto.CriarProdutoRequest{
		Nome:           "Mel Puro Silvestre",
		Preco:          decimal.RequireFromString("22.00"),
		EstoqueInicial: 30,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, out.EstoqueMinimo, "mínimo default")
	assert.Equal(t, 100, out.EstoqueMaximo, "máximo default")
	assert.Equal(t, 30, out.Estoque)
	assert.Equal(t, 30, out.EstoqueInicial)
	assert.True(t, out.Ativo)

	// defaults fiscais NFC-e para o varejo do Simples Nacional
	assert.Equal(t, "00000000", out.NCM)
	assert.Equal(t, "5102", out.CFOP)
	assert.Equal(t, "UN", out.UnidadeMedida)
	assert.Equal(t, "0", out.Origem)
}

func TestCriar_Validacoes(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newFakeRepo())

	_, err := uc.Criar(dto.CriarProdutoRequest{Nome: "", Preco: decimal.RequireFromString("1.00")})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "nome obrigatório")

	_, err = uc.Criar(dto.CriarProdutoRequest{Nome: "X", Preco: decimal.Zero})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "preço deve ser positivo")

	_, err = uc.Criar(dto.CriarProdutoRequest{Nome: "X", Preco: decimal.RequireFromString("1.00"), EstoqueInicial: -1})
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "estoque inicial não pode ser negativo")
}

func TestCriar_CodigoBarrasDuplicado(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newFakeRepo())

	_, err := uc.Criar(dto.CriarProdutoRequest{
		Nome: "A", Preco: decimal.RequireFromString("1.00"), CodigoBarras: "1234567890123",
	})
	require.NoError(t, err)

	_, err = uc.Criar(dto.CriarProdutoRequest{
		Nome: "B", Preco: decimal.RequireFromString("2.00"), CodigoBarras: "1234567890123",
	})
	assert.ErrorIs(t, err, domain.ErrDuplicado)
}

func TestAtualizar_ParcialNaoTocaEstoque(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.NewProdutoUseCase(repo)

	criado, err := uc.Criar(dto.CriarProdutoRequest{
		Nome:           "Chá Verde Orgânico",
		Preco:          decimal.RequireFromString("12.50"),
		EstoqueInicial: 40,
		Categoria:      "Chás",
	})
	require.NoError(t, err)

	novoPreco := decimal.RequireFromString("13.90")
	out, err := uc.Atualizar(criado.ID, dto.AtualizarProdutoRequest{Preco: &novoPreco})
	require.NoError(t, err)

	assert.True(t, out.Preco.Equal(novoPreco))
	assert.Equal(t, "Chá Verde Orgânico", out.Nome, "campos omitidos mantêm o valor")
	assert.Equal(t, "Chás", out.Categoria)
	assert.Equal(t, 40, out.Estoque, "estoque só muda via movimentos")
}

func TestAtualizar_CodigoBarrasDeOutroProduto(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newFakeRepo())

	_, err := uc.Criar(dto.CriarProdutoRequest{
		Nome: "A", Preco: decimal.RequireFromString("1.00"), CodigoBarras: "111",
	})
	require.NoError(t, err)
	b, err := uc.Criar(dto.CriarProdutoRequest{
		Nome: "B", Preco: decimal.RequireFromString("2.00"), CodigoBarras: "222",
	})
	require.NoError(t, err)

	codigo := "111"
	_, err = uc.Atualizar(b.ID, dto.AtualizarProdutoRequest{CodigoBarras: &codigo})
	assert.ErrorIs(t, err, domain.ErrDuplicado)
}

func TestAtualizar_ProdutoInexistente(t *testing.T) {
	uc := usecase.NewProdutoUseCase(newFakeRepo())

	out, err := uc.Atualizar("fantasma", dto.AtualizarProdutoRequest{})
	require.NoError(t, err)
	assert.Nil(t, out, "produto inexistente devolve nil para o handler responder 404")
}

func TestExcluir_SoftDelete(t *testing.T) {
	repo := newFakeRepo()
	uc := usecase.NewProdutoUseCase(repo)

	criado, err := uc.Criar(dto.CriarProdutoRequest{Nome: "A", Preco: decimal.RequireFromString("1.00")})
	require.NoError(t, err)

	require.NoError(t, uc.Excluir(criado.ID))
	assert.False(t, repo.produtos[criado.ID].Ativo, "exclusão é lógica, a linha permanece")

	err = uc.Excluir("fantasma")
	assert.ErrorIs(t, err, domain.ErrNaoEncontrado)
}
