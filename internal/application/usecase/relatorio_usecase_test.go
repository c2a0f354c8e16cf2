package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donnatureza/pdv-api/internal/application/usecase"
	"github.com/donnatureza/pdv-api/internal/domain/repository"
)

// fakeRelatorioRepo captura os parâmetros das consultas de agregação.
type fakeRelatorioRepo struct {
	totais       repository.TotaisVendas
	ultimoInicio *time.Time
	ultimoFim    *time.Time
}

func (f *fakeRelatorioRepo) PosicoesEstoque(ctx context.Context) ([]repository.PosicaoEstoque, error) {
	return nil, nil
}
func (f *fakeRelatorioRepo) EstoquePorCategoria(ctx context.Context) ([]repository.CategoriaEstoque, error) {
	return nil, nil
}
func (f *fakeRelatorioRepo) TotaisVendasPeriodo(ctx context.Context, inicio, fim *time.Time) (*repository.TotaisVendas, error) {
	f.ultimoInicio = inicio
	f.ultimoFim = fim
	t := f.totais
	return &t, nil
}
func (f *fakeRelatorioRepo) ProdutosMaisVendidos(ctx context.Context, limit int) ([]repository.ProdutoMaisVendido, error) {
	return nil, nil
}
func (f *fakeRelatorioRepo) TotaisPorFormaPagamento(ctx context.Context) ([]repository.FormaPagamentoTotal, error) {
	return nil, nil
}

func TestVendasHoje_JanelaNoFusoLocal(t *testing.T) {
	repo := &fakeRelatorioRepo{}
	uc := usecase.NewRelatorioUseCase(repo)

	_, err := uc.VendasHoje(context.Background())
	require.NoError(t, err)
	require.NotNil(t, repo.ultimoInicio)
	require.NotNil(t, repo.ultimoFim)

	agora := time.Now()
	esperado := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())

	assert.True(t, repo.ultimoInicio.Equal(esperado),
		"início deve ser a meia-noite local, não a meia-noite UTC")
	assert.Equal(t, agora.Location(), repo.ultimoInicio.Location())
	assert.True(t, repo.ultimoFim.Equal(esperado.AddDate(0, 0, 1)),
		"fim é a meia-noite local do dia seguinte")
}

func TestVendasPorPeriodo_TicketMedio(t *testing.T) {
	repo := &fakeRelatorioRepo{totais: repository.TotaisVendas{
		TotalVendas:      decimal.RequireFromString("100.00"),
		QuantidadeVendas: 3,
	}}
	uc := usecase.NewRelatorioUseCase(repo)

	out, err := uc.VendasPorPeriodo(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.True(t, out.TicketMedio.Equal(decimal.RequireFromString("33.33")))
}

func TestVendasPorPeriodo_SemVendas(t *testing.T) {
	uc := usecase.NewRelatorioUseCase(&fakeRelatorioRepo{})

	out, err := uc.VendasPorPeriodo(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, out.QuantidadeVendas)
	assert.True(t, out.TicketMedio.IsZero(), "sem vendas o ticket médio é zero, não divisão por zero")
}
