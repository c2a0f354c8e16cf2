package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/donnatureza/pdv-api/internal/application/dto"
	"github.com/donnatureza/pdv-api/internal/domain/repository"
)

// RelatorioUseCase relatórios de estoque e de vendas (somente leitura,
// agregações feitas no banco).
type RelatorioUseCase struct {
	repo repository.RelatorioRepository
}

// NewRelatorioUseCase constrói o caso de uso.
func NewRelatorioUseCase(repo repository.RelatorioRepository) *RelatorioUseCase {
	return &RelatorioUseCase{repo: repo}
}

// RelatorioEstoque relatório geral: resumo, agregação por categoria e posição
// produto a produto com status baixo/normal/alto (limites inclusivos).
func (uc *RelatorioUseCase) RelatorioEstoque(ctx context.Context) (*dto.RelatorioEstoqueResponse, error) {
	posicoes, err := uc.repo.PosicoesEstoque(ctx)
	if err != nil {
		return nil, err
	}
	categorias, err := uc.repo.EstoquePorCategoria(ctx)
	if err != nil {
		return nil, err
	}

	out := &dto.RelatorioEstoqueResponse{
		Categorias: make(map[string]dto.CategoriaEstoqueDTO, len(categorias)),
		Produtos:   make([]dto.ProdutoEstoqueDTO, 0, len(posicoes)),
	}
	out.Resumo.TotalProdutos = len(posicoes)
	out.Resumo.TotalValorEstoque = decimal.Zero

	for _, p := range posicoes {
		status := "normal"
		switch {
		case p.EstoqueAtual <= p.EstoqueMinimo:
			status = "baixo"
			out.Resumo.ProdutosEstoqueBaixo++
		case p.EstoqueAtual >= p.EstoqueMaximo:
			status = "alto"
			out.Resumo.ProdutosEstoqueAlto++
		}
		out.Resumo.TotalValorEstoque = out.Resumo.TotalValorEstoque.Add(p.ValorTotal)
		out.Produtos = append(out.Produtos, dto.ProdutoEstoqueDTO{
			ID:            p.ProdutoID,
			Nome:          p.Nome,
			Categoria:     p.Categoria,
			EstoqueAtual:  p.EstoqueAtual,
			EstoqueMinimo: p.EstoqueMinimo,
			EstoqueMaximo: p.EstoqueMaximo,
			Preco:         p.Preco,
			ValorTotal:    p.ValorTotal,
			Status:        status,
		})
	}
	for _, c := range categorias {
		nome := c.Categoria
		if nome == "" {
			nome = "Sem categoria"
		}
		out.Categorias[nome] = dto.CategoriaEstoqueDTO{Quantidade: c.Quantidade, Valor: c.Valor}
	}
	return out, nil
}

// VendasPorPeriodo totais de vendas não canceladas no intervalo (datas opcionais).
func (uc *RelatorioUseCase) VendasPorPeriodo(ctx context.Context, inicio, fim *time.Time) (*dto.VendasPeriodoResponse, error) {
	totais, err := uc.repo.TotaisVendasPeriodo(ctx, inicio, fim)
	if err != nil {
		return nil, err
	}
	out := &dto.VendasPeriodoResponse{
		TotalVendas:      totais.TotalVendas,
		QuantidadeVendas: totais.QuantidadeVendas,
		TicketMedio:      decimal.Zero,
	}
	if totais.QuantidadeVendas > 0 {
		out.TicketMedio = totais.TotalVendas.Div(decimal.NewFromInt(int64(totais.QuantidadeVendas))).Round(2)
	}
	return out, nil
}

// VendasHoje totais do dia corrente no fuso local do servidor.
func (uc *RelatorioUseCase) VendasHoje(ctx context.Context) (*dto.VendasPeriodoResponse, error) {
	agora := time.Now()
	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, agora.Location())
	amanha := hoje.AddDate(0, 0, 1)
	return uc.VendasPorPeriodo(ctx, &hoje, &amanha)
}

// ProdutosMaisVendidos ranking por quantidade vendida.
func (uc *RelatorioUseCase) ProdutosMaisVendidos(ctx context.Context, limit int) ([]dto.ProdutoMaisVendidoDTO, error) {
	if limit <= 0 {
		limit = 10
	}
	linhas, err := uc.repo.ProdutosMaisVendidos(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoMaisVendidoDTO, 0, len(linhas))
	for _, l := range linhas {
		out = append(out, dto.ProdutoMaisVendidoDTO{
			Produto:           l.Nome,
			QuantidadeVendida: l.QuantidadeVendida,
			Faturamento:       l.Faturamento,
		})
	}
	return out, nil
}

// FormasPagamento agregado de vendas não canceladas por forma de pagamento.
func (uc *RelatorioUseCase) FormasPagamento(ctx context.Context) ([]dto.FormaPagamentoDTO, error) {
	linhas, err := uc.repo.TotaisPorFormaPagamento(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.FormaPagamentoDTO, 0, len(linhas))
	for _, l := range linhas {
		out = append(out, dto.FormaPagamentoDTO{
			FormaPagamento: l.FormaPagamento,
			Quantidade:     l.Quantidade,
			Total:          l.Total,
		})
	}
	return out, nil
}
