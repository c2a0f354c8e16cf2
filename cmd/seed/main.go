// seed popula o banco com o catálogo de demonstração da loja.
// Os produtos entram com estoque zero e o estoque inicial é lançado como
// movimento de entrada no ledger, para o histórico já nascer consistente.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/donnatureza/pdv-api/internal/application/dto"
	"github.com/donnatureza/pdv-api/internal/application/estoque"
	"github.com/donnatureza/pdv-api/internal/application/usecase"
	"github.com/donnatureza/pdv-api/internal/infrastructure/postgres"
	"github.com/donnatureza/pdv-api/pkg/config"
	"github.com/donnatureza/pdv-api/pkg/logger"
)

type produtoSeed struct {
	nome         string
	codigoBarras string
	preco        string
	estoque      int
	minimo       int
	maximo       int
	categoria    string
	descricao    string
}

var catalogo = []produtoSeed{
	{"Sabonete Natural Lavanda", "1234567890123", "15.90", 25, 5, 50, "Sabonetes", "Sabonete artesanal com lavanda natural, hidratante e aromático"},
	{"Óleo Essencial Eucalipto", "2345678901234", "35.00", 15, 10, 30, "Óleos", "Óleo essencial puro de eucalipto, ideal para aromaterapia"},
	{"Chá Verde Orgânico", "3456789012345", "12.50", 40, 8, 60, "Chás", "Chá verde orgânico certificado, rico em antioxidantes"},
	{"Shampoo Natural Aloe Vera", "4567890123456", "28.90", 20, 12, 35, "Cosméticos", "Shampoo natural com aloe vera, sem sulfatos e parabenos"},
	{"Mel Puro Silvestre", "5678901234567", "22.00", 30, 15, 60, "Alimentos", "Mel puro extraído de flores silvestres, sem aditivos"},
	{"Creme Facial Natural", "6789012345678", "45.00", 18, 8, 25, "Cosméticos", "Creme facial com ingredientes naturais para todos os tipos de pele"},
	{"Óleo de Coco Extravirgem", "7890123456789", "18.50", 35, 20, 50, "Óleos", "Óleo de coco puro, prensado a frio, multiuso"},
	{"Chá de Camomila", "8901234567890", "8.90", 45, 15, 70, "Chás", "Chá de camomila natural, calmante e relaxante"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	produtoRepo := postgres.NewProdutoRepository(pool)
	movRepo := postgres.NewMovimentoRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	estoqueUC := estoque.NewEstoqueUseCase(txRunner, produtoRepo, movRepo)

	// Não repopular um banco que já tem catálogo.
	existentes, err := produtoRepo.ListAtivos(1, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("consultar catálogo")
	}
	if len(existentes) > 0 {
		log.Info().Msg("banco já contém produtos, nada a fazer")
		return
	}

	for _, s := range catalogo {
		preco, err := decimal.NewFromString(s.preco)
		if err != nil {
			log.Fatal().Err(err).Str("produto", s.nome).Msg("preço inválido")
		}
		minimo, maximo := s.minimo, s.maximo
		criado, err := produtoUC.Criar(dto.CriarProdutoRequest{
			Nome:          s.nome,
			CodigoBarras:  s.codigoBarras,
			Preco:         preco,
			EstoqueMinimo: &minimo,
			EstoqueMaximo: &maximo,
			Categoria:     s.categoria,
			Descricao:     s.descricao,
		})
		if err != nil {
			log.Fatal().Err(err).Str("produto", s.nome).Msg("criar produto")
		}

		mov, err := estoqueUC.EntradaEstoque(ctx, estoque.EntradaInput{
			ProdutoID:     criado.ID,
			Quantidade:    s.estoque,
			PrecoUnitario: &preco,
			Motivo:        "Carga inicial de estoque",
			Usuario:       estoque.UsuarioSistema,
		})
		if err != nil {
			log.Fatal().Err(err).Str("produto", s.nome).Msg("entrada inicial")
		}
		log.Info().
			Str("produto", s.nome).
			Int("estoque", mov.QuantidadeNova).
			Msg("produto criado")
	}

	log.Info().Int("produtos", len(catalogo)).Msg("seed concluído")
}
