package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/donnatureza/pdv-api/internal/application/auth"
	"github.com/donnatureza/pdv-api/internal/application/estoque"
	"github.com/donnatureza/pdv-api/internal/application/usecase"
	"github.com/donnatureza/pdv-api/internal/application/venda"
	infrapdf "github.com/donnatureza/pdv-api/internal/infrastructure/pdf"
	"github.com/donnatureza/pdv-api/internal/infrastructure/postgres"
	httpRouter "github.com/donnatureza/pdv-api/internal/interfaces/http"
	"github.com/donnatureza/pdv-api/pkg/config"
	"github.com/donnatureza/pdv-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	produtoRepo := postgres.NewProdutoRepository(pool)
	movRepo := postgres.NewMovimentoRepository(pool)
	vendaRepo := postgres.NewVendaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	relatorioRepo := postgres.NewRelatorioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	estoqueUC := estoque.NewEstoqueUseCase(txRunner, produtoRepo, movRepo)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	relatorioUC := usecase.NewRelatorioUseCase(relatorioRepo)
	vendaUC := venda.NewVendaUseCase(txRunner, estoqueUC, produtoRepo, vendaRepo)

	cupomPDF := infrapdf.NewMarotoCupomGenerator(venda.LojaNome, venda.LojaEndereco)
	cupomUC := venda.NewCupomUseCase(vendaRepo, produtoRepo, cupomPDF)

	authUC := auth.NewAuthUseCase(usuarioRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "PDV API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Fotos de produto enviadas por upload
	app.Static("/static", cfg.HTTP.StaticDir)

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProdutoUC:   produtoUC,
		EstoqueUC:   estoqueUC,
		VendaUC:     vendaUC,
		CupomUC:     cupomUC,
		RelatorioUC: relatorioUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
		FotosDir:    cfg.HTTP.StaticDir,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
