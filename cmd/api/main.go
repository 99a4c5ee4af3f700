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
	"github.com/jhoicas/Patrimonio-api/internal/application/auth"
	"github.com/jhoicas/Patrimonio-api/internal/application/inventario"
	"github.com/jhoicas/Patrimonio-api/internal/application/patrimonio"
	"github.com/jhoicas/Patrimonio-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Patrimonio-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Patrimonio-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Patrimonio-api/internal/interfaces/http"
	"github.com/jhoicas/Patrimonio-api/pkg/config"
	"github.com/jhoicas/Patrimonio-api/pkg/logger"
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

	bemRepo := postgres.NewBemRepository(pool)
	auditoriaRepo := postgres.NewAuditoriaRepository(pool)
	movimentacaoRepo := postgres.NewMovimentacaoRepository(pool)
	manutencaoRepo := postgres.NewManutencaoRepository(pool)
	baixaRepo := postgres.NewBaixaRepository(pool)
	inventarioRepo := postgres.NewInventarioRepository(pool)
	setorRepo := postgres.NewSetorRepository(pool)
	categoriaRepo := postgres.NewCategoriaRepository(pool)
	fornecedorRepo := postgres.NewFornecedorRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	bemUC := patrimonio.NewBemUseCase(bemRepo, auditoriaRepo, setorRepo, categoriaRepo)
	movimentacaoUC := patrimonio.NewMovimentacaoUseCase(txRunner, bemRepo, setorRepo, movimentacaoRepo)
	manutencaoUC := patrimonio.NewManutencaoUseCase(txRunner, bemRepo, manutencaoRepo, fornecedorRepo)
	baixaUC := patrimonio.NewBaixaUseCase(txRunner, bemRepo, baixaRepo)

	// PDF: relatório de fechamento de inventário
	relatorioPDF := infrapdf.NewMarotoRelatorioGenerator()
	inventarioUC := inventario.NewInventarioUseCase(txRunner, inventarioRepo, bemRepo, relatorioPDF)

	setorUC := usecase.NewSetorUseCase(setorRepo)
	categoriaUC := usecase.NewCategoriaUseCase(categoriaRepo)
	fornecedorUC := usecase.NewFornecedorUseCase(fornecedorRepo)
	dashboardUC := usecase.NewDashboardUseCase(dashboardRepo)
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
		Title:    "Patrimônio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		BemUC:          bemUC,
		MovimentacaoUC: movimentacaoUC,
		ManutencaoUC:   manutencaoUC,
		BaixaUC:        baixaUC,
		InventarioUC:   inventarioUC,
		SetorUC:        setorUC,
		CategoriaUC:    categoriaUC,
		FornecedorUC:   fornecedorUC,
		DashboardUC:    dashboardUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
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
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
