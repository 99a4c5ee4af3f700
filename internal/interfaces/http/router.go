package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Patrimonio-api/internal/application/auth"
	"github.com/jhoicas/Patrimonio-api/internal/application/inventario"
	"github.com/jhoicas/Patrimonio-api/internal/application/patrimonio"
	"github.com/jhoicas/Patrimonio-api/internal/application/usecase"
	"github.com/jhoicas/Patrimonio-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	BemUC          *patrimonio.BemUseCase
	MovimentacaoUC *patrimonio.MovimentacaoUseCase
	ManutencaoUC   *patrimonio.ManutencaoUseCase
	BaixaUC        *patrimonio.BaixaUseCase
	InventarioUC   *inventario.InventarioUseCase
	SetorUC        *usecase.SetorUseCase
	CategoriaUC    *usecase.CategoriaUseCase
	FornecedorUC   *usecase.FornecedorUseCase
	DashboardUC    *usecase.DashboardUseCase
	AuthUC         *auth.AuthUseCase
	JWTSecret      string
}

// Router registra as rotas da API. Leituras exigem apenas token válido;
// escritas exigem perfil ADMIN ou GESTOR.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Registrar)
	authGroup.Post("/login", authHandler.Login)

	// Rotas protegidas (requerem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	escrita := RequireRole(entity.PerfilAdmin, entity.PerfilGestor)

	// Bens (protegido)
	bens := protected.Group("/bens")
	bemHandler := NewBemHandler(deps.BemUC)
	bens.Post("/", escrita, bemHandler.Criar)
	bens.Get("/", bemHandler.Listar)
	bens.Get("/:id", bemHandler.BuscarPorID)
	bens.Patch("/:id", escrita, bemHandler.Atualizar)
	bens.Delete("/:id", escrita, bemHandler.Excluir)
	bens.Get("/:id/historico", bemHandler.Historico)

	// Movimentações (protegido)
	movimentacaoHandler := NewMovimentacaoHandler(deps.MovimentacaoUC)
	movimentacoes := protected.Group("/movimentacoes")
	movimentacoes.Post("/", escrita, movimentacaoHandler.Registrar)
	movimentacoes.Get("/", movimentacaoHandler.Listar)
	bens.Get("/:id/movimentacoes", movimentacaoHandler.ListarPorBem)

	// Manutenções (protegido)
	manutencaoHandler := NewManutencaoHandler(deps.ManutencaoUC)
	manutencoes := protected.Group("/manutencoes")
	manutencoes.Post("/", escrita, manutencaoHandler.Abrir)
	manutencoes.Patch("/:id", escrita, manutencaoHandler.Atualizar)
	bens.Get("/:id/manutencoes", manutencaoHandler.ListarPorBem)

	// Baixas (protegido)
	baixaHandler := NewBaixaHandler(deps.BaixaUC)
	baixas := protected.Group("/baixas")
	baixas.Post("/", escrita, baixaHandler.Registrar)
	bens.Get("/:id/baixa", baixaHandler.BuscarPorBem)

	// Inventários (protegido)
	inventarioHandler := NewInventarioHandler(deps.InventarioUC)
	inventarios := protected.Group("/inventarios")
	inventarios.Post("/", escrita, inventarioHandler.Abrir)
	inventarios.Get("/", inventarioHandler.Listar)
	inventarios.Get("/:id", inventarioHandler.BuscarPorID)
	inventarios.Post("/:id/fechar", escrita, inventarioHandler.Fechar)
	inventarios.Post("/:id/itens", escrita, inventarioHandler.AdicionarItem)
	inventarios.Get("/:id/itens", inventarioHandler.ListarItens)
	inventarios.Patch("/itens/:itemId", escrita, inventarioHandler.ConferirItem)
	inventarios.Get("/:id/relatorio", inventarioHandler.Relatorio)

	// Dados de referência (protegido)
	setorHandler := NewSetorHandler(deps.SetorUC)
	setores := protected.Group("/setores")
	setores.Post("/", escrita, setorHandler.Criar)
	setores.Get("/", setorHandler.Listar)
	setores.Get("/:id", setorHandler.BuscarPorID)
	setores.Put("/:id", escrita, setorHandler.Atualizar)

	categoriaHandler := NewCategoriaHandler(deps.CategoriaUC)
	categorias := protected.Group("/categorias")
	categorias.Post("/", escrita, categoriaHandler.Criar)
	categorias.Get("/", categoriaHandler.Listar)
	categorias.Post("/:id/subcategorias", escrita, categoriaHandler.CriarSubcategoria)
	categorias.Get("/:id/subcategorias", categoriaHandler.ListarSubcategorias)

	fornecedorHandler := NewFornecedorHandler(deps.FornecedorUC)
	fornecedores := protected.Group("/fornecedores")
	fornecedores.Post("/", escrita, fornecedorHandler.Criar)
	fornecedores.Get("/", fornecedorHandler.Listar)
	fornecedores.Get("/:id", fornecedorHandler.BuscarPorID)
	fornecedores.Put("/:id", escrita, fornecedorHandler.Atualizar)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Resumo)
}
