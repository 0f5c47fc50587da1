package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sanem/doacoes-api/internal/application/auth"
	"github.com/sanem/doacoes-api/internal/application/doacao"
	"github.com/sanem/doacoes-api/internal/application/relatorio"
	"github.com/sanem/doacoes-api/internal/application/usecase"
	"github.com/sanem/doacoes-api/internal/domain/entity"
)

// RouterDeps dependências para o router.
type RouterDeps struct {
	TipoUC            *usecase.TipoUseCase
	EstoqueUC         *usecase.EstoqueUseCase
	BeneficiarioUC    *usecase.BeneficiarioUseCase
	OperadorUC        *usecase.OperadorUseCase
	DoacaoUC          *doacao.UseCase
	RelatorioUC       *relatorio.UseCase
	AuthUC            *auth.AuthUseCase
	JWTSecret         string
	JWTSecretAnterior string
}

// Router registra as rotas da API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login e register públicos; logout e verify exigem token)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret, deps.JWTSecretAnterior), authHandler.Logout)
	authGroup.Get("/verify", AuthMiddleware(deps.JWTSecret, deps.JWTSecretAnterior), authHandler.Verify)

	// Rotas protegidas (exigem Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.JWTSecretAnterior))

	// Tipos de produto
	tipos := protected.Group("/tipos")
	tipoHandler := NewTipoHandler(deps.TipoUC)
	tipos.Post("/", tipoHandler.Create)
	tipos.Get("/", tipoHandler.List)
	tipos.Get("/:id", tipoHandler.GetByID)
	tipos.Put("/:id", tipoHandler.Update)
	tipos.Delete("/:id", tipoHandler.Delete)

	// Estoque (a rota /baixo vem antes de /:id para não ser capturada)
	estoque := protected.Group("/estoque")
	estoqueHandler := NewEstoqueHandler(deps.EstoqueUC)
	estoque.Post("/", estoqueHandler.Create)
	estoque.Get("/", estoqueHandler.List)
	estoque.Get("/baixo", estoqueHandler.ListLowStock)
	estoque.Get("/:id", estoqueHandler.GetByID)
	estoque.Put("/:id", estoqueHandler.Update)
	estoque.Delete("/:id", estoqueHandler.Delete)

	// Beneficiários
	beneficiarios := protected.Group("/beneficiarios")
	beneficiarioHandler := NewBeneficiarioHandler(deps.BeneficiarioUC)
	beneficiarios.Post("/", beneficiarioHandler.Create)
	beneficiarios.Get("/", beneficiarioHandler.List)
	beneficiarios.Get("/:id", beneficiarioHandler.GetByID)
	beneficiarios.Put("/:id", beneficiarioHandler.Update)
	beneficiarios.Delete("/:id", beneficiarioHandler.Delete)

	// Operadores (escritas restritas a administradores)
	operadores := protected.Group("/operadores")
	operadorHandler := NewOperadorHandler(deps.OperadorUC)
	admin := RequireTipo(entity.OperadorAdmin)
	operadores.Post("/", admin, operadorHandler.Create)
	operadores.Get("/", operadorHandler.List)
	operadores.Get("/:id", operadorHandler.GetByID)
	operadores.Put("/:id", admin, operadorHandler.Update)
	operadores.Put("/:id/senha", admin, operadorHandler.UpdateSenha)
	operadores.Delete("/:id", admin, operadorHandler.Delete)

	// Doações (ledgers e distribuições)
	doacoes := protected.Group("/doacoes")
	doacaoHandler := NewDoacaoHandler(deps.DoacaoUC)
	doacoes.Post("/recebidas", doacaoHandler.RegistrarRecebida)
	doacoes.Get("/recebidas", doacaoHandler.ListarRecebidas)
	doacoes.Delete("/recebidas/:id", doacaoHandler.RemoverRecebida)
	doacoes.Post("/enviadas", doacaoHandler.RegistrarEnviada)
	doacoes.Get("/enviadas", doacaoHandler.ListarEnviadas)
	doacoes.Delete("/enviadas/:id", doacaoHandler.RemoverEnviada)
	doacoes.Get("/distribuicoes", doacaoHandler.ListarDistribuicoes)

	// Relatórios
	relatorios := protected.Group("/relatorios")
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	relatorios.Get("/dashboard", relatorioHandler.Dashboard)
	relatorios.Get("/periodo", relatorioHandler.Periodo)
	relatorios.Get("/mensal", relatorioHandler.Mensal)
	relatorios.Get("/beneficiario/:id", relatorioHandler.PorBeneficiario)
	relatorios.Get("/recibo", relatorioHandler.Recibo)
}
