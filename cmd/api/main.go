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
	"github.com/sanem/doacoes-api/internal/application/auth"
	"github.com/sanem/doacoes-api/internal/application/doacao"
	"github.com/sanem/doacoes-api/internal/application/relatorio"
	"github.com/sanem/doacoes-api/internal/application/usecase"
	infrapdf "github.com/sanem/doacoes-api/internal/infrastructure/pdf"
	"github.com/sanem/doacoes-api/internal/infrastructure/postgres"
	httpRouter "github.com/sanem/doacoes-api/internal/interfaces/http"
	"github.com/sanem/doacoes-api/pkg/config"
	"github.com/sanem/doacoes-api/pkg/logger"
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

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET é obrigatório")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	tipoRepo := postgres.NewTipoRepository(pool)
	estoqueRepo := postgres.NewEstoqueRepository(pool)
	beneficiarioRepo := postgres.NewBeneficiarioRepository(pool)
	operadorRepo := postgres.NewOperadorRepository(pool)
	doacaoRepo := postgres.NewDoacaoRepository(pool)
	relatorioRepo := postgres.NewRelatorioRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	tipoUC := usecase.NewTipoUseCase(tipoRepo)
	estoqueUC := usecase.NewEstoqueUseCase(estoqueRepo, tipoRepo)
	beneficiarioUC := usecase.NewBeneficiarioUseCase(beneficiarioRepo)
	operadorUC := usecase.NewOperadorUseCase(operadorRepo)
	doacaoUC := doacao.NewUseCase(doacaoRepo, estoqueRepo, tipoRepo, beneficiarioRepo, txRunner)

	// PDF: comprovante de entrega de distribuições
	reciboGen := infrapdf.NewReciboGenerator()
	relatorioUC := relatorio.NewUseCase(relatorioRepo, doacaoRepo, reciboGen)

	authUC := auth.NewAuthUseCase(operadorRepo, operadorUC, auth.JWTConfig{
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

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "SANEM Doações API",
	}))

	app.Get("/api/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TipoUC:            tipoUC,
		EstoqueUC:         estoqueUC,
		BeneficiarioUC:    beneficiarioUC,
		OperadorUC:        operadorUC,
		DoacaoUC:          doacaoUC,
		RelatorioUC:       relatorioUC,
		AuthUC:            authUC,
		JWTSecret:         cfg.JWT.Secret,
		JWTSecretAnterior: cfg.JWT.SecretAnterior,
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
