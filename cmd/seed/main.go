// seed popula o banco com o operador administrador inicial e o catálogo de
// partida (tipos, estoque e beneficiários de exemplo). Idempotente: registros
// já existentes são mantidos.
//
// Uso: go run ./cmd/seed
// Variáveis: DATABASE_URL (ou DB_*), SEED_ADMIN_EMAIL, SEED_ADMIN_SENHA.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/sanem/doacoes-api/internal/infrastructure/postgres"
	"github.com/sanem/doacoes-api/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

type tipoSeed struct {
	descricao  string
	quantidade int
}

var catalogoInicial = []tipoSeed{
	{"Camiseta Masculina", 150},
	{"Calça Jeans Masculina", 80},
	{"Blusa Feminina", 120},
	{"Vestido Feminino", 65},
	{"Roupa Infantil", 200},
	{"Tênis", 45},
	{"Casaco", 55},
	{"Meias", 300},
}

var beneficiariosIniciais = []struct {
	nome, documento, telefone string
}{
	{"Maria Silva Santos", "123.456.789-00", "(45) 99999-1111"},
	{"João Pereira Lima", "987.654.321-00", "(45) 99999-2222"},
	{"Ana Costa Oliveira", "456.789.123-00", "(45) 99999-3333"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carregar configuração: %v\n", err)
		os.Exit(1)
	}

	adminEmail := envOr("SEED_ADMIN_EMAIL", "admin@sanem.org.br")
	adminSenha := envOr("SEED_ADMIN_SENHA", "")
	if adminSenha == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_SENHA é obrigatória")
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexão ao PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte(adminSenha), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gerar hash: %v\n", err)
		os.Exit(1)
	}
	if _, err := pool.Exec(ctx, `
		INSERT INTO operadores (id, nome, email, senha_hash, tipo)
		VALUES ($1, 'Administrador', $2, $3, 'admin')
		ON CONFLICT (email) DO NOTHING`,
		uuid.NewString(), adminEmail, string(hash),
	); err != nil {
		fmt.Fprintf(os.Stderr, "criar administrador: %v\n", err)
		os.Exit(1)
	}

	for _, t := range catalogoInicial {
		tipoID := uuid.NewString()
		if _, err := pool.Exec(ctx, `
			INSERT INTO tipos (id, descricao) VALUES ($1, $2)
			ON CONFLICT DO NOTHING`,
			tipoID, t.descricao,
		); err != nil {
			fmt.Fprintf(os.Stderr, "criar tipo %q: %v\n", t.descricao, err)
			os.Exit(1)
		}
		// O tipo pode já existir de uma execução anterior: resolve o ID real.
		if err := pool.QueryRow(ctx,
			`SELECT id FROM tipos WHERE LOWER(TRIM(descricao)) = LOWER(TRIM($1))`,
			t.descricao,
		).Scan(&tipoID); err != nil {
			fmt.Fprintf(os.Stderr, "resolver tipo %q: %v\n", t.descricao, err)
			os.Exit(1)
		}
		if _, err := pool.Exec(ctx, `
			INSERT INTO estoque (id, tipo_id, quantidade) VALUES ($1, $2, $3)
			ON CONFLICT (tipo_id) DO NOTHING`,
			uuid.NewString(), tipoID, t.quantidade,
		); err != nil {
			fmt.Fprintf(os.Stderr, "criar estoque de %q: %v\n", t.descricao, err)
			os.Exit(1)
		}
	}

	for _, b := range beneficiariosIniciais {
		if _, err := pool.Exec(ctx, `
			INSERT INTO beneficiarios (id, nome, documento, telefone)
			SELECT $1, $2, $3, $4
			WHERE NOT EXISTS (SELECT 1 FROM beneficiarios WHERE documento = $3)`,
			uuid.NewString(), b.nome, b.documento, b.telefone,
		); err != nil {
			fmt.Fprintf(os.Stderr, "criar beneficiário %q: %v\n", b.nome, err)
			os.Exit(1)
		}
	}

	fmt.Printf("Seed concluído: admin %s, %d tipos, %d beneficiários\n",
		adminEmail, len(catalogoInicial), len(beneficiariosIniciais))
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
