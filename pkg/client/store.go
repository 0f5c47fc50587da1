package client

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// Buckets do snapshot local.
const (
	bucketProdutos      = "produtos"
	bucketBeneficiarios = "beneficiarios"
	bucketDistribuicoes = "distribuicoes"
)

// Store persiste o Shadow em SQLite como snapshot: uma linha por bucket,
// payload em JSON. Cada gravação substitui o bucket inteiro, o que mantém o
// arquivo consistente mesmo se o processo morrer entre mutações.
type Store struct {
	db *sql.DB
}

// OpenStore abre (ou cria) o arquivo de snapshot no caminho indicado.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("client: abrir snapshot: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS sombra (
		bucket  TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("client: criar tabela sombra: %w", err)
	}
	return &Store{db: db}, nil
}

// Close fecha o arquivo de snapshot.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save grava o estado completo, um bucket por coleção, na mesma transação.
func (s *Store) Save(sh *Shadow) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("client: iniciar gravação: %w", err)
	}
	defer tx.Rollback()

	buckets := map[string]any{
		bucketProdutos:      sh.Produtos,
		bucketBeneficiarios: sh.Beneficiarios,
		bucketDistribuicoes: sh.Distribuicoes,
	}
	for bucket, v := range buckets {
		payload, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("client: serializar %s: %w", bucket, err)
		}
		if _, err := tx.Exec(
			`INSERT INTO sombra (bucket, payload) VALUES (?, ?)
			 ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`,
			bucket, payload,
		); err != nil {
			return fmt.Errorf("client: gravar %s: %w", bucket, err)
		}
	}
	return tx.Commit()
}

// Load lê o estado completo. Buckets ausentes viram coleções vazias, de modo
// que um arquivo recém-criado carrega um Shadow zerado.
func (s *Store) Load() (*Shadow, error) {
	sh := &Shadow{}
	destinos := map[string]any{
		bucketProdutos:      &sh.Produtos,
		bucketBeneficiarios: &sh.Beneficiarios,
		bucketDistribuicoes: &sh.Distribuicoes,
	}
	for bucket, dest := range destinos {
		var payload []byte
		err := s.db.QueryRow(`SELECT payload FROM sombra WHERE bucket = ?`, bucket).Scan(&payload)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("client: ler %s: %w", bucket, err)
		}
		if err := json.Unmarshal(payload, dest); err != nil {
			return nil, fmt.Errorf("client: desserializar %s: %w", bucket, err)
		}
	}
	return sh, nil
}
