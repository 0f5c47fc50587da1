package client

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sanem/doacoes-api/internal/domain"
)

// Produto visão local de um tipo com seu saldo de estoque.
type Produto struct {
	ID      string `json:"id"`
	Nome    string `json:"nome"`
	TipoID  string `json:"tipoId"`
	Estoque int    `json:"estoque"`
}

// Beneficiario visão local de um beneficiário.
type Beneficiario struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Documento string `json:"documento,omitempty"`
	Telefone  string `json:"telefone,omitempty"`
	Endereco  string `json:"endereco,omitempty"`
}

// LinhaEntrega uma peça entregue dentro de uma distribuição local.
type LinhaEntrega struct {
	ProdutoID  string `json:"produtoId,omitempty"`
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
}

// Distribuicao uma entrega local. IDs são sequenciais para facilitar a
// exibição offline; no servidor as distribuições são derivadas dos ledgers.
type Distribuicao struct {
	ID               int            `json:"id"`
	BeneficiarioID   string         `json:"beneficiarioId"`
	BeneficiarioNome string         `json:"beneficiarioNome"`
	Data             time.Time      `json:"data"`
	Responsavel      string         `json:"responsavel"`
	Produtos         []LinhaEntrega `json:"produtos"`
}

// Shadow é o estado local completo: a sombra dos dados do servidor usada
// quando não há conexão. Mutações offline operam aqui e são persistidas.
type Shadow struct {
	Produtos      []Produto      `json:"produtos"`
	Beneficiarios []Beneficiario `json:"beneficiarios"`
	Distribuicoes []Distribuicao `json:"distribuicoes"`
}

// AddProduto cadastra um produto local. Nomes duplicados são rejeitados com a
// mesma regra do servidor (comparação com fold e trim).
func (s *Shadow) AddProduto(nome string, estoque int) (*Produto, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, domain.ErrInvalidInput
	}
	for _, p := range s.Produtos {
		if domain.MesmaDescricao(p.Nome, nome) {
			return nil, domain.ErrDuplicate
		}
	}
	p := Produto{ID: uuid.NewString(), Nome: nome, Estoque: estoque}
	s.Produtos = append(s.Produtos, p)
	return &s.Produtos[len(s.Produtos)-1], nil
}

// AddBeneficiario cadastra um beneficiário local.
func (s *Shadow) AddBeneficiario(b Beneficiario) (*Beneficiario, error) {
	b.Nome = strings.TrimSpace(b.Nome)
	if b.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	s.Beneficiarios = append(s.Beneficiarios, b)
	return &s.Beneficiarios[len(s.Beneficiarios)-1], nil
}

/// AddDistribuicao registra uma entrega local: valida o beneficiário, debita o
// estoque de cada produto e atribui o próximo ID sequencial (max+1, 1 se
// vazio). A data é o momento do registro.
func (s *Shadow) AddDistribuicao(beneficiarioID, responsavel string, linhas []LinhaEntrega) (*Distribuicao, error) {
	if beneficiarioID == "" || len(linhas) == 0 {
		return nil, domain.ErrInvalidInput
	}
	var ben *Beneficiario
	for i := range s.Beneficiarios {
		if s.Beneficiarios[i].ID == beneficiarioID {
			ben = &s.Beneficiarios[i]
			break
		}
	}
	if ben == nil {
		return nil, domain.ErrNotFound
	}
	for _, l := range linhas {
		if l.Quantidade <= 0 {
			return nil, domain.ErrInvalidInput
		}
	}
	// Resolve todas as linhas antes de debitar: uma linha sem produto
	// correspondente invalida a entrega inteira, como no caminho autoritativo.
	indices := make([]int, len(linhas))
	for j, l := range linhas {
		idx := s.indiceProduto(l.ProdutoID, l.Nome)
		if idx < 0 {
			return nil, domain.ErrNotFound
		}
		indices[j] = idx
	}
	for j, l := range linhas {
		s.Produtos[indices[j]].Estoque -= l.Quantidade
	}
	d := Distribuicao{
		ID:               s.nextDistribuicaoID(),
		BeneficiarioID:   beneficiarioID,
		BeneficiarioNome: ben.Nome,
		Data:             time.Now(),
		Responsavel:      responsavel,
		Produtos:         linhas,
	}
	s.Distribuicoes = append(s.Distribuicoes, d)
	return &s.Distribuicoes[len(s.Distribuicoes)-1], nil
}

// UpdateProduto altera nome e saldo de um produto local. A regra de nomes
// duplicados vale no rename; renomear para o próprio nome é permitido.
func (s *Shadow) UpdateProduto(id, nome string, estoque int) (*Produto, error) {
	nome = strings.TrimSpace(nome)
	if nome == "" {
		return nil, domain.ErrInvalidInput
	}
	alvo := -1
	for i := range s.Produtos {
		if s.Produtos[i].ID == id {
			alvo = i
			break
		}
	}
	if alvo < 0 {
		return nil, domain.ErrNotFound
	}
	for i := range s.Produtos {
		if i != alvo && domain.MesmaDescricao(s.Produtos[i].Nome, nome) {
			return nil, domain.ErrDuplicate
		}
	}
	s.Produtos[alvo].Nome = nome
	s.Produtos[alvo].Estoque = estoque
	return &s.Produtos[alvo], nil
}

// RemoveProduto remove um produto local por ID.
func (s *Shadow) RemoveProduto(id string) error {
	for i := range s.Produtos {
		if s.Produtos[i].ID == id {
			s.Produtos = append(s.Produtos[:i], s.Produtos[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// UpdateBeneficiario substitui os dados cadastrais de um beneficiário local.
func (s *Shadow) UpdateBeneficiario(b Beneficiario) (*Beneficiario, error) {
	b.Nome = strings.TrimSpace(b.Nome)
	if b.Nome == "" {
		return nil, domain.ErrInvalidInput
	}
	for i := range s.Beneficiarios {
		if s.Beneficiarios[i].ID == b.ID {
			s.Beneficiarios[i] = b
			return &s.Beneficiarios[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

// RemoveBeneficiario remove um beneficiário local por ID. As distribuições já
// registradas para ele permanecem no histórico.
func (s *Shadow) RemoveBeneficiario(id string) error {
	for i := range s.Beneficiarios {
		if s.Beneficiarios[i].ID == id {
			s.Beneficiarios = append(s.Beneficiarios[:i], s.Beneficiarios[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

// indiceProduto localiza um produto pelo ID ou pelo nome (com fold e trim).
func (s *Shadow) indiceProduto(id, nome string) int {
	for i := range s.Produtos {
		if (id != "" && s.Produtos[i].ID == id) || (nome != "" && domain.MesmaDescricao(s.Produtos[i].Nome, nome)) {
			return i
		}
	}
	return -1
}

func (s *Shadow) nextDistribuicaoID() int {
	max := 0
	for _, d := range s.Distribuicoes {
		if d.ID > max {
			max = d.ID
		}
	}
	return max + 1
}
