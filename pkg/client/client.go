// Package client é o cliente Go da API de doações com estado sombra: quando
// há conexão e token, o servidor é a fonte de verdade; sem token (ou quando a
// rede cai durante um Refresh), as operações seguem sobre o snapshot local.
//
// Uma escrita remota que falha não altera nada localmente: mutações na sombra
// acontecem apenas em modo offline.
package client

import (
	"errors"
	"time"

	"github.com/sanem/doacoes-api/internal/application/doacao"
	"github.com/sanem/doacoes-api/internal/application/dto"
	"github.com/sanem/doacoes-api/internal/domain"
	"github.com/sanem/doacoes-api/internal/domain/entity"
	"github.com/sanem/doacoes-api/internal/domain/repository"
)

// Client acessa a API de doações com fallback para o estado sombra local.
type Client struct {
	api    *apiClient
	store  *Store
	shadow *Shadow
}

// New constrói o cliente carregando o snapshot local. Token vazio deixa o
// cliente em modo offline até um Login.
func New(baseURL, token string, store *Store) (*Client, error) {
	sh, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Client{api: newAPIClient(baseURL, token), store: store, shadow: sh}, nil
}

func (c *Client) online() bool {
	return c.api.token != ""
}

// Login autentica no servidor e guarda o token para as próximas chamadas.
func (c *Client) Login(email, senha string) error {
	var out dto.LoginResponse
	if err := c.api.post("/api/auth/login", dto.LoginRequest{Email: email, Senha: senha}, &out); err != nil {
		return err
	}
	c.api.token = out.Token
	return nil
}

// Refresh sincroniza a sombra com o servidor: carrega estoque, beneficiários
// e enviadas, reagrupa as distribuições e grava o snapshot, descartando o
// estado local anterior. Erro de rede cai no snapshot gravado; respostas de
// erro do servidor (401 inclusive) são devolvidas sem fallback.
func (c *Client) Refresh() error {
	if !c.online() {
		sh, err := c.store.Load()
		if err != nil {
			return err
		}
		c.shadow = sh
		return nil
	}

	var estoque []dto.ItemEstoqueResponse
	if err := c.api.get("/api/estoque", &estoque); err != nil {
		return c.fallback(err)
	}
	var beneficiarios []dto.BeneficiarioResponse
	if err := c.api.get("/api/beneficiarios", &beneficiarios); err != nil {
		return c.fallback(err)
	}
	var enviadas []dto.DoacaoEnviadaResponse
	if err := c.api.get("/api/doacoes/enviadas", &enviadas); err != nil {
		return c.fallback(err)
	}

	sh := &Shadow{
		Produtos:      make([]Produto, 0, len(estoque)),
		Beneficiarios: make([]Beneficiario, 0, len(beneficiarios)),
	}
	for _, item := range estoque {
		sh.Produtos = append(sh.Produtos, Produto{
			ID:      item.ID,
			Nome:    item.TipoDescricao,
			TipoID:  item.TipoID,
			Estoque: item.Quantidade,
		})
	}
	for _, b := range beneficiarios {
		sh.Beneficiarios = append(sh.Beneficiarios, Beneficiario{
			ID:        b.ID,
			Nome:      b.Nome,
			Documento: b.Documento,
			Telefone:  b.Telefone,
			Endereco:  b.Endereco,
		})
	}
	sh.Distribuicoes = reagrupar(enviadas)

	c.shadow = sh
	return c.store.Save(sh)
}

// fallback decide o destino de um erro de Refresh: erro de API volta como
// está; erro de rede recarrega o último snapshot e segue offline.
func (c *Client) fallback(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return err
	}
	sh, lerr := c.store.Load()
	if lerr != nil {
		return errors.Join(err, lerr)
	}
	c.shadow = sh
	return nil
}

// reagrupar deriva as distribuições locais das enviadas do servidor com a
// mesma regra do backend, trocando a chave composta por IDs sequenciais.
func reagrupar(enviadas []dto.DoacaoEnviadaResponse) []Distribuicao {
	detalhes := make([]*repository.DoacaoEnviadaDetalhe, 0, len(enviadas))
	for _, e := range enviadas {
		detalhes = append(detalhes, &repository.DoacaoEnviadaDetalhe{
			DoacaoEnviada: entity.DoacaoEnviada{
				ID:             e.ID,
				Quantidade:     e.Quantidade,
				BeneficiarioID: e.BeneficiarioID,
				TipoID:         e.TipoID,
				EstoqueID:      e.EstoqueID,
				Data:           e.Data,
			},
			BeneficiarioNome: e.BeneficiarioNome,
			TipoDescricao:    e.TipoDescricao,
			OperadorNome:     e.OperadorNome,
		})
	}
	grupos := doacao.AgruparDistribuicoes(detalhes)
	out := make([]Distribuicao, 0, len(grupos))
	for i, g := range grupos {
		linhas := make([]LinhaEntrega, 0, len(g.Produtos))
		for _, p := range g.Produtos {
			linhas = append(linhas, LinhaEntrega{Nome: p.Nome, Quantidade: p.Quantidade})
		}
		out = append(out, Distribuicao{
			ID:               i + 1,
			BeneficiarioID:   g.BeneficiarioID,
			BeneficiarioNome: g.BeneficiarioNome,
			Data:             g.Data,
			Responsavel:      g.Responsavel,
			Produtos:         linhas,
		})
	}
	return out
}

// Produtos devolve a visão local de produtos.
func (c *Client) Produtos() []Produto {
	return c.shadow.Produtos
}

// Beneficiarios devolve a visão local de beneficiários.
func (c *Client) Beneficiarios() []Beneficiario {
	return c.shadow.Beneficiarios
}

// Distribuicoes devolve a visão local de distribuições.
func (c *Client) Distribuicoes() []Distribuicao {
	return c.shadow.Distribuicoes
}

// CriarProduto cadastra um tipo com seu estoque inicial. Online, a escrita
// vai ao servidor e a sombra só muda no próximo Refresh; offline, a sombra é
// alterada e persistida.
func (c *Client) CriarProduto(nome string, estoque int) (*Produto, error) {
	if !c.online() {
		p, err := c.shadow.AddProduto(nome, estoque)
		if err != nil {
			return nil, err
		}
		if err := c.store.Save(c.shadow); err != nil {
			return nil, err
		}
		return p, nil
	}
	var tipo dto.TipoResponse
	if err := c.api.post("/api/tipos", dto.CreateTipoRequest{Descricao: nome}, &tipo); err != nil {
		return nil, err
	}
	var item dto.ItemEstoqueResponse
	if err := c.api.post("/api/estoque", dto.CreateEstoqueRequest{TipoID: tipo.ID, Quantidade: estoque}, &item); err != nil {
		return nil, err
	}
	return &Produto{ID: item.ID, Nome: tipo.Descricao, TipoID: tipo.ID, Estoque: item.Quantidade}, nil
}

// AtualizarProduto renomeia um produto e corrige seu saldo. Online, o nome vai
// ao tipo e o saldo ao item de estoque; offline, a sombra é alterada e
// persistida, com a regra de nomes duplicados valendo no rename.
func (c *Client) AtualizarProduto(id, nome string, estoque int) (*Produto, error) {
	if !c.online() {
		p, err := c.shadow.UpdateProduto(id, nome, estoque)
		if err != nil {
			return nil, err
		}
		if err := c.store.Save(c.shadow); err != nil {
			return nil, err
		}
		return p, nil
	}
	p := c.produtoPorID(id)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	var tipo dto.TipoResponse
	if err := c.api.put("/api/tipos/"+p.TipoID, dto.UpdateTipoRequest{Descricao: nome}, &tipo); err != nil {
		return nil, err
	}
	var item dto.ItemEstoqueResponse
	if err := c.api.put("/api/estoque/"+id, dto.UpdateEstoqueRequest{Quantidade: estoque, TipoID: p.TipoID}, &item); err != nil {
		return nil, err
	}
	return &Produto{ID: item.ID, Nome: tipo.Descricao, TipoID: item.TipoID, Estoque: item.Quantidade}, nil
}

// RemoverProduto exclui um produto. Online, remove o item de estoque e o tipo
// no servidor (409 se houver histórico de doações); offline, tira da sombra e
// persiste.
func (c *Client) RemoverProduto(id string) error {
	if !c.online() {
		if err := c.shadow.RemoveProduto(id); err != nil {
			return err
		}
		return c.store.Save(c.shadow)
	}
	p := c.produtoPorID(id)
	if p == nil {
		return domain.ErrNotFound
	}
	if err := c.api.del("/api/estoque/" + id); err != nil {
		return err
	}
	return c.api.del("/api/tipos/" + p.TipoID)
}

// CriarBeneficiario cadastra um beneficiário, no servidor ou na sombra.
func (c *Client) CriarBeneficiario(b Beneficiario) (*Beneficiario, error) {
	if !c.online() {
		out, err := c.shadow.AddBeneficiario(b)
		if err != nil {
			return nil, err
		}
		if err := c.store.Save(c.shadow); err != nil {
			return nil, err
		}
		return out, nil
	}
	var resp dto.BeneficiarioResponse
	req := dto.CreateBeneficiarioRequest{
		Nome:      b.Nome,
		Documento: b.Documento,
		Telefone:  b.Telefone,
		Endereco:  b.Endereco,
	}
	if err := c.api.post("/api/beneficiarios", req, &resp); err != nil {
		return nil, err
	}
	return &Beneficiario{ID: resp.ID, Nome: resp.Nome, Documento: resp.Documento, Telefone: resp.Telefone, Endereco: resp.Endereco}, nil
}

// AtualizarBeneficiario substitui os dados cadastrais de um beneficiário.
func (c *Client) AtualizarBeneficiario(b Beneficiario) (*Beneficiario, error) {
	if !c.online() {
		out, err := c.shadow.UpdateBeneficiario(b)
		if err != nil {
			return nil, err
		}
		if err := c.store.Save(c.shadow); err != nil {
			return nil, err
		}
		return out, nil
	}
	var resp dto.BeneficiarioResponse
	req := dto.UpdateBeneficiarioRequest{
		Nome:      &b.Nome,
		Documento: &b.Documento,
		Telefone:  &b.Telefone,
		Endereco:  &b.Endereco,
	}
	if err := c.api.put("/api/beneficiarios/"+b.ID, req, &resp); err != nil {
		return nil, err
	}
	return &Beneficiario{ID: resp.ID, Nome: resp.Nome, Documento: resp.Documento, Telefone: resp.Telefone, Endereco: resp.Endereco}, nil
}

// RemoverBeneficiario exclui um beneficiário, no servidor ou na sombra.
func (c *Client) RemoverBeneficiario(id string) error {
	if !c.online() {
		if err := c.shadow.RemoveBeneficiario(id); err != nil {
			return err
		}
		return c.store.Save(c.shadow)
	}
	return c.api.del("/api/beneficiarios/" + id)
}

// RegistrarEntrega registra uma entrega. Online, cada linha vira uma doação
// enviada no servidor (o tipo e o estoque vêm da visão local); offline, a
// entrega entra na sombra com débito de estoque e ID sequencial.
func (c *Client) RegistrarEntrega(beneficiarioID, responsavel string, linhas []LinhaEntrega) (*Distribuicao, error) {
	if !c.online() {
		d, err := c.shadow.AddDistribuicao(beneficiarioID, responsavel, linhas)
		if err != nil {
			return nil, err
		}
		if err := c.store.Save(c.shadow); err != nil {
			return nil, err
		}
		return d, nil
	}
	for _, l := range linhas {
		p := c.produtoPorLinha(l)
		if p == nil {
			return nil, domain.ErrNotFound
		}
		req := dto.RegistrarEnviadaRequest{
			Quantidade:     l.Quantidade,
			BeneficiarioID: beneficiarioID,
			TipoID:         p.TipoID,
			EstoqueID:      p.ID,
		}
		if err := c.api.post("/api/doacoes/enviadas", req, nil); err != nil {
			return nil, err
		}
	}
	// Visão sintetizada da entrega recém registrada. O agrupamento oficial
	// (e o ID sequencial local) é rederivado das enviadas no próximo Refresh.
	d := &Distribuicao{
		BeneficiarioID: beneficiarioID,
		Data:           time.Now(),
		Responsavel:    responsavel,
		Produtos:       linhas,
	}
	for _, b := range c.shadow.Beneficiarios {
		if b.ID == beneficiarioID {
			d.BeneficiarioNome = b.Nome
			break
		}
	}
	return d, nil
}

func (c *Client) produtoPorLinha(l LinhaEntrega) *Produto {
	if i := c.shadow.indiceProduto(l.ProdutoID, l.Nome); i >= 0 {
		return &c.shadow.Produtos[i]
	}
	return nil
}

func (c *Client) produtoPorID(id string) *Produto {
	for i := range c.shadow.Produtos {
		if c.shadow.Produtos[i].ID == id {
			return &c.shadow.Produtos[i]
		}
	}
	return nil
}

// Close grava e fecha o snapshot local.
func (c *Client) Close() error {
	if err := c.store.Save(c.shadow); err != nil {
		c.store.Close()
		return err
	}
	return c.store.Close()
}
