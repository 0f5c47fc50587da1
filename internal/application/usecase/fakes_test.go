package usecase_test

import (
	"sort"

	"github.com/sanem/doacoes-api/internal/domain"
	"github.com/sanem/doacoes-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositórios em memória para os testes de caso de uso. Reproduzem as regras
// observáveis da camada postgres: busca por descrição normalizada, not-found
// como (nil, nil) e ordenação do estoque baixo.
// ──────────────────────────────────────────────────────────────────────────────

type fakeTipoRepo struct {
	tipos map[string]*entity.Tipo
	refs  map[string]bool // ids com estoque ou movimentos
}

func newFakeTipoRepo() *fakeTipoRepo {
	return &fakeTipoRepo{tipos: map[string]*entity.Tipo{}, refs: map[string]bool{}}
}

func (r *fakeTipoRepo) Create(t *entity.Tipo) error {
	cp := *t
	r.tipos[t.ID] = &cp
	return nil
}

func (r *fakeTipoRepo) GetByID(id string) (*entity.Tipo, error) {
	t, ok := r.tipos[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *fakeTipoRepo) GetByDescricao(descricao string) (*entity.Tipo, error) {
	for _, t := range r.tipos {
		if domain.MesmaDescricao(t.Descricao, descricao) {
			cp := *t
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeTipoRepo) List() ([]*entity.Tipo, error) {
	out := make([]*entity.Tipo, 0, len(r.tipos))
	for _, t := range r.tipos {
		cp := *t
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Descricao < out[j].Descricao })
	return out, nil
}

func (r *fakeTipoRepo) Update(t *entity.Tipo) error {
	cp := *t
	r.tipos[t.ID] = &cp
	return nil
}

func (r *fakeTipoRepo) Delete(id string) error {
	delete(r.tipos, id)
	return nil
}

func (r *fakeTipoRepo) HasReferences(id string) (bool, error) {
	return r.refs[id], nil
}

type fakeEstoqueRepo struct {
	itens map[string]*entity.ItemEstoque
}

func newFakeEstoqueRepo() *fakeEstoqueRepo {
	return &fakeEstoqueRepo{itens: map[string]*entity.ItemEstoque{}}
}

func (r *fakeEstoqueRepo) Create(item *entity.ItemEstoque) error {
	for _, i := range r.itens {
		if i.TipoID == item.TipoID {
			return domain.ErrDuplicate
		}
	}
	cp := *item
	r.itens[item.ID] = &cp
	return nil
}

func (r *fakeEstoqueRepo) GetByID(id string) (*entity.ItemEstoque, error) {
	i, ok := r.itens[id]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (r *fakeEstoqueRepo) GetByTipoID(tipoID string) (*entity.ItemEstoque, error) {
	for _, i := range r.itens {
		if i.TipoID == tipoID {
			cp := *i
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeEstoqueRepo) List() ([]*entity.ItemEstoque, error) {
	out := make([]*entity.ItemEstoque, 0, len(r.itens))
	for _, i := range r.itens {
		cp := *i
		out = append(out, &cp)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out, nil
}

func (r *fakeEstoqueRepo) Update(item *entity.ItemEstoque) error {
	cp := *item
	r.itens[item.ID] = &cp
	return nil
}

func (r *fakeEstoqueRepo) Delete(id string) error {
	delete(r.itens, id)
	return nil
}

func (r *fakeEstoqueRepo) ListLowStock(limite int) ([]*entity.ItemEstoque, error) {
	out := make([]*entity.ItemEstoque, 0)
	for _, i := range r.itens {
		if i.Quantidade < limite {
			cp := *i
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Quantidade < out[b].Quantidade })
	return out, nil
}

func (r *fakeEstoqueRepo) ApplyDelta(id string, delta int) (*entity.ItemEstoque, error) {
	i, ok := r.itens[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	i.Quantidade += delta
	cp := *i
	return &cp, nil
}
