package usecase_test

import (
	"errors"

	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para los casos de uso CRUD
// ──────────────────────────────────────────────────────────────────────────────

var errBD = errors.New("fallo de base de datos simulado")

type fakeCategoryRepo struct {
	categories map[string]*entity.ProductCategory
	// IDs de categorías con productos asociados: Delete responde ErrConflict.
	referenced map[string]bool
	failList   bool
}

func newFakeCategoryRepo(categories ...*entity.ProductCategory) *fakeCategoryRepo {
	r := &fakeCategoryRepo{
		categories: make(map[string]*entity.ProductCategory),
		referenced: make(map[string]bool),
	}
	for _, c := range categories {
		cp := *c
		r.categories[c.ID] = &cp
	}
	return r
}

func (r *fakeCategoryRepo) Create(c *entity.ProductCategory) error {
	for _, existing := range r.categories {
		if existing.Code == c.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.ProductCategory, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCategoryRepo) GetByCode(code string) (*entity.ProductCategory, error) {
	for _, c := range r.categories {
		if c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List() ([]*entity.ProductCategory, error) {
	if r.failList {
		return nil, errBD
	}
	out := make([]*entity.ProductCategory, 0, len(r.categories))
	for _, c := range r.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCategoryRepo) Update(c *entity.ProductCategory) error {
	if _, ok := r.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.categories[c.ID] = &cp
	return nil
}

func (r *fakeCategoryRepo) Delete(id string) error {
	if _, ok := r.categories[id]; !ok {
		return domain.ErrNotFound
	}
	if r.referenced[id] {
		return domain.ErrConflict
	}
	delete(r.categories, id)
	return nil
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[p.ID] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.products {
		if existing.Code == p.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.CategoryID == categoryID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error {
	if _, ok := r.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	if _, ok := r.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) DecrementStock(productID string, quantity int) (bool, error) {
	p, ok := r.products[productID]
	if !ok || p.Stock < quantity {
		return false, nil
	}
	p.Stock -= quantity
	return true, nil
}
