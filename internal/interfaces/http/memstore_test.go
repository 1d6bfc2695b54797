package http_test

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// memStore guarda el estado compartido en memoria. Los repos por agregado son
// vistas tipadas sobre este estado, con la misma semántica que los adaptadores
// de PostgreSQL: (nil, nil) cuando no existe, ErrNotFound/ErrConflict en Delete
// y rollback completo si la "transacción" falla. Llega sembrado con los estados
// de venta.
type memStore struct {
	categories map[string]*entity.ProductCategory
	products   map[string]*entity.Product
	sales      map[string]*entity.Sale
	details    []*entity.SaleDetail
	statuses   []*entity.SaleStatus
	users      map[string]*entity.User // por email
}

func newMemStore() *memStore {
	s := &memStore{
		categories: make(map[string]*entity.ProductCategory),
		products:   make(map[string]*entity.Product),
		sales:      make(map[string]*entity.Sale),
		users:      make(map[string]*entity.User),
	}
	for i, code := range []string{
		entity.SaleStatusPending,
		entity.SaleStatusCompleted,
		entity.SaleStatusCancelled,
		entity.SaleStatusPaid,
	} {
		s.statuses = append(s.statuses, &entity.SaleStatus{
			ID:   "status-" + string(rune('a'+i)),
			Code: code,
			Name: code,
		})
	}
	return s
}

func (s *memStore) Categories() repository.CategoryRepository { return &memCategoryRepo{s} }
func (s *memStore) Products() repository.ProductRepository    { return &memProductRepo{s} }
func (s *memStore) Sales() repository.SaleRepository          { return &memSaleRepo{s} }
func (s *memStore) Statuses() repository.SaleStatusRepository { return &memStatusRepo{s} }
func (s *memStore) Users() repository.UserRepository          { return &memUserRepo{s} }
func (s *memStore) Tx() sales.TxRunner                        { return &memTxRunner{s} }

// ── CategoryRepository ────────────────────────────────────────────────────────

type memCategoryRepo struct{ s *memStore }

func (r *memCategoryRepo) Create(c *entity.ProductCategory) error {
	for _, existing := range r.s.categories {
		if existing.Code == c.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) GetByID(id string) (*entity.ProductCategory, error) {
	c, ok := r.s.categories[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *memCategoryRepo) GetByCode(code string) (*entity.ProductCategory, error) {
	for _, c := range r.s.categories {
		if c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memCategoryRepo) List() ([]*entity.ProductCategory, error) {
	out := make([]*entity.ProductCategory, 0, len(r.s.categories))
	for _, c := range r.s.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memCategoryRepo) Update(c *entity.ProductCategory) error {
	if _, ok := r.s.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	r.s.categories[c.ID] = &cp
	return nil
}

func (r *memCategoryRepo) Delete(id string) error {
	if _, ok := r.s.categories[id]; !ok {
		return domain.ErrNotFound
	}
	// Emula la FK RESTRICT de products.category_id.
	for _, p := range r.s.products {
		if p.CategoryID == id {
			return domain.ErrConflict
		}
	}
	delete(r.s.categories, id)
	return nil
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(p *entity.Product) error {
	for _, existing := range r.s.products {
		if existing.Code == p.Code {
			return domain.ErrDuplicate
		}
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *memProductRepo) GetByCode(code string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Code == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memProductRepo) ListByCategory(categoryID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		if p.CategoryID == categoryID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memProductRepo) Update(p *entity.Product) error {
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *p
	r.s.products[p.ID] = &cp
	return nil
}

func (r *memProductRepo) Delete(id string) error {
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

func (r *memProductRepo) DecrementStock(productID string, quantity int) (bool, error) {
	p, ok := r.s.products[productID]
	if !ok || p.Stock < quantity {
		return false, nil
	}
	p.Stock -= quantity
	return true, nil
}

// ── SaleRepository ────────────────────────────────────────────────────────────

type memSaleRepo struct{ s *memStore }

func (r *memSaleRepo) Create(sale *entity.Sale) error {
	cp := *sale
	r.s.sales[sale.ID] = &cp
	return nil
}

func (r *memSaleRepo) CreateDetail(d *entity.SaleDetail) error {
	cp := *d
	r.s.details = append(r.s.details, &cp)
	return nil
}

func (r *memSaleRepo) GetByID(id string) (*entity.Sale, error) {
	sale, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *sale
	return &cp, nil
}

func (r *memSaleRepo) GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error) {
	var out []*entity.SaleDetail
	for _, d := range r.s.details {
		if d.SaleID == saleID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memSaleRepo) List() ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.s.sales))
	for _, sale := range r.s.sales {
		cp := *sale
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memSaleRepo) UpdateStatus(saleID, statusID string) error {
	sale, ok := r.s.sales[saleID]
	if !ok {
		return domain.ErrNotFound
	}
	sale.StatusID = statusID
	return nil
}

func (r *memSaleRepo) Delete(id string) error {
	if _, ok := r.s.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.sales, id)
	var kept []*entity.SaleDetail
	for _, d := range r.s.details {
		if d.SaleID != id {
			kept = append(kept, d)
		}
	}
	r.s.details = kept
	return nil
}

// ── SaleStatusRepository ──────────────────────────────────────────────────────

type memStatusRepo struct{ s *memStore }

func (r *memStatusRepo) GetByID(id string) (*entity.SaleStatus, error) {
	for _, st := range r.s.statuses {
		if st.ID == id {
			cp := *st
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memStatusRepo) GetByCode(code string) (*entity.SaleStatus, error) {
	for _, st := range r.s.statuses {
		if st.Code == code {
			cp := *st
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memStatusRepo) List() ([]*entity.SaleStatus, error) {
	out := make([]*entity.SaleStatus, 0, len(r.s.statuses))
	for _, st := range r.s.statuses {
		cp := *st
		out = append(out, &cp)
	}
	return out, nil
}

// ── UserRepository ────────────────────────────────────────────────────────────

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(u *entity.User) error {
	cp := *u
	r.s.users[u.Email] = &cp
	return nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	u, ok := r.s.users[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// memTxRunner toma una instantánea antes de fn y la restaura si fn falla.
type memTxRunner struct{ s *memStore }

func (tx *memTxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	statusRepo repository.SaleStatusRepository,
) error) error {
	savedSales := make(map[string]*entity.Sale, len(tx.s.sales))
	for k, v := range tx.s.sales {
		cp := *v
		savedSales[k] = &cp
	}
	savedDetails := make([]*entity.SaleDetail, 0, len(tx.s.details))
	for _, d := range tx.s.details {
		cp := *d
		savedDetails = append(savedDetails, &cp)
	}
	savedProducts := make(map[string]*entity.Product, len(tx.s.products))
	for k, v := range tx.s.products {
		cp := *v
		savedProducts[k] = &cp
	}

	if err := fn(tx.s.Sales(), tx.s.Products(), tx.s.Statuses()); err != nil {
		tx.s.sales = savedSales
		tx.s.details = savedDetails
		tx.s.products = savedProducts
		return err
	}
	return nil
}

var _ sales.TxRunner = (*memTxRunner)(nil)
