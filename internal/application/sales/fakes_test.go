package sales_test

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/application/sales"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria para el flujo de ventas
// ──────────────────────────────────────────────────────────────────────────────

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
	var out []*entity.Product
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
	cp := *p
	r.products[p.ID] = &cp
	return nil
}

func (r *fakeProductRepo) Delete(id string) error {
	delete(r.products, id)
	return nil
}

// DecrementStock reproduce el UPDATE condicional: solo afecta la fila si
// el producto existe y tiene stock suficiente.
func (r *fakeProductRepo) DecrementStock(productID string, quantity int) (bool, error) {
	p, ok := r.products[productID]
	if !ok || p.Stock < quantity {
		return false, nil
	}
	p.Stock -= quantity
	return true, nil
}

func (r *fakeProductRepo) stockOf(id string) int {
	if p, ok := r.products[id]; ok {
		return p.Stock
	}
	return -1
}

type fakeSaleRepo struct {
	sales   map[string]*entity.Sale
	details []*entity.SaleDetail // orden de inserción
}

func newFakeSaleRepo() *fakeSaleRepo {
	return &fakeSaleRepo{sales: make(map[string]*entity.Sale)}
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	cp := *s
	r.sales[s.ID] = &cp
	return nil
}

func (r *fakeSaleRepo) CreateDetail(d *entity.SaleDetail) error {
	cp := *d
	r.details = append(r.details, &cp)
	return nil
}

func (r *fakeSaleRepo) GetByID(id string) (*entity.Sale, error) {
	s, ok := r.sales[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (r *fakeSaleRepo) GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error) {
	var out []*entity.SaleDetail
	for _, d := range r.details {
		if d.SaleID == saleID {
			cp := *d
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeSaleRepo) List() ([]*entity.Sale, error) {
	var out []*entity.Sale
	for _, s := range r.sales {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeSaleRepo) UpdateStatus(saleID, statusID string) error {
	s, ok := r.sales[saleID]
	if !ok {
		return nil
	}
	s.StatusID = statusID
	return nil
}

func (r *fakeSaleRepo) Delete(id string) error {
	delete(r.sales, id)
	var kept []*entity.SaleDetail
	for _, d := range r.details {
		if d.SaleID != id {
			kept = append(kept, d)
		}
	}
	r.details = kept
	return nil
}

type fakeStatusRepo struct {
	statuses []*entity.SaleStatus
}

func newFakeStatusRepo(codes ...string) *fakeStatusRepo {
	r := &fakeStatusRepo{}
	for i, code := range codes {
		r.statuses = append(r.statuses, &entity.SaleStatus{
			ID:   "status-" + string(rune('a'+i)),
			Code: code,
			Name: code,
		})
	}
	return r
}

func (r *fakeStatusRepo) GetByID(id string) (*entity.SaleStatus, error) {
	for _, s := range r.statuses {
		if s.ID == id {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStatusRepo) GetByCode(code string) (*entity.SaleStatus, error) {
	for _, s := range r.statuses {
		if s.Code == code {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeStatusRepo) List() ([]*entity.SaleStatus, error) {
	var out []*entity.SaleStatus
	for _, s := range r.statuses {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

// fakeTxRunner emula la transacción: toma una instantánea de los repos antes de
// ejecutar fn y la restaura si fn falla (Rollback). Cuenta commits y rollbacks.
type fakeTxRunner struct {
	saleRepo    *fakeSaleRepo
	productRepo *fakeProductRepo
	statusRepo  *fakeStatusRepo

	commits   int
	rollbacks int
}

func newFakeTxRunner(saleRepo *fakeSaleRepo, productRepo *fakeProductRepo, statusRepo *fakeStatusRepo) *fakeTxRunner {
	return &fakeTxRunner{saleRepo: saleRepo, productRepo: productRepo, statusRepo: statusRepo}
}

func (tx *fakeTxRunner) Run(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	statusRepo repository.SaleStatusRepository,
) error) error {
	// Instantánea para poder "hacer rollback".
	savedSales := make(map[string]*entity.Sale, len(tx.saleRepo.sales))
	for k, v := range tx.saleRepo.sales {
		cp := *v
		savedSales[k] = &cp
	}
	savedDetails := make([]*entity.SaleDetail, 0, len(tx.saleRepo.details))
	for _, d := range tx.saleRepo.details {
		cp := *d
		savedDetails = append(savedDetails, &cp)
	}
	savedProducts := make(map[string]*entity.Product, len(tx.productRepo.products))
	for k, v := range tx.productRepo.products {
		cp := *v
		savedProducts[k] = &cp
	}

	if err := fn(tx.saleRepo, tx.productRepo, tx.statusRepo); err != nil {
		tx.saleRepo.sales = savedSales
		tx.saleRepo.details = savedDetails
		tx.productRepo.products = savedProducts
		tx.rollbacks++
		return err
	}
	tx.commits++
	return nil
}

var _ sales.TxRunner = (*fakeTxRunner)(nil)
