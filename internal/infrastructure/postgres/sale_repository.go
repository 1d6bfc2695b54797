package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste la cabecera de la venta.
func (r *SaleRepo) Create(sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, sale_date, total_amount, status_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		sale.ID, sale.SaleDate, sale.TotalAmount, sale.StatusID,
		sale.CreatedAt, sale.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// CreateDetail persiste una línea de detalle. position preserva el orden de envío.
func (r *SaleRepo) CreateDetail(detail *entity.SaleDetail) error {
	query := `
		INSERT INTO sale_details (id, sale_id, product_id, quantity, unit_price, subtotal, position)
		VALUES ($1, $2, $3, $4, $5, $6,
			(SELECT COALESCE(MAX(position), 0) + 1 FROM sale_details WHERE sale_id = $2))`
	_, err := r.q.Exec(context.Background(), query,
		detail.ID, detail.SaleID, detail.ProductID, detail.Quantity,
		detail.UnitPrice, detail.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("insert sale detail: %w", err)
	}
	return nil
}

// GetByID obtiene una cabecera de venta por ID.
func (r *SaleRepo) GetByID(id string) (*entity.Sale, error) {
	query := `
		SELECT id, sale_date, total_amount, status_id, created_at, updated_at
		FROM sales WHERE id = $1`
	var s entity.Sale
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.SaleDate, &s.TotalAmount, &s.StatusID, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return &s, nil
}

// GetDetailsBySaleID obtiene las líneas de una venta en orden de inserción.
func (r *SaleRepo) GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error) {
	query := `
		SELECT id, sale_id, product_id, quantity, unit_price, subtotal
		FROM sale_details WHERE sale_id = $1 ORDER BY position`
	rows, err := r.q.Query(context.Background(), query, saleID)
	if err != nil {
		return nil, fmt.Errorf("list sale details: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleDetail
	for rows.Next() {
		var d entity.SaleDetail
		if err := rows.Scan(&d.ID, &d.SaleID, &d.ProductID, &d.Quantity, &d.UnitPrice, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan sale detail: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

// List lista todas las cabeceras de venta.
func (r *SaleRepo) List() ([]*entity.Sale, error) {
	query := `
		SELECT id, sale_date, total_amount, status_id, created_at, updated_at
		FROM sales ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		if err := rows.Scan(&s.ID, &s.SaleDate, &s.TotalAmount, &s.StatusID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// UpdateStatus cambia el estado de una venta.
func (r *SaleRepo) UpdateStatus(saleID, statusID string) error {
	query := `UPDATE sales SET status_id = $2, updated_at = now() WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, saleID, statusID)
	if err != nil {
		return fmt.Errorf("update sale status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una venta; sale_details cae en cascada por FK.
func (r *SaleRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
