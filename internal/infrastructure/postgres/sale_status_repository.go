package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

var _ repository.SaleStatusRepository = (*SaleStatusRepo)(nil)

// SaleStatusRepo lectura del dato maestro sale_statuses (usable con pool o tx).
type SaleStatusRepo struct {
	q Querier
}

// NewSaleStatusRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleStatusRepository(q Querier) *SaleStatusRepo {
	return &SaleStatusRepo{q: q}
}

// GetByID obtiene un estado por ID.
func (r *SaleStatusRepo) GetByID(id string) (*entity.SaleStatus, error) {
	return r.scanOne(`
		SELECT id, code, name, COALESCE(description, '')
		FROM sale_statuses WHERE id = $1`, id)
}

// GetByCode obtiene un estado por código (PENDING, COMPLETED, etc).
func (r *SaleStatusRepo) GetByCode(code string) (*entity.SaleStatus, error) {
	return r.scanOne(`
		SELECT id, code, name, COALESCE(description, '')
		FROM sale_statuses WHERE code = $1`, code)
}

func (r *SaleStatusRepo) scanOne(query string, arg any) (*entity.SaleStatus, error) {
	var s entity.SaleStatus
	err := r.q.QueryRow(context.Background(), query, arg).Scan(&s.ID, &s.Code, &s.Name, &s.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale status: %w", err)
	}
	return &s, nil
}

// List lista todos los estados.
func (r *SaleStatusRepo) List() ([]*entity.SaleStatus, error) {
	rows, err := r.q.Query(context.Background(), `
		SELECT id, code, name, COALESCE(description, '')
		FROM sale_statuses ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list sale statuses: %w", err)
	}
	defer rows.Close()
	var list []*entity.SaleStatus
	for rows.Next() {
		var s entity.SaleStatus
		if err := rows.Scan(&s.ID, &s.Code, &s.Name, &s.Description); err != nil {
			return nil, fmt.Errorf("scan sale status: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
