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

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación del puerto CategoryRepository sobre PostgreSQL (usable con pool o tx).
type CategoryRepo struct {
	q Querier
}

// NewCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCategoryRepository(q Querier) *CategoryRepo {
	return &CategoryRepo{q: q}
}

// Create persiste una nueva categoría.
func (r *CategoryRepo) Create(category *entity.ProductCategory) error {
	query := `
		INSERT INTO product_categories (id, code, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Code, category.Name, category.Description,
		category.CreatedAt, category.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// GetByID obtiene una categoría por ID.
func (r *CategoryRepo) GetByID(id string) (*entity.ProductCategory, error) {
	query := `
		SELECT id, code, name, COALESCE(description, ''), created_at, updated_at
		FROM product_categories WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByCode obtiene una categoría por código único.
func (r *CategoryRepo) GetByCode(code string) (*entity.ProductCategory, error) {
	query := `
		SELECT id, code, name, COALESCE(description, ''), created_at, updated_at
		FROM product_categories WHERE code = $1`
	return r.scanOne(query, code)
}

func (r *CategoryRepo) scanOne(query string, arg any) (*entity.ProductCategory, error) {
	var c entity.ProductCategory
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&c.ID, &c.Code, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get category: %w", err)
	}
	return &c, nil
}

// List lista todas las categorías.
func (r *CategoryRepo) List() ([]*entity.ProductCategory, error) {
	query := `
		SELECT id, code, name, COALESCE(description, ''), created_at, updated_at
		FROM product_categories ORDER BY created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductCategory
	for rows.Next() {
		var c entity.ProductCategory
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza nombre y descripción de una categoría existente.
func (r *CategoryRepo) Update(category *entity.ProductCategory) error {
	query := `
		UPDATE product_categories SET name = $2, description = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		category.ID, category.Name, category.Description, category.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// Delete elimina una categoría. La FK RESTRICT de products.category_id
// convierte el intento de eliminar una categoría referenciada en ErrConflict.
func (r *CategoryRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM product_categories WHERE id = $1`, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrConflict
		}
		return fmt.Errorf("delete category: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
