package repository

import "github.com/jhoicas/ventas-api/internal/domain/entity"

// SaleRepository define el puerto de persistencia para Sale y sus detalles.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	CreateDetail(detail *entity.SaleDetail) error
	GetByID(id string) (*entity.Sale, error)
	// GetDetailsBySaleID devuelve las líneas en orden de inserción.
	GetDetailsBySaleID(saleID string) ([]*entity.SaleDetail, error)
	List() ([]*entity.Sale, error)
	UpdateStatus(saleID, statusID string) error
	// Delete elimina la venta; los detalles caen en cascada (FK).
	Delete(id string) error
}

// SaleStatusRepository define el puerto de lectura para el dato maestro SaleStatus.
type SaleStatusRepository interface {
	GetByID(id string) (*entity.SaleStatus, error)
	GetByCode(code string) (*entity.SaleStatus, error)
	List() ([]*entity.SaleStatus, error)
}
