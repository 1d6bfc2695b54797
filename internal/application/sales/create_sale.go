package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

const saleDateLayout = "2006-01-02"

// Valor mínimo para unit_price y subtotal (0.01).
var minAmount = decimal.New(1, -2)

// CreateSale crea la venta de forma atómica: resuelve el estado PENDING, valida cada
// producto, descuenta stock con un UPDATE condicional (stock = stock - qty WHERE
// stock >= qty), calcula el total como suma de subtotales y persiste cabecera y
// detalles. Cualquier fallo dentro de la tx hace Rollback completo.
func (uc *SaleUseCase) CreateSale(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	// Validación rápida, antes de abrir transacción.
	if in.SaleDate == "" || len(in.Details) == 0 {
		return nil, domain.ErrInvalidInput
	}
	saleDate, err := time.Parse(saleDateLayout, in.SaleDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	for _, d := range in.Details {
		if d.ProductID == "" || d.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
		if d.UnitPrice.LessThan(minAmount) || d.Subtotal.LessThan(minAmount) {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	saleID := uuid.New().String()
	var sale *entity.Sale
	var details []*entity.SaleDetail
	var pending *entity.SaleStatus

	err = uc.txRunner.Run(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		statusRepo repository.SaleStatusRepository,
	) error {
		// Dato maestro: si PENDING no está sembrado es un error de configuración
		// del servidor, no del cliente.
		pending, err = statusRepo.GetByCode(entity.SaleStatusPending)
		if err != nil {
			return err
		}
		if pending == nil {
			return domain.ErrPendingNotSeeded
		}

		// Validar producto y descontar stock por línea. El UPDATE condicional
		// cierra la carrera check-then-act entre ventas concurrentes.
		var total decimal.Decimal
		for _, d := range in.Details {
			product, err := productRepo.GetByID(d.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return fmt.Errorf("%w: %s", domain.ErrProductNotFound, d.ProductID)
			}
			ok, err := productRepo.DecrementStock(d.ProductID, d.Quantity)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w para %s", domain.ErrInsufficientStock, product.Name)
			}
			total = total.Add(d.Subtotal)
		}

		sale = &entity.Sale{
			ID:          saleID,
			SaleDate:    saleDate,
			TotalAmount: total,
			StatusID:    pending.ID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := saleRepo.Create(sale); err != nil {
			return err
		}
		for _, d := range in.Details {
			detail := &entity.SaleDetail{
				ID:        uuid.New().String(),
				SaleID:    saleID,
				ProductID: d.ProductID,
				Quantity:  d.Quantity,
				UnitPrice: d.UnitPrice,
				Subtotal:  d.Subtotal,
			}
			if err := saleRepo.CreateDetail(detail); err != nil {
				return err
			}
			details = append(details, detail)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return toSaleResponse(sale, pending.Code, details), nil
}
