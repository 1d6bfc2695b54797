package sales

import (
	"context"

	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios
// atados a esa tx. Garantiza atomicidad para la creación de ventas: si fn retorna
// error se hace Rollback y no queda ninguna fila de venta ni de detalle.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		statusRepo repository.SaleStatusRepository,
	) error) error
}

// ReceiptLine una línea del recibo con los datos del producto ya resueltos.
type ReceiptLine struct {
	Detail      *entity.SaleDetail
	ProductName string
	ProductCode string
}

// ReceiptGenerator genera la representación PDF de una venta.
type ReceiptGenerator interface {
	GenerateReceipt(ctx context.Context, sale *entity.Sale, status *entity.SaleStatus, lines []ReceiptLine) ([]byte, error)
}
