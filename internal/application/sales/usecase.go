package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/ventas-api/internal/application/dto"
	"github.com/jhoicas/ventas-api/internal/domain"
	"github.com/jhoicas/ventas-api/internal/domain/entity"
	"github.com/jhoicas/ventas-api/internal/domain/repository"
)

// SaleUseCase flujo de ventas: creación transaccional, consulta, cambio de estado,
// eliminación y recibo PDF.
type SaleUseCase struct {
	txRunner    TxRunner
	saleRepo    repository.SaleRepository
	productRepo repository.ProductRepository
	statusRepo  repository.SaleStatusRepository
	receipts    ReceiptGenerator
}

// NewSaleUseCase construye el caso de uso. receipts puede ser nil si no se expone el PDF.
func NewSaleUseCase(
	txRunner TxRunner,
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	statusRepo repository.SaleStatusRepository,
	receipts ReceiptGenerator,
) *SaleUseCase {
	return &SaleUseCase{
		txRunner:    txRunner,
		saleRepo:    saleRepo,
		productRepo: productRepo,
		statusRepo:  statusRepo,
		receipts:    receipts,
	}
}

// GetByID obtiene una venta con sus detalles. Retorna (nil, nil) si no existe.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return uc.assemble(sale)
}

// List lista todas las ventas, cada una con sus detalles.
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.saleRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, sale := range list {
		resp, err := uc.assemble(sale)
		if err != nil {
			return nil, err
		}
		items = append(items, *resp)
	}
	return items, nil
}

// UpdateStatus cambia el estado de la venta al código indicado. Cualquier código
// conocido se acepta como destino; uno desconocido es ErrStatusNotFound y la venta
// queda intacta.
func (uc *SaleUseCase) UpdateStatus(ctx context.Context, saleID, statusCode string) (*dto.SaleResponse, error) {
	if statusCode == "" {
		return nil, domain.ErrInvalidInput
	}
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	status, err := uc.statusRepo.GetByCode(statusCode)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrStatusNotFound, statusCode)
	}
	if err := uc.saleRepo.UpdateStatus(saleID, status.ID); err != nil {
		return nil, err
	}
	sale.StatusID = status.ID
	return uc.assemble(sale)
}

// Delete elimina una venta; los detalles caen en cascada.
func (uc *SaleUseCase) Delete(ctx context.Context, id string) error {
	return uc.saleRepo.Delete(id)
}

// ReceiptPDF genera el recibo PDF de una venta.
func (uc *SaleUseCase) ReceiptPDF(ctx context.Context, id string) ([]byte, error) {
	if uc.receipts == nil {
		return nil, domain.ErrNotFound
	}
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	status, err := uc.statusRepo.GetByID(sale.StatusID)
	if err != nil {
		return nil, err
	}
	details, err := uc.saleRepo.GetDetailsBySaleID(id)
	if err != nil {
		return nil, err
	}
	lines := make([]ReceiptLine, 0, len(details))
	for _, d := range details {
		line := ReceiptLine{Detail: d}
		if product, err := uc.productRepo.GetByID(d.ProductID); err == nil && product != nil {
			line.ProductName = product.Name
			line.ProductCode = product.Code
		}
		lines = append(lines, line)
	}
	return uc.receipts.GenerateReceipt(ctx, sale, status, lines)
}

// assemble arma la respuesta con detalles y código de estado.
func (uc *SaleUseCase) assemble(sale *entity.Sale) (*dto.SaleResponse, error) {
	details, err := uc.saleRepo.GetDetailsBySaleID(sale.ID)
	if err != nil {
		return nil, err
	}
	statusCode := ""
	if status, err := uc.statusRepo.GetByID(sale.StatusID); err == nil && status != nil {
		statusCode = status.Code
	}
	return toSaleResponse(sale, statusCode, details), nil
}

func toSaleResponse(sale *entity.Sale, statusCode string, details []*entity.SaleDetail) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:          sale.ID,
		SaleDate:    sale.SaleDate.Format(saleDateLayout),
		TotalAmount: sale.TotalAmount,
		StatusCode:  statusCode,
		Details:     make([]dto.SaleDetailResponse, 0, len(details)),
		CreatedAt:   sale.CreatedAt,
		UpdatedAt:   sale.UpdatedAt,
	}
	for _, d := range details {
		resp.Details = append(resp.Details, dto.SaleDetailResponse{
			ID:        d.ID,
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Subtotal:  d.Subtotal,
		})
	}
	return resp
}
