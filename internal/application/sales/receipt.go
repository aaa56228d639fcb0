package sales

import (
	"context"
	"fmt"

	"github.com/jhoicas/punto-bazar-api/internal/application/ports"
	"github.com/jhoicas/punto-bazar-api/internal/domain"
	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una venta ya registrada.
type ReceiptUseCase struct {
	repo      repository.SaleRepository
	generator ports.ReceiptPDFGenerator
	shopName  string
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(repo repository.SaleRepository, generator ports.ReceiptPDFGenerator, shopName string) *ReceiptUseCase {
	return &ReceiptUseCase{repo: repo, generator: generator, shopName: shopName}
}

// Download devuelve (pdfBytes, filename). domain.ErrNotFound si la venta no existe.
func (uc *ReceiptUseCase) Download(ctx context.Context, id int64) ([]byte, string, error) {
	sale, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err := uc.generator.GenerateSaleReceipt(ctx, uc.shopName, sale)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: generación fallida: %w", err)
	}
	return pdf, fmt.Sprintf("venta_%d.pdf", sale.ID), nil
}
