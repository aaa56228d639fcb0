package ports

import (
	"context"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
)

// ReceiptPDFGenerator genera el comprobante imprimible de una venta.
type ReceiptPDFGenerator interface {
	GenerateSaleReceipt(ctx context.Context, shopName string, sale *entity.Sale) ([]byte, error)
}
