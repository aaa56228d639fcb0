package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItem línea de venta. UnitPrice y ProductName son la foto al momento de vender.
type SaleItem struct {
	ProductID   int64
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// Sale venta registrada. Inmutable: no hay update ni delete.
// Las referencias a revendedor y cliente son por id, con el nombre copiado al vender.
type Sale struct {
	ID                   int64
	ResellerID           *int64
	ResellerName         string
	Date                 string // YYYY-MM-DD
	Total                decimal.Decimal
	CommissionPercentage decimal.Decimal
	Commission           decimal.Decimal
	CustomerID           *int64
	CustomerName         string
	Detail               string
	ProductID            *int64 // forma heredada: un solo producto
	ProductQuantity      int
	Items                []SaleItem
	CreatedAt            time.Time
}

// CommissionFor comisión redondeada al entero (half away from zero): round(total * pct / 100).
func CommissionFor(total, pct decimal.Decimal) decimal.Decimal {
	return total.Mul(pct).Div(decimal.NewFromInt(100)).Round(0)
}
