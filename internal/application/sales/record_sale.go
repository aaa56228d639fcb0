package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/punto-bazar-api/internal/application/dto"
	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
)

// RecordSaleUseCase registra una venta: resuelve cliente, calcula total con precios vigentes,
// descuenta stock y persiste el registro, todo en una transacción.
type RecordSaleUseCase struct {
	tx  TxRunner
	log zerolog.Logger
	now func() time.Time
}

// NewRecordSaleUseCase construye el caso de uso.
func NewRecordSaleUseCase(tx TxRunner, log zerolog.Logger) *RecordSaleUseCase {
	return &RecordSaleUseCase{tx: tx, log: log, now: time.Now}
}

type saleLine struct {
	productID int64
	quantity  int
}

// Execute registra la venta y la devuelve. No valida contra stock disponible: el stock
// se descuenta con piso en 0 y un fallo al descontar un ítem se loguea sin abortar la venta.
func (uc *RecordSaleUseCase) Execute(ctx context.Context, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	now := uc.now().UTC()
	var sale *entity.Sale
	err := uc.tx.RunInTx(ctx, func(repos TxRepos) error {
		s, err := uc.record(ctx, repos, in, now)
		if err != nil {
			return err
		}
		sale = s
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToSaleResponse(sale), nil
}

func (uc *RecordSaleUseCase) record(ctx context.Context, repos TxRepos, in dto.CreateSaleRequest, now time.Time) (*entity.Sale, error) {
	sale := &entity.Sale{
		ResellerID:      in.RevendedorID.OptionalID(),
		ResellerName:    in.RevendedorNombre,
		Date:            in.Fecha,
		Detail:          in.Detalle,
		ProductID:       in.ProductoID.OptionalID(),
		ProductQuantity: in.CantidadProducto.Int(),
		Items:           []entity.SaleItem{},
		CreatedAt:       now,
	}
	if sale.Date == "" {
		sale.Date = now.Format("2006-01-02")
	}

	if sale.ResellerID != nil && sale.ResellerName == "" {
		r, err := repos.Resellers.GetByID(ctx, *sale.ResellerID)
		if err != nil {
			return nil, fmt.Errorf("venta: obtener revendedor: %w", err)
		}
		if r != nil {
			sale.ResellerName = r.Name
		}
	}

	// 1. Cliente
	if err := resolveCustomer(ctx, repos, in, sale); err != nil {
		return nil, err
	}

	// 2. Total con precio efectivo; ids inexistentes suman 0
	computed := decimal.Zero
	resolved := make([]saleLine, 0)
	for _, line := range saleLines(in) {
		item := entity.SaleItem{ProductID: line.productID, Quantity: line.quantity}
		p, err := repos.Products.GetByID(ctx, line.productID)
		if err != nil {
			return nil, fmt.Errorf("venta: obtener producto %d: %w", line.productID, err)
		}
		if p != nil {
			item.ProductName = p.Name
			item.UnitPrice = p.EffectivePrice()
			item.Subtotal = item.UnitPrice.Mul(decimal.NewFromInt(int64(line.quantity)))
			computed = computed.Add(item.Subtotal)
			resolved = append(resolved, line)
		}
		sale.Items = append(sale.Items, item)
	}
	sale.Total = computed
	if explicit := in.Total.Decimal(); explicit.IsPositive() {
		sale.Total = explicit
	}

	// 3. Stock, best-effort por ítem
	for _, line := range resolved {
		if _, err := repos.Products.DecrementStock(ctx, line.productID, line.quantity); err != nil {
			uc.log.Warn().Err(err).
				Int64("producto_id", line.productID).
				Int("cantidad", line.quantity).
				Msg("no se pudo descontar stock; la venta sigue")
		}
	}

	// 4. Comisión
	sale.CommissionPercentage = in.ComisionPorcentaje.Decimal()
	sale.Commission = entity.CommissionFor(sale.Total, sale.CommissionPercentage)

	// 5. Persistir
	if err := repos.Sales.Create(ctx, sale); err != nil {
		return nil, fmt.Errorf("venta: guardar: %w", err)
	}
	return sale, nil
}

// saleLines ítems con cantidad positiva; sin items cae a la forma heredada producto_id + cantidad_producto.
func saleLines(in dto.CreateSaleRequest) []saleLine {
	if len(in.Items) > 0 {
		out := make([]saleLine, 0, len(in.Items))
		for _, it := range in.Items {
			id := it.ProductoID.OptionalID()
			qty := it.Cantidad.Int()
			if id == nil || qty <= 0 {
				continue
			}
			out = append(out, saleLine{productID: *id, quantity: qty})
		}
		return out
	}
	id := in.ProductoID.OptionalID()
	qty := in.CantidadProducto.Int()
	if id == nil || qty <= 0 {
		return nil
	}
	return []saleLine{{productID: *id, quantity: qty}}
}

// resolveCustomer id explícito: copia el nombre actual. Solo texto: crea el cliente al vuelo.
func resolveCustomer(ctx context.Context, repos TxRepos, in dto.CreateSaleRequest, sale *entity.Sale) error {
	sale.CustomerName = in.ClienteTexto
	if id := in.ClienteID.OptionalID(); id != nil {
		sale.CustomerID = id
		c, err := repos.Customers.GetByID(ctx, *id)
		if err != nil {
			return fmt.Errorf("venta: obtener cliente: %w", err)
		}
		if c != nil {
			sale.CustomerName = c.Name
		}
		return nil
	}
	if in.ClienteTexto == "" {
		return nil
	}
	c := &entity.Customer{Name: in.ClienteTexto, Notes: entity.NotesCreatedFromSale}
	if err := repos.Customers.Create(ctx, c); err != nil {
		return fmt.Errorf("venta: crear cliente: %w", err)
	}
	sale.CustomerID = &c.ID
	return nil
}

// ToSaleResponse mapea la venta a su salida HTTP.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductoID:     it.ProductID,
			ProductoNombre: it.ProductName,
			Cantidad:       it.Quantity,
			PrecioUnitario: it.UnitPrice.InexactFloat64(),
			Subtotal:       it.Subtotal.InexactFloat64(),
		})
	}
	return &dto.SaleResponse{
		ID:                 s.ID,
		RevendedorID:       s.ResellerID,
		RevendedorNombre:   s.ResellerName,
		Fecha:              s.Date,
		Total:              s.Total.InexactFloat64(),
		ComisionPorcentaje: s.CommissionPercentage.InexactFloat64(),
		ComisionCalculada:  s.Commission.InexactFloat64(),
		ClienteID:          s.CustomerID,
		Cliente:            s.CustomerName,
		Detalle:            s.Detail,
		ProductoID:         s.ProductID,
		CantidadProducto:   s.ProductQuantity,
		Items:              items,
		CreadaEn:           s.CreatedAt,
	}
}
