package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

const saleColumns = `id, reseller_id, reseller_name, sale_date, total, commission_percentage, commission,
	customer_id, customer_name, detail, product_id, product_quantity, items, created_at`

// SaleRepo ventas append-only; los ítems se guardan como JSONB con la foto de precio.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// saleItemJSON forma persistida de entity.SaleItem.
type saleItemJSON struct {
	ProductID   int64           `json:"producto_id"`
	ProductName string          `json:"producto_nombre"`
	Quantity    int             `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

func encodeItems(items []entity.SaleItem) ([]byte, error) {
	out := make([]saleItemJSON, 0, len(items))
	for _, it := range items {
		out = append(out, saleItemJSON(it))
	}
	return json.Marshal(out)
}

func decodeItems(raw []byte) ([]entity.SaleItem, error) {
	var in []saleItemJSON
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &in); err != nil {
			return nil, err
		}
	}
	out := make([]entity.SaleItem, 0, len(in))
	for _, it := range in {
		out = append(out, entity.SaleItem(it))
	}
	return out, nil
}

func scanSale(row rowScanner) (*entity.Sale, error) {
	var s entity.Sale
	var items []byte
	err := row.Scan(
		&s.ID, &s.ResellerID, &s.ResellerName, &s.Date, &s.Total, &s.CommissionPercentage, &s.Commission,
		&s.CustomerID, &s.CustomerName, &s.Detail, &s.ProductID, &s.ProductQuantity, &items, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if s.Items, err = decodeItems(items); err != nil {
		return nil, fmt.Errorf("decode sale items: %w", err)
	}
	return &s, nil
}

func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	items, err := encodeItems(s.Items)
	if err != nil {
		return fmt.Errorf("encode sale items: %w", err)
	}
	err = r.q.QueryRow(ctx, `
		INSERT INTO sales (reseller_id, reseller_name, sale_date, total, commission_percentage, commission,
			customer_id, customer_name, detail, product_id, product_quantity, items, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`,
		s.ResellerID, s.ResellerName, s.Date, s.Total, s.CommissionPercentage, s.Commission,
		s.CustomerID, s.CustomerName, s.Detail, s.ProductID, s.ProductQuantity, items, s.CreatedAt,
	).Scan(&s.ID)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	s, err := scanSale(r.q.QueryRow(ctx, `SELECT `+saleColumns+` FROM sales WHERE id = $1`, id))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	return s, nil
}

func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, `SELECT `+saleColumns+` FROM sales ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		s, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}
