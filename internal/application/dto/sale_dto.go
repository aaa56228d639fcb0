package dto

import "time"

// SaleItemRequest línea de venta (forma actual).
type SaleItemRequest struct {
	ProductoID Value `json:"producto_id"`
	Cantidad   Value `json:"cantidad"`
}

// CreateSaleRequest entrada de POST /api/ventas. Admite items o la forma heredada
// producto_id + cantidad_producto; total explícito positivo gana sobre el calculado.
type CreateSaleRequest struct {
	RevendedorID       Value             `json:"revendedor_id"`
	RevendedorNombre   string            `json:"revendedor_nombre"`
	Fecha              string            `json:"fecha"`
	Total              Value             `json:"total"`
	ComisionPorcentaje Value             `json:"comision_porcentaje"`
	ClienteID          Value             `json:"cliente_id"`
	ClienteTexto       string            `json:"cliente_texto"`
	ProductoID         Value             `json:"producto_id"`
	CantidadProducto   Value             `json:"cantidad_producto"`
	Items              []SaleItemRequest `json:"items"`
	Detalle            string            `json:"detalle"`
}

// SaleItemResponse línea de venta con precio efectivo al momento de vender.
type SaleItemResponse struct {
	ProductoID     int64   `json:"producto_id"`
	ProductoNombre string  `json:"producto_nombre"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
	Subtotal       float64 `json:"subtotal"`
}

// SaleResponse salida de una venta.
type SaleResponse struct {
	ID                 int64              `json:"id"`
	RevendedorID       *int64             `json:"revendedor_id"`
	RevendedorNombre   string             `json:"revendedor_nombre"`
	Fecha              string             `json:"fecha"`
	Total              float64            `json:"total"`
	ComisionPorcentaje float64            `json:"comision_porcentaje"`
	ComisionCalculada  float64            `json:"comision_calculada"`
	ClienteID          *int64             `json:"cliente_id"`
	Cliente            string             `json:"cliente"`
	Detalle            string             `json:"detalle"`
	ProductoID         *int64             `json:"producto_id"`
	CantidadProducto   int                `json:"cantidad_producto"`
	Items              []SaleItemResponse `json:"items"`
	CreadaEn           time.Time          `json:"creada_en"`
}
