package dto

import "time"

// CreateProductRequest entrada para alta de producto. Precio y stock admiten número o texto.
type CreateProductRequest struct {
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Precio      Value  `json:"precio"`
	Categoria   string `json:"categoria"`
	ImagenURL   string `json:"imagen_url"`
	Colores     Value  `json:"colores"`
	Tamanos     Value  `json:"tamanos"`
	Stock       Value  `json:"stock"`
}

// UpdateProductRequest PATCH parcial: solo se aplican las claves presentes.
// Las claves de oferta ausentes nunca limpian la oferta existente.
type UpdateProductRequest struct {
	Nombre         Value `json:"nombre"`
	Descripcion    Value `json:"descripcion"`
	Precio         Value `json:"precio"`
	Categoria      Value `json:"categoria"`
	ImagenURL      Value `json:"imagen_url"`
	Colores        Value `json:"colores"`
	Tamanos        Value `json:"tamanos"`
	Stock          Value `json:"stock"`
	Activo         Value `json:"activo"`
	OfertaTipo     Value `json:"oferta_tipo"`
	OfertaValor    Value `json:"oferta_valor"`
	OfertaEtiqueta Value `json:"oferta_etiqueta"`
}

// HasPromotion indica si el PATCH trae alguna clave de oferta.
func (r UpdateProductRequest) HasPromotion() bool {
	return r.OfertaTipo.Present() || r.OfertaValor.Present() || r.OfertaEtiqueta.Present()
}

// SetStockRequest cuerpo de PATCH /api/productos/:id/stock.
type SetStockRequest struct {
	Stock Value `json:"stock"`
}

// SetPromotionRequest cuerpo de PATCH /api/productos/:id/oferta.
type SetPromotionRequest struct {
	OfertaTipo     string `json:"oferta_tipo"`
	OfertaValor    Value  `json:"oferta_valor"`
	OfertaEtiqueta string `json:"oferta_etiqueta"`
}

// ProductResponse salida de un producto. oferta_activa y oferta_texto se derivan de la oferta.
type ProductResponse struct {
	ID             int64     `json:"id"`
	Nombre         string    `json:"nombre"`
	Descripcion    string    `json:"descripcion"`
	Precio         float64   `json:"precio"`
	PrecioFinal    float64   `json:"precio_final"`
	Categoria      string    `json:"categoria"`
	ImagenURL      string    `json:"imagen_url"`
	Colores        []string  `json:"colores"`
	Tamanos        []string  `json:"tamanos"`
	Stock          int       `json:"stock"`
	Activo         bool      `json:"activo"`
	OfertaTipo     *string   `json:"oferta_tipo"`
	OfertaValor    *float64  `json:"oferta_valor"`
	OfertaEtiqueta string    `json:"oferta_etiqueta"`
	OfertaActiva   bool      `json:"oferta_activa"`
	OfertaTexto    string    `json:"oferta_texto"`
	CreadoEn       time.Time `json:"creado_en"`
	ActualizadoEn  time.Time `json:"actualizado_en"`
}
