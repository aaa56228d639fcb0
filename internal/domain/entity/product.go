package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// PromotionType tipo de oferta sobre el precio de un producto.
type PromotionType string

// Tipos de oferta reconocidos por EffectivePrice. Otros valores se guardan pero no alteran el precio.
const (
	PromotionNone       PromotionType = ""
	PromotionPercentage PromotionType = "porcentaje"
	PromotionFixedPrice PromotionType = "precio_fijo"
)

var promotionAliases = map[string]PromotionType{
	"porcentaje":  PromotionPercentage,
	"percentage":  PromotionPercentage,
	"percent":     PromotionPercentage,
	"%":           PromotionPercentage,
	"precio_fijo": PromotionFixedPrice,
	"precio-fijo": PromotionFixedPrice,
	"fixed-price": PromotionFixedPrice,
	"fixed_price": PromotionFixedPrice,
	"fijo":        PromotionFixedPrice,
}

// ParsePromotionType normaliza el tipo recibido por API (minúsculas, alias en inglés).
func ParsePromotionType(s string) PromotionType {
	key := strings.ToLower(strings.TrimSpace(s))
	if t, ok := promotionAliases[key]; ok {
		return t
	}
	return PromotionType(key)
}

// Promotion oferta vigente. El valor cero equivale a "sin oferta".
type Promotion struct {
	Type  PromotionType
	Value decimal.Decimal // porcentaje (0-100) o precio final según Type
	Label string
}

// NewPromotion normaliza una oferta: tipo vacío o valor <= 0 es la oferta limpia, nunca una degenerada.
func NewPromotion(t PromotionType, value decimal.Decimal, label string) Promotion {
	if t == PromotionNone || !value.IsPositive() {
		return Promotion{}
	}
	return Promotion{Type: t, Value: value, Label: label}
}

// IsSet indica si hay una oferta normalizada no vacía.
func (p Promotion) IsSet() bool {
	return p.Type != PromotionNone && p.Value.IsPositive()
}

// Product producto del catálogo con stock y oferta.
type Product struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal // precio base
	Category    string
	ImageURL    string
	Colors      []string
	Sizes       []string
	Stock       int
	Active      bool
	Promotion   Promotion
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAvailable producto visible en el catálogo público: activo y con stock.
func (p *Product) IsAvailable() bool {
	return p.Active && p.Stock > 0
}

// OnPromotion producto con oferta vigente.
func (p *Product) OnPromotion() bool {
	return p.Promotion.IsSet()
}

// EffectivePrice precio base luego de aplicar la oferta. Nunca es negativo.
// Porcentaje: price * (1 - value/100); precio fijo: value. Otros tipos no alteran el precio.
func (p *Product) EffectivePrice() decimal.Decimal {
	price := p.Price
	if p.Promotion.IsSet() {
		switch p.Promotion.Type {
		case PromotionPercentage:
			factor := decimal.NewFromInt(1).Sub(p.Promotion.Value.Div(decimal.NewFromInt(100)))
			price = p.Price.Mul(factor)
		case PromotionFixedPrice:
			price = p.Promotion.Value
		}
	}
	if price.IsNegative() {
		return decimal.Zero
	}
	return price
}

// DecrementStock descuenta qty del stock sin bajar de 0.
func (p *Product) DecrementStock(qty int) {
	p.Stock -= qty
	if p.Stock < 0 {
		p.Stock = 0
	}
}
