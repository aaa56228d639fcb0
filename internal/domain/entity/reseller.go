package entity

// Reseller revendedor independiente asociado al bazar (se le calcula comisión por venta).
type Reseller struct {
	ID              int64
	Name            string
	Phone           string
	Zone            string
	Active          bool
	AcceptsWhatsApp bool
}
