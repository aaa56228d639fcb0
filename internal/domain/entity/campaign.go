package entity

import "time"

// Campaign mensaje de marketing para la portada. Como máximo una activa a la vez.
type Campaign struct {
	ID        int64
	Title     string
	Text      string
	Active    bool
	CreatedAt time.Time
}

// NewerThan orden de "campaña del día": creación descendente, empate por id descendente.
func (c *Campaign) NewerThan(o *Campaign) bool {
	if !c.CreatedAt.Equal(o.CreatedAt) {
		return c.CreatedAt.After(o.CreatedAt)
	}
	return c.ID > o.ID
}
