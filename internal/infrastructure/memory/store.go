package memory

import (
	"sync"

	"github.com/jhoicas/punto-bazar-api/internal/domain/entity"
)

// Store colecciones en memoria del proceso. Vida = vida del proceso.
// Los ids salen de contadores propios de cada colección, nunca de max(id)+1.
type Store struct {
	mu sync.Mutex
	// txMu serializa RunInTx; las operaciones sueltas solo toman mu.
	txMu sync.Mutex

	resellers []*entity.Reseller
	campaigns []*entity.Campaign
	products  []*entity.Product
	customers []*entity.Customer
	sales     []*entity.Sale

	nextReseller int64
	nextCampaign int64
	nextProduct  int64
	nextCustomer int64
	nextSale     int64
}

// NewStore crea un almacén vacío; todos los ids arrancan en 1.
func NewStore() *Store {
	return &Store{
		nextReseller: 1,
		nextCampaign: 1,
		nextProduct:  1,
		nextCustomer: 1,
		nextSale:     1,
	}
}

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	c.Colors = append([]string(nil), p.Colors...)
	c.Sizes = append([]string(nil), p.Sizes...)
	return &c
}

func cloneSale(s *entity.Sale) *entity.Sale {
	c := *s
	c.Items = append([]entity.SaleItem(nil), s.Items...)
	if s.ResellerID != nil {
		v := *s.ResellerID
		c.ResellerID = &v
	}
	if s.CustomerID != nil {
		v := *s.CustomerID
		c.CustomerID = &v
	}
	if s.ProductID != nil {
		v := *s.ProductID
		c.ProductID = &v
	}
	return &c
}

func indexOf[T any](list []*T, id int64, idOf func(*T) int64) int {
	for i, x := range list {
		if idOf(x) == id {
			return i
		}
	}
	return -1
}
