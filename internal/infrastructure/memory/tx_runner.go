package memory

import (
	"context"

	"github.com/jhoicas/punto-bazar-api/internal/application/sales"
)

var _ sales.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las ventas sobre el Store. No hay rollback: lo escrito antes de un
// error queda aplicado. Las escrituras sueltas fuera de RunInTx no esperan a este lock.
type TxRunner struct {
	s *Store
}

// NewTxRunner construye el runner.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// RunInTx ejecuta fn con los repos del Store de a una venta por vez.
func (r *TxRunner) RunInTx(ctx context.Context, fn func(repos sales.TxRepos) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.txMu.Lock()
	defer r.s.txMu.Unlock()
	return fn(sales.TxRepos{
		Products:  NewProductRepository(r.s),
		Customers: NewCustomerRepository(r.s),
		Resellers: NewResellerRepository(r.s),
		Sales:     NewSaleRepository(r.s),
	})
}
