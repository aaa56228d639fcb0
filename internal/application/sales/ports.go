package sales

import (
	"context"

	"github.com/jhoicas/punto-bazar-api/internal/domain/repository"
)

// TxRepos repositorios atados a la misma transacción.
type TxRepos struct {
	Products  repository.ProductRepository
	Customers repository.CustomerRepository
	Resellers repository.ResellerRepository
	Sales     repository.SaleRepository
}

// TxRunner ejecuta fn dentro de una transacción: Commit si fn devuelve nil, Rollback si no.
// Dentro de fn, ProductRepository.DecrementStock falla sin abortar la transacción completa
// (savepoint por ítem en Postgres).
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(repos TxRepos) error) error
}
