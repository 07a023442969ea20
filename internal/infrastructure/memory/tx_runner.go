package memory

import (
	"context"

	"github.com/jhoicas/Finanzas-api/internal/domain/repository"
)

// TxRunner ejecuta fn sobre el mismo Store. Sin rollback: el adaptador en memoria no es transaccional.
type TxRunner struct {
	store repository.Store
}

func NewTxRunner(store repository.Store) *TxRunner {
	return &TxRunner{store: store}
}

func (r *TxRunner) Run(ctx context.Context, fn func(repository.Store) error) error {
	return fn(r.store)
}
