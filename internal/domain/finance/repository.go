package finance

import "context"

// TransactionRepository exposes the bookkeeping log. The statement builders
// only need read access; Create exists for the recording boundary.
type TransactionRepository interface {
	ListAll(ctx context.Context) ([]Transaction, error)
	Create(ctx context.Context, tx Transaction) (Transaction, error)
}
