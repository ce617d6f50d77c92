package repositories

import "context"

// TxFn is a function that runs within a transaction
type TxFn func(ctx context.Context) error

// TransactionManager executes a function within a single database
// transaction. Used where a mutation and its audit record must commit as
// one logical unit (refinement insert + section content update).
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
