package usecase

import (
	"context"
	"fmt"
	"log"
)

// Transaction runs a sequence of named operations and, when one fails,
// compensates the already-executed prefix in reverse order. Compensation
// i undoes operation i; operations without a registered compensation are
// skipped during rollback.
type Transaction struct {
	operations    []txStep
	compensations []txStep
}

type txStep struct {
	Name string
	Fn   func(context.Context) error
}

func NewTransaction() *Transaction {
	return &Transaction{}
}

func (t *Transaction) AddOperation(name string, fn func(context.Context) error) {
	t.operations = append(t.operations, txStep{name, fn})
}

func (t *Transaction) AddCompensation(name string, fn func(context.Context) error) {
	t.compensations = append(t.compensations, txStep{name, fn})
}

func (t *Transaction) Execute(ctx context.Context) error {
	for i, op := range t.operations {
		if err := op.Fn(ctx); err != nil {
			t.rollback(ctx, i)
			return fmt.Errorf("operation %q failed: %w (rolled back %d operations)", op.Name, err, i)
		}
	}
	return nil
}

func (t *Transaction) rollback(ctx context.Context, failedAtIndex int) {
	for i := failedAtIndex - 1; i >= 0; i-- {
		if i < len(t.compensations) {
			comp := t.compensations[i]
			if err := comp.Fn(ctx); err != nil {
				log.Printf("WARNING: compensation %q failed: %v (state may be inconsistent)", comp.Name, err)
			}
		}
	}
}
