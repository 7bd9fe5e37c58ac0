package store

import (
	"context"

	"firebase.google.com/go/db"
)

// CounterRef is the realtime database path of the drink counter singleton.
const CounterRef = "counter/drink"

// CounterStore accumulates drink sale totals. Implementations apply the
// increments atomically so concurrent sales cannot lose updates.
type CounterStore interface {
	// AddSale adds income and unit count for a regular sale.
	AddSale(ctx context.Context, income, count float64) error
	// AddExpense adds a restock expense.
	AddExpense(ctx context.Context, expense float64) error
}

type rtdbCounters struct {
	ref *db.Ref
}

// NewCounterStore returns a CounterStore over the counter/drink ref of the
// realtime database.
func NewCounterStore(client *db.Client) CounterStore {
	return &rtdbCounters{ref: client.NewRef(CounterRef)}
}

func (s *rtdbCounters) AddSale(ctx context.Context, income, count float64) error {
	return s.ref.Transaction(ctx, func(node db.TransactionNode) (interface{}, error) {
		var c Counters
		if err := node.Unmarshal(&c); err != nil {
			return nil, err
		}
		c.TotalIncome += income
		c.TotalCounter += count
		return c, nil
	})
}

func (s *rtdbCounters) AddExpense(ctx context.Context, expense float64) error {
	return s.ref.Transaction(ctx, func(node db.TransactionNode) (interface{}, error) {
		var c Counters
		if err := node.Unmarshal(&c); err != nil {
			return nil, err
		}
		c.TotalExpense += expense
		return c, nil
	})
}
