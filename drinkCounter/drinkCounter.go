// Package drinkCounter accumulates drink sales into the shared counter
// document whenever a sale record is created.
package drinkCounter

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/walhallaapp/functions/store"
)

// Handler applies freshly written drink sales to the counters.
type Handler struct {
	counters store.CounterStore
}

// NewHandler constructs the handler over the given counter store.
func NewHandler(counters store.CounterStore) *Handler {
	return &Handler{counters: counters}
}

// OnCreate applies one drink sale. Regular sales add income and unit count,
// the restock sentinel adds an expense instead.
func (h *Handler) OnCreate(ctx context.Context, sale store.DrinkSale) error {
	if sale.UID == store.RestockUID {
		expense := sale.Amount * sale.Price
		if err := h.counters.AddExpense(ctx, expense); err != nil {
			log.Errorf("unable to add expense of %.2f: %s", expense, err)
			return err
		}
		return nil
	}

	income := sale.Amount * sale.Price
	if err := h.counters.AddSale(ctx, income, sale.Amount); err != nil {
		log.Errorf("unable to add sale of %.2f: %s", income, err)
		return err
	}
	return nil
}
