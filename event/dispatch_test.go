package event

import (
	"context"
	"errors"
	"testing"
)

func TestRegistryDispatchesBoundEvent(t *testing.T) {
	r := NewRegistry()

	var got Document
	calls := 0
	r.Register(DocumentEvent{Source: "News", Kind: Created}, func(_ context.Context, doc Document) error {
		calls++
		got = doc
		return nil
	})

	r.Dispatch(context.Background(), DocumentEvent{Source: "News", Kind: Created}, Document{ID: "n1"})

	if calls != 1 {
		t.Fatalf("want one invocation, got %d", calls)
	}
	if got.ID != "n1" {
		t.Fatalf("document: got %+v", got)
	}
}

func TestRegistryIgnoresUnboundEvent(t *testing.T) {
	r := NewRegistry()
	// Must not panic.
	r.Dispatch(context.Background(), DocumentEvent{Source: "News", Kind: Deleted}, Document{ID: "n1"})
}

func TestRegistrySwallowsHandlerError(t *testing.T) {
	r := NewRegistry()
	r.Register(DocumentEvent{Source: "Person", Kind: Updated}, func(context.Context, Document) error {
		return errors.New("boom")
	})

	// Errors are logged, not propagated.
	r.Dispatch(context.Background(), DocumentEvent{Source: "Person", Kind: Updated}, Document{ID: "p1"})
}

func TestRegistryReplacesBinding(t *testing.T) {
	r := NewRegistry()
	ev := DocumentEvent{Source: "News", Kind: Created}

	first, second := 0, 0
	r.Register(ev, func(context.Context, Document) error { first++; return nil })
	r.Register(ev, func(context.Context, Document) error { second++; return nil })

	r.Dispatch(context.Background(), ev, Document{})
	if first != 0 || second != 1 {
		t.Fatalf("later binding must win: first=%d second=%d", first, second)
	}
}
