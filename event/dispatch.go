// Package event connects the external trigger sources (record writes and
// timers) to the handlers through an explicit dispatch table.
package event

import (
	"context"

	"cloud.google.com/go/firestore"
	log "github.com/sirupsen/logrus"
)

// Kind classifies a document write.
type Kind string

const (
	Created Kind = "create"
	Updated Kind = "update"
	Deleted Kind = "delete"
)

// DocumentEvent identifies one trigger: a record source plus a write kind.
type DocumentEvent struct {
	Source string
	Kind   Kind
}

// Document carries the states of a changed record. Before is nil on create,
// After is nil on delete.
type Document struct {
	ID     string
	Before *firestore.DocumentSnapshot
	After  *firestore.DocumentSnapshot
}

// DocumentFunc handles one dispatched document write.
type DocumentFunc func(ctx context.Context, doc Document) error

// Registry is the dispatch table. Handler errors are logged and swallowed
// here; one failed invocation never affects a sibling trigger.
type Registry struct {
	bindings map[DocumentEvent]DocumentFunc
}

// NewRegistry returns an empty dispatch table.
func NewRegistry() *Registry {
	return &Registry{bindings: make(map[DocumentEvent]DocumentFunc)}
}

// Register binds a handler. Registering the same event again replaces the
// earlier binding.
func (r *Registry) Register(ev DocumentEvent, fn DocumentFunc) {
	r.bindings[ev] = fn
}

// Dispatch routes one document write to its handler. Events without a
// binding are dropped silently.
func (r *Registry) Dispatch(ctx context.Context, ev DocumentEvent, doc Document) {
	fn, ok := r.bindings[ev]
	if !ok {
		return
	}
	if err := fn(ctx, doc); err != nil {
		log.Errorf("%s %s handler failed for %s: %s", ev.Source, ev.Kind, doc.ID, err)
	}
}
