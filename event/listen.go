package event

import (
	"context"

	"cloud.google.com/go/firestore"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
)

// Listener feeds a firestore snapshot stream into the registry. It keeps
// the previous snapshot of every document so update dispatches carry a
// before state.
type Listener struct {
	registry *Registry
	source   string
	query    firestore.Query
	previous map[string]*firestore.DocumentSnapshot
}

// NewListener binds one query to the registry under the given source name.
func NewListener(registry *Registry, source string, query firestore.Query) *Listener {
	return &Listener{
		registry: registry,
		source:   source,
		query:    query,
		previous: make(map[string]*firestore.DocumentSnapshot),
	}
}

// Listen blocks until ctx is done, dispatching every observed write. The
// initial snapshot replays all existing documents; those are cached but not
// dispatched, they are not fresh writes.
func (l *Listener) Listen(ctx context.Context) {
	snapshots := l.query.Snapshots(ctx)
	defer snapshots.Stop()

	first := true
	for {
		snap, err := snapshots.Next()
		if err == iterator.Done {
			return
		}
		if err != nil {
			log.Errorf("snapshot stream for %s ended: %s", l.source, err)
			return
		}

		for _, change := range snap.Changes {
			id := change.Doc.Ref.ID
			switch change.Kind {
			case firestore.DocumentAdded:
				l.previous[id] = change.Doc
				if first {
					continue
				}
				l.registry.Dispatch(ctx,
					DocumentEvent{Source: l.source, Kind: Created},
					Document{ID: id, After: change.Doc})

			case firestore.DocumentModified:
				before := l.previous[id]
				l.previous[id] = change.Doc
				l.registry.Dispatch(ctx,
					DocumentEvent{Source: l.source, Kind: Updated},
					Document{ID: id, Before: before, After: change.Doc})

			case firestore.DocumentRemoved:
				before := l.previous[id]
				delete(l.previous, id)
				l.registry.Dispatch(ctx,
					DocumentEvent{Source: l.source, Kind: Deleted},
					Document{ID: id, Before: before})
			}
		}
		first = false
	}
}
