package store

import (
	"context"

	"cloud.google.com/go/firestore"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
)

const personCollection = "Person"

// PersonStore queries member records.
type PersonStore interface {
	// WithNegativeBalance returns every person whose balance is below zero.
	WithNegativeBalance(ctx context.Context) ([]Person, error)
}

type firestorePersons struct {
	fs *firestore.Client
}

// NewPersonStore returns the firestore-backed PersonStore.
func NewPersonStore(fs *firestore.Client) PersonStore {
	return &firestorePersons{fs: fs}
}

func (s *firestorePersons) WithNegativeBalance(ctx context.Context) ([]Person, error) {
	iter := s.fs.Collection(personCollection).Where("balance", "<", 0).Documents(ctx)
	defer iter.Stop()

	var persons []Person
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}

		var p Person
		if err := snap.DataTo(&p); err != nil {
			// Malformed member records are skipped, not fatal for the scan.
			log.Errorf("unable to unmarshal person %s: %s", snap.Ref.ID, err)
			continue
		}
		persons = append(persons, p)
	}
	return persons, nil
}
