package store

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const tokenCollection = "FCM_Data"

// TokenStore maintains the FCM_Data side table keyed by person document id.
type TokenStore interface {
	Save(ctx context.Context, personID string, entry TokenEntry) error
	Delete(ctx context.Context, personID string) error
	// FindByUID resolves the token entry of a signed-in uid. Returns
	// ErrNotFound when no device is registered for it.
	FindByUID(ctx context.Context, uid string) (TokenEntry, error)
}

type firestoreTokens struct {
	fs *firestore.Client
}

// NewTokenStore returns the firestore-backed TokenStore.
func NewTokenStore(fs *firestore.Client) TokenStore {
	return &firestoreTokens{fs: fs}
}

func (s *firestoreTokens) Save(ctx context.Context, personID string, entry TokenEntry) error {
	_, err := s.fs.Collection(tokenCollection).Doc(personID).Set(ctx, entry)
	return err
}

func (s *firestoreTokens) Delete(ctx context.Context, personID string) error {
	_, err := s.fs.Collection(tokenCollection).Doc(personID).Delete(ctx)
	return err
}

func (s *firestoreTokens) FindByUID(ctx context.Context, uid string) (TokenEntry, error) {
	iter := s.fs.Collection(tokenCollection).Where("uid", "==", uid).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err == iterator.Done {
		return TokenEntry{}, ErrNotFound
	}
	if err != nil {
		return TokenEntry{}, err
	}

	var entry TokenEntry
	if err := snap.DataTo(&entry); err != nil {
		return TokenEntry{}, err
	}
	return entry, nil
}
