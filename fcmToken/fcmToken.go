// Package fcmToken keeps the FCM_Data token directory in sync with Person
// record writes.
package fcmToken

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/walhallaapp/functions/store"
)

// Handler mirrors Person writes into the token directory: one entry per
// signed-in person, removed when the person is deleted or signs out.
type Handler struct {
	tokens store.TokenStore
}

// NewHandler constructs the handler over the given token store.
func NewHandler(tokens store.TokenStore) *Handler {
	return &Handler{tokens: tokens}
}

// OnWrite synchronizes the directory entry for one person record. A nil
// before means the record was created, a nil after that it was deleted.
func (h *Handler) OnWrite(ctx context.Context, personID string, before, after *store.Person) error {
	switch {
	case before == nil && after == nil:
		return nil

	case after == nil:
		log.Infof("deleting token entry of %s %s", before.FirstName, before.LastName)
		if err := h.tokens.Delete(ctx, personID); err != nil {
			log.Errorf("removing the token entry for %s did not work: %s", personID, err)
			return err
		}
		return nil

	case after.UID == nil:
		// Signed out, the device must not receive member pushes anymore.
		if err := h.tokens.Delete(ctx, personID); err != nil {
			log.Errorf("removing the token entry for %s did not work: %s", personID, err)
			return err
		}
		return nil

	default:
		entry := store.TokenEntry{
			UID:       *after.UID,
			FirstName: after.FirstName,
			LastName:  after.LastName,
			FCMToken:  after.FCMToken,
		}
		if err := h.tokens.Save(ctx, personID, entry); err != nil {
			log.Errorf("writing the token entry for %s did not work: %s", personID, err)
			return err
		}
		return nil
	}
}
