// Package sendReminder broadcasts payment reminders to every member with a
// negative balance when the reminder flag flips to true.
package sendReminder

import (
	"context"
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"

	"github.com/walhallaapp/functions/push"
	"github.com/walhallaapp/functions/store"
)

// Handler runs the reminder broadcast workflow.
type Handler struct {
	persons store.PersonStore
	tokens  store.TokenStore
	trigger store.TriggerStore
	sender  push.Sender
}

// NewHandler constructs the handler over its collaborators.
func NewHandler(persons store.PersonStore, tokens store.TokenStore, trigger store.TriggerStore, sender push.Sender) *Handler {
	return &Handler{persons: persons, tokens: tokens, trigger: trigger, sender: sender}
}

// OnUpdate reacts to a write of the reminder flag. Only the false to true
// edge starts a broadcast. The flag is reset once the scan has settled, no
// matter how the individual sends went.
func (h *Handler) OnUpdate(ctx context.Context, before, after store.ReminderFlag) error {
	if !after.Send || before.Send {
		return nil
	}

	log.Info("start sending reminders")

	defer func() {
		if err := h.trigger.ResetReminder(ctx); err != nil {
			log.Errorf("unable to reset the reminder flag: %s", err)
		}
	}()

	persons, err := h.persons.WithNegativeBalance(ctx)
	if err != nil {
		log.Errorf("finding persons did not work: %s", err)
		return err
	}

	waitGroup := new(sync.WaitGroup)
	for _, person := range persons {
		if person.UID == nil {
			log.Infof("%s %s is signed out, skipping reminder", person.FirstName, person.LastName)
			continue
		}

		entry, err := h.tokens.FindByUID(ctx, *person.UID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				log.Infof("%s %s has no current device connected to fcm", person.FirstName, person.LastName)
			} else {
				log.Errorf("unable to resolve the token of %s %s: %s", person.FirstName, person.LastName, err)
			}
			continue
		}

		waitGroup.Add(1)
		go h.remindGoRoutine(ctx, waitGroup, person, entry.FCMToken)
	}
	waitGroup.Wait()

	return nil
}

func (h *Handler) remindGoRoutine(ctx context.Context, waitGroup *sync.WaitGroup, person store.Person, token string) {
	defer waitGroup.Done()

	if _, err := h.sender.Send(ctx, push.FormatReminderMessage(token, person.Balance)); err != nil {
		log.Errorf("error sending message to %s: %s", person.FirstName, err)
		return
	}
	log.Infof("successfully sent reminder to %s", person.FirstName)
}
