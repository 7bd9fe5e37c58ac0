package store

import (
	"context"

	"firebase.google.com/go/db"
)

// ReminderRef is the realtime database path of the reminder trigger flag.
const ReminderRef = "reminder"

// TriggerStore reads and resets the reminder broadcast flag.
type TriggerStore interface {
	Reminder(ctx context.Context) (ReminderFlag, error)
	// ResetReminder writes send back to false after a broadcast.
	ResetReminder(ctx context.Context) error
}

type rtdbTrigger struct {
	ref *db.Ref
}

// NewTriggerStore returns a TriggerStore over the reminder ref of the
// realtime database.
func NewTriggerStore(client *db.Client) TriggerStore {
	return &rtdbTrigger{ref: client.NewRef(ReminderRef)}
}

func (s *rtdbTrigger) Reminder(ctx context.Context) (ReminderFlag, error) {
	var f ReminderFlag
	if err := s.ref.Get(ctx, &f); err != nil {
		return ReminderFlag{}, err
	}
	return f, nil
}

func (s *rtdbTrigger) ResetReminder(ctx context.Context) error {
	return s.ref.Update(ctx, map[string]interface{}{"send": false})
}
