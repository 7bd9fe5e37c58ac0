// Package semesterUpdate advances the Current/Semester pointer once the
// active term has ended and snapshots the incoming officer list.
package semesterUpdate

import (
	"context"
	"errors"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/walhallaapp/functions/store"
)

// Current/Chargen holds at most this many officer uids.
const officerLimit = 5

// Handler runs the monthly semester check.
type Handler struct {
	semesters store.SemesterStore
	now       func() time.Time
}

// NewHandler constructs the handler over the given semester store.
func NewHandler(semesters store.SemesterStore) *Handler {
	return &Handler{semesters: semesters, now: time.Now}
}

// Run executes one check. Re-running within the same term is a no-op
// because the promoted pointer's end lies in the future, so a failed month
// is simply retried by the next trigger.
func (h *Handler) Run(ctx context.Context) error {
	current, err := h.semesters.Current(ctx)
	if err != nil {
		log.Errorf("error while checking for new semester: %s", err)
		return err
	}

	if h.now().Before(current.End) {
		return nil
	}

	next, err := h.semesters.ByID(ctx, current.ID+1)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// The next term has to be pre-created by an administrator.
			log.Errorf("semester %d has ended but semester %d does not exist", current.ID, current.ID+1)
			return nil
		}
		log.Errorf("downloading the next semesters data did not work: %s", err)
		return err
	}

	// TODO: confirm with the app owners that the id really is meant to be
	// bumped again here, the record was already looked up at current.ID+1.
	next.ID++

	// The pointer moves first. If the officer snapshot below fails the
	// promoted semester keeps the stale officer list until the next run.
	if err := h.semesters.SetCurrent(ctx, next); err != nil {
		log.Errorf("unable to promote semester %d: %s", current.ID+1, err)
		return err
	}

	uids, err := h.semesters.OfficerUIDs(ctx, current.ID+1, officerLimit)
	if err != nil {
		log.Errorf("error on getting current chargia: %s", err)
		return err
	}

	if err := h.semesters.SetCurrentOfficers(ctx, uids); err != nil {
		log.Errorf("unable to replace the officer snapshot: %s", err)
		return err
	}

	log.Infof("promoted semester %s with %d officers", next.Short, len(uids))
	return nil
}
