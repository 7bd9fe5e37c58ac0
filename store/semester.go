package store

import (
	"context"
	"strconv"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

const (
	currentSemesterDoc = "Current/Semester"
	currentOfficerDoc  = "Current/Chargen"
	semesterCollection = "Semester"
	officerCollection  = "Chargen"
)

// SemesterStore reads and writes semester records and the two Current/*
// singletons.
type SemesterStore interface {
	// Current returns the active semester pointer, ErrNotFound if none has
	// ever been set.
	Current(ctx context.Context) (Semester, error)
	// ByID returns the pre-created semester record with the given id,
	// ErrNotFound when the administrator has not created it yet.
	ByID(ctx context.Context, id int64) (Semester, error)
	// SetCurrent replaces the active semester pointer.
	SetCurrent(ctx context.Context, s Semester) error
	// OfficerUIDs returns up to limit officer uids of one semester, in
	// collection order, skipping documents whose uid field is missing or
	// not a string.
	OfficerUIDs(ctx context.Context, semesterID int64, limit int) ([]string, error)
	// SetCurrentOfficers fully replaces the current officer snapshot.
	SetCurrentOfficers(ctx context.Context, uids []string) error
}

type firestoreSemesters struct {
	fs *firestore.Client
}

// NewSemesterStore returns the firestore-backed SemesterStore.
func NewSemesterStore(fs *firestore.Client) SemesterStore {
	return &firestoreSemesters{fs: fs}
}

func (s *firestoreSemesters) Current(ctx context.Context) (Semester, error) {
	snap, err := s.fs.Doc(currentSemesterDoc).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return Semester{}, ErrNotFound
		}
		return Semester{}, err
	}

	var sem Semester
	if err := snap.DataTo(&sem); err != nil {
		return Semester{}, err
	}
	return sem, nil
}

func (s *firestoreSemesters) ByID(ctx context.Context, id int64) (Semester, error) {
	snap, err := s.fs.Collection(semesterCollection).Doc(strconv.FormatInt(id, 10)).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return Semester{}, ErrNotFound
		}
		return Semester{}, err
	}

	var sem Semester
	if err := snap.DataTo(&sem); err != nil {
		return Semester{}, err
	}
	return sem, nil
}

func (s *firestoreSemesters) SetCurrent(ctx context.Context, sem Semester) error {
	_, err := s.fs.Doc(currentSemesterDoc).Set(ctx, sem)
	return err
}

func (s *firestoreSemesters) OfficerUIDs(ctx context.Context, semesterID int64, limit int) ([]string, error) {
	iter := s.fs.Collection(semesterCollection).
		Doc(strconv.FormatInt(semesterID, 10)).
		Collection(officerCollection).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	uids := make([]string, 0, limit)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		if uid, ok := snap.Data()["uid"].(string); ok {
			uids = append(uids, uid)
		}
	}
	return uids, nil
}

func (s *firestoreSemesters) SetCurrentOfficers(ctx context.Context, uids []string) error {
	// A firestore document cannot be a bare array, so the snapshot lives
	// under a uids field.
	_, err := s.fs.Doc(currentOfficerDoc).Set(ctx, map[string]interface{}{"uids": uids})
	return err
}
