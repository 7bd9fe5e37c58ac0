package store

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrNotFound indicates the requested record does not exist. Expected-absent
// lookups (missing token entry, next semester not pre-created) map to it so
// callers can treat them as benign.
var ErrNotFound = errors.New("store: not found")

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
