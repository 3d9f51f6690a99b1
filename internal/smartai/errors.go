package smartai

import (
	"errors"
	"fmt"
)

// ErrGroupNotFound is returned by repositories when a group has no rows.
var ErrGroupNotFound = errors.New("script group not found")

// RepositoryError reports that the backing store could not answer a request.
// It is fatal for the call that hit it.
type RepositoryError struct {
	Op  string
	Key GroupKey
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means the requested group is empty.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrGroupNotFound)
}
