package store

import (
	"errors"
	"fmt"
)

// PersistenceWarning reports that a mutation applied in memory but could not be
// written through to SQLite. Durability is best effort: the session keeps
// working and the caller decides how loudly to surface the warning.
type PersistenceWarning struct {
	Op  string
	Err error
}

func (warning *PersistenceWarning) Error() string {
	return fmt.Sprintf("persist %s: %v", warning.Op, warning.Err)
}

func (warning *PersistenceWarning) Unwrap() error {
	return warning.Err
}

// PersistenceWarning marks the error as non-fatal so other packages can detect
// it behaviorally without importing this one.
func (warning *PersistenceWarning) PersistenceWarning() bool {
	return true
}

func IsPersistenceWarning(err error) bool {
	var warning *PersistenceWarning
	return errors.As(err, &warning)
}
