package services

import "errors"

// persistenceWarner matches the store's non-fatal persistence warnings without
// importing the store package.
type persistenceWarner interface {
	PersistenceWarning() bool
}

func isPersistenceWarning(err error) bool {
	var warner persistenceWarner
	return errors.As(err, &warner)
}
