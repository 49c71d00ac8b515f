package commands

import (
	"errors"

	"slotswapper/internal/pkg/errs"
)

// markUnlessKnown passes through errors already marked with one of the given
// sentinels and classifies everything else as a database failure.
func markUnlessKnown(err error, known ...error) error {
	for _, k := range known {
		if errors.Is(err, k) {
			return err
		}
	}
	return errs.Mark(err, ErrDatabaseOperationFailed)
}
