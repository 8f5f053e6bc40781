package domain

import (
	"context"
	"fmt"
	"net/http"

	"storekeep/internal/core/apperror"
	"storekeep/internal/core/numerator"
)

// NextIdentifier draws the next value of counter for a new entity.
// A sequencer failure is always a server error here: a missing counter row
// means the database was not seeded, not that the requested record is absent.
func NextIdentifier(ctx context.Context, seq numerator.Sequencer, counter string) (int64, error) {
	value, err := seq.NextValue(ctx, counter)
	if err == nil {
		return value, nil
	}
	if appErr, ok := apperror.AsAppError(err); ok && appErr.HTTPStatus >= http.StatusInternalServerError {
		return 0, err
	}
	return 0, apperror.NewInternal(fmt.Errorf("allocate %s: %w", counter, err)).
		WithDetail("counter", counter)
}
