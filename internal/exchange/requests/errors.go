package requests

import (
	"errors"

	"GotYourBack-backend/internal/exchange/lifecycle"
	"GotYourBack-backend/internal/platform/apierr"
)

// toAPIError maps lifecycle and store errors onto the HTTP error model. Anything
// else is returned unchanged and ends up as INTERNAL.
func toAPIError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return apierr.ErrNotFound("request not found")
	case errors.Is(err, ErrStale):
		return apierr.ErrConflict("request was modified by someone else; reload and retry")
	}

	var le *lifecycle.Error
	if !errors.As(err, &le) {
		return err
	}
	switch le.Kind {
	case lifecycle.KindSelfRequest, lifecycle.KindNotOwner, lifecycle.KindWrongRole:
		return apierr.ErrForbidden(le.Error())
	case lifecycle.KindInvalidArgument:
		return apierr.ErrInvalid(le.Error())
	case lifecycle.KindItemUnavailable, lifecycle.KindDuplicateRequest,
		lifecycle.KindInvalidState, lifecycle.KindInvalidTransition:
		return apierr.ErrConflict(le.Error())
	}
	return apierr.ErrInternal(le.Error())
}
