package groups

import (
	"errors"
	"net/http"

	"github.com/Nour-Ali/NodeBB-nour/pkg/apperrors"
)

var (
	ErrNameTooShort       = errors.New("[[error:group-name-too-short]]")
	ErrInvalidName        = errors.New("[[error:invalid-group-name]]")
	ErrNameTooLong        = errors.New("[[error:group-name-too-long]]")
	ErrGroupAlreadyExists = errors.New("[[error:group-already-exists]]")
	ErrGroupNotFound      = errors.New("[[error:no-group]]")
	ErrInvalidOwner       = errors.New("[[error:invalid-uid]]")
	ErrInvalidSort        = errors.New("[[error:invalid-data]]")
)

// toAppError attaches the HTTP status and client code to a feature error.
// Errors it does not recognise pass through unchanged.
func toAppError(err error) error {
	switch {
	case errors.Is(err, ErrNameTooShort):
		return apperrors.BadRequest("Group name too short", apperrors.ErrGroupNameTooShort, err)
	case errors.Is(err, ErrNameTooLong):
		return apperrors.BadRequest("Group name too long", apperrors.ErrGroupNameTooLong, err)
	case errors.Is(err, ErrInvalidName):
		return apperrors.BadRequest("Invalid group name", apperrors.ErrInvalidGroupName, err)
	case errors.Is(err, ErrGroupAlreadyExists):
		return apperrors.New("Group already exists", http.StatusConflict, apperrors.ErrGroupExists, err)
	case errors.Is(err, ErrGroupNotFound):
		return apperrors.New("Group does not exist", http.StatusNotFound, apperrors.ErrNoGroup, err)
	case errors.Is(err, ErrInvalidOwner):
		return apperrors.BadRequest("Invalid owner uid", apperrors.ErrInvalidUID, err)
	case errors.Is(err, ErrInvalidSort):
		return apperrors.BadRequest("Unknown sort order", apperrors.ErrValidation, err)
	}
	return err
}

// failureReason labels a creation failure for metrics.
func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrNameTooShort):
		return "name_too_short"
	case errors.Is(err, ErrNameTooLong):
		return "name_too_long"
	case errors.Is(err, ErrInvalidName):
		return "invalid_name"
	case errors.Is(err, ErrGroupAlreadyExists):
		return "already_exists"
	case errors.Is(err, ErrInvalidOwner):
		return "invalid_owner"
	default:
		return "internal"
	}
}
