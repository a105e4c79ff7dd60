package apperror

import "errors"

var (
	ErrSessionNotFound  = errors.New("session not found")
	ErrCorruptedSession = errors.New("session state is corrupted")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrInvalidStep      = errors.New("invalid history step")
	ErrInvalidSortOrder = errors.New("invalid sort order")
)
