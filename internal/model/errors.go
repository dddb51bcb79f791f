package model

import "errors"

var (
	// Item related errors
	ErrItemNotFound       = errors.New("item not found")
	ErrItemAlreadyDeleted = errors.New("item already deleted")
	ErrItemNotDeleted     = errors.New("item is not deleted")

	// Estate related errors
	ErrPersonNotFound    = errors.New("person not found")
	ErrHouseNotFound     = errors.New("house not found")
	ErrOwnershipNotFound = errors.New("ownership not found")
	ErrInUse             = errors.New("resource is referenced by ownerships")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
