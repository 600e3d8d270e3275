package repository

import "errors"

var (
	ErrUnknownDriver  = errors.New("unknown driver")
	ErrFailedToPut    = errors.New("failed to put file")
	ErrFailedToAppend = errors.New("failed to append row")
)
