package services

import "errors"

var (
	// ErrValidation is returned when a required field is missing. Nothing is
	// written when it occurs.
	ErrValidation = errors.New("required field missing")
	// ErrAuthentication is returned for an unknown email and for a wrong
	// password alike.
	ErrAuthentication = errors.New("invalid email or password")
	// ErrPersistence wraps every failure coming from the store.
	ErrPersistence = errors.New("storage failure")
)
