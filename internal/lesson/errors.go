// Package lesson builds lessons from a user's cards and scores their answers.
package lesson

import "errors"

var (
	// ErrValidation marks a request that is missing or carries bad input.
	ErrValidation = errors.New("validation error")
	// ErrInvalidConfiguration marks settings that make scoring impossible.
	ErrInvalidConfiguration = errors.New("invalid configuration")
)
