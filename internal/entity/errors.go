package entity

import "errors"

// Sentinels returned by the repository layer so callers can translate
// store outcomes without depending on driver error types.
var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailAlreadyExists = errors.New("agent with this email already exists")
)
