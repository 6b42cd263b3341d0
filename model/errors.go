package model

import "github.com/pkg/errors"

var (
	// ErrInvalidConfiguration is the cause of every rejected simulation setting
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrUnknownPattern is returned when a built-in pattern name does not exist
	ErrUnknownPattern = errors.New("unknown pattern")
)
