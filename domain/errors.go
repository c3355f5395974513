package domain

import "github.com/pkg/errors"

var (
	ErrInvalidCase = errors.New("invalid case")
	ErrNotFound    = errors.New("not found")
)
