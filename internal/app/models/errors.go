package models

import "errors"

var (
	ErrPageNotFound   = errors.New("page not found")
	ErrDuplicateLabel = errors.New("element label is not unique")
	ErrInvalidToggles = errors.New("invalid menu toggle count")
)
