package errors

import "errors"

var (
	ErrNotFound        = errors.New("turf not found")
	ErrManagerNotFound = errors.New("manager not found")
)
