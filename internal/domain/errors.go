package domain

import "errors"

var (
	ErrNotFound      = errors.New("resource not found")
	ErrConflict      = errors.New("resource conflict")
	ErrInvalidSlot   = errors.New("invalid check-in slot")
	ErrSlotSubmitted = errors.New("check-in slot already submitted")
	ErrInvalidInput  = errors.New("invalid input")
)
