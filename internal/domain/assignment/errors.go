package assignment

import "errors"

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrAssignmentConflict = errors.New("assignment violates a store constraint")
)
