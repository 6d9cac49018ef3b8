package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrProjectConflict = errors.New("project violates a store constraint")
)
