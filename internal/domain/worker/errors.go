package worker

import "errors"

var (
	ErrWorkerNotFound   = errors.New("worker not found")
	ErrWorkerCodeExists = errors.New("worker with this code already exists")
)
