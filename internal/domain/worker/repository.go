package worker

import "context"

type WorkerRepository interface {
	Create(ctx context.Context, worker Worker) (Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	List(ctx context.Context, filter WorkerFilter) ([]Worker, error)
	Update(ctx context.Context, req UpdateWorkerRequest) error
	Delete(ctx context.Context, id string) error
}
