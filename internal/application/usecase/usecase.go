package usecase

import "context"

// UseCase is the shape of read paths that either return a value or fail hard.
type UseCase[IN, OUT any] interface {
	Execute(ctx context.Context, in IN) (OUT, error)
}

// UnitUseCase is the shape of operations without output, such as deletes.
type UnitUseCase[IN any] interface {
	Execute(ctx context.Context, in IN) error
}
