package in

import (
	"context"

	"pombar/internal/modules/record/dto"
)

type Usecase interface {
	EnsureExists(ctx context.Context) error
	AddCompletedWork(ctx context.Context, minutes int) error
	Summary(ctx context.Context, input dto.SummaryInput) (dto.SummaryOutput, error)
	Raw(ctx context.Context) (string, error)
}
