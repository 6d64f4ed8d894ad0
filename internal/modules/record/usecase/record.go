package usecase

import (
	"context"
	"fmt"

	"pombar/internal/modules/record/dto"
	recordin "pombar/internal/modules/record/port/in"
	"pombar/internal/modules/record/service"
	apperrors "pombar/internal/platform/errors"
)

type Interactor struct {
	svc *service.RecordService
}

func NewInteractor(svc *service.RecordService) recordin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) EnsureExists(ctx context.Context) error {
	return i.svc.EnsureExists(ctx)
}

func (i *Interactor) AddCompletedWork(ctx context.Context, minutes int) error {
	if minutes < 0 {
		return fmt.Errorf("minutes must be non-negative, got %d: %w", minutes, apperrors.ErrInvalidInput)
	}
	return i.svc.AddCompletedWork(ctx, minutes)
}

func (i *Interactor) Summary(ctx context.Context, input dto.SummaryInput) (dto.SummaryOutput, error) {
	if input.Weeks <= 0 {
		return dto.SummaryOutput{}, fmt.Errorf("weeks must be a positive integer, got %d: %w", input.Weeks, apperrors.ErrInvalidInput)
	}
	if input.MinutesPerUnit <= 0 {
		return dto.SummaryOutput{}, fmt.Errorf("session minutes must be a positive integer, got %d: %w", input.MinutesPerUnit, apperrors.ErrInvalidInput)
	}
	rows, err := i.svc.Summary(ctx, input.Weeks, input.MinutesPerUnit)
	if err != nil {
		return dto.SummaryOutput{}, err
	}
	return dto.SummaryOutput{
		Title: fmt.Sprintf("Number of %d-minute sessions from this week (top)", input.MinutesPerUnit),
		Rows:  rows,
	}, nil
}

func (i *Interactor) Raw(ctx context.Context) (string, error) {
	return i.svc.Raw(ctx)
}
