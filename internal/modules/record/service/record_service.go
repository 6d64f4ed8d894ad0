package service

import (
	"context"

	"pombar/internal/modules/record/domain"
	recordout "pombar/internal/modules/record/port/out"
	"pombar/internal/platform/clock"
)

// RecordService owns the read-modify-write cycle over the record store.
type RecordService struct {
	clock clock.Clock
	store recordout.Store
}

func NewRecordService(clk clock.Clock, store recordout.Store) *RecordService {
	return &RecordService{clock: clk, store: store}
}

func (s *RecordService) EnsureExists(ctx context.Context) error {
	return s.store.EnsureExists(ctx)
}

// AddCompletedWork adds minutes to today's bucket in the current week:
// load the whole store, patch it, overwrite the whole store.
func (s *RecordService) AddCompletedWork(ctx context.Context, minutes int) error {
	if err := s.store.EnsureExists(ctx); err != nil {
		return err
	}
	old, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	now := s.clock.Now()
	updated := domain.AddWorkMinutes(old, domain.MondayOf(now, 0), domain.DayKey(now), minutes)
	return s.store.Save(ctx, updated)
}

// Summary builds the report rows, current week first. The first week row
// covers only the days elapsed so far.
func (s *RecordService) Summary(ctx context.Context, weeks, minutesPerUnit int) ([][]string, error) {
	if err := s.store.EnsureExists(ctx); err != nil {
		return nil, err
	}
	store, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}

	header := append(append([]string{}, domain.Weekdays[:]...), "Avg")
	separator := make([]string, len(header))
	for i := range separator {
		separator[i] = "---"
	}

	now := s.clock.Now()
	rows := [][]string{header, separator}
	rows = append(rows, domain.WeekSummary(store, domain.MondayOf(now, 0), domain.WeekdayIndex(now)+1, minutesPerUnit))
	for back := 1; back < weeks; back++ {
		rows = append(rows, domain.WeekSummary(store, domain.MondayOf(now, back), len(domain.Weekdays), minutesPerUnit))
	}
	return rows, nil
}

func (s *RecordService) Raw(ctx context.Context) (string, error) {
	if err := s.store.EnsureExists(ctx); err != nil {
		return "", err
	}
	return s.store.Raw(ctx)
}
