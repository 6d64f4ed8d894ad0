package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	recordout "pombar/internal/modules/record/adapter/out"
	"pombar/internal/modules/record/dto"
	recordin "pombar/internal/modules/record/port/in"
	"pombar/internal/modules/record/service"
	"pombar/internal/modules/record/usecase"
	apperrors "pombar/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (f fakeClock) Now() time.Time {
	return f.now
}

// 2026-08-26 is a Wednesday; its week starts on Monday 2026-08-24.
var wednesday = time.Date(2026, 8, 26, 14, 30, 0, 0, time.UTC)

func newUsecase(t *testing.T) (recordin.Usecase, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "record.json")
	svc := service.NewRecordService(fakeClock{now: wednesday}, recordout.NewFileRecordStore(path))
	return usecase.NewInteractor(svc), path
}

func TestAddCompletedWorkWritesCurrentBucket(t *testing.T) {
	t.Parallel()
	uc, path := newUsecase(t)

	if err := uc.AddCompletedWork(context.Background(), 25); err != nil {
		t.Fatalf("add: %v", err)
	}
	if err := uc.AddCompletedWork(context.Background(), 25); err != nil {
		t.Fatalf("second add: %v", err)
	}

	loaded, err := recordout.NewFileRecordStore(path).Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	week := loaded["2026-08-24"]
	if week == nil {
		t.Fatalf("week bucket missing, store = %v", loaded)
	}
	if week["Wed"] != 50 {
		t.Fatalf("Wed = %d, want 50", week["Wed"])
	}
	if len(week) != 7 {
		t.Fatalf("week carries %d day keys, want 7", len(week))
	}
}

func TestSummaryShapesRows(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t)
	if err := uc.AddCompletedWork(context.Background(), 50); err != nil {
		t.Fatalf("add: %v", err)
	}

	out, err := uc.Summary(context.Background(), dto.SummaryInput{Weeks: 4, MinutesPerUnit: 25})
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if out.Title != "Number of 25-minute sessions from this week (top)" {
		t.Fatalf("title = %q", out.Title)
	}
	// header + separator + current week + 3 past weeks
	if len(out.Rows) != 6 {
		t.Fatalf("rows = %d, want 6", len(out.Rows))
	}
	if out.Rows[0][7] != "Avg" || out.Rows[1][0] != "---" {
		t.Fatalf("unexpected header rows: %v %v", out.Rows[0], out.Rows[1])
	}

	// Wednesday: first row covers Mon..Wed only.
	current := out.Rows[2]
	if current[2] != "2.0" {
		t.Fatalf("Wed cell = %q, want 2.0", current[2])
	}
	if current[3] != "" || current[6] != "" {
		t.Fatalf("future days must be blank: %v", current)
	}
	if current[7] != "0.7" { // mean of 0.0, 0.0, 2.0
		t.Fatalf("avg = %q, want 0.7", current[7])
	}

	// Past weeks have no data at all.
	for _, row := range out.Rows[3:] {
		for i, cell := range row {
			if cell != "" {
				t.Fatalf("absent week cell %d = %q", i, cell)
			}
		}
	}
}

func TestSummaryRejectsBadInput(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t)

	_, err := uc.Summary(context.Background(), dto.SummaryInput{Weeks: 0, MinutesPerUnit: 25})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("weeks=0: err = %v", err)
	}
	_, err = uc.Summary(context.Background(), dto.SummaryInput{Weeks: 4, MinutesPerUnit: 0})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("unit=0: err = %v", err)
	}
}

func TestRawSeedsAndDumps(t *testing.T) {
	t.Parallel()
	uc, _ := newUsecase(t)
	raw, err := uc.Raw(context.Background())
	if err != nil {
		t.Fatalf("raw: %v", err)
	}
	if raw != "{}" {
		t.Fatalf("fresh raw dump = %q, want {}", raw)
	}
}
