package in

import (
	"context"
	"fmt"
	"strings"

	"pombar/internal/modules/record/dto"
	recordin "pombar/internal/modules/record/port/in"
)

type CLIHandler struct {
	usecase recordin.Usecase
}

func NewCLIHandler(usecase recordin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) EnsureExists(ctx context.Context) error {
	return h.usecase.EnsureExists(ctx)
}

func (h CLIHandler) AddCompletedWork(ctx context.Context, minutes int) error {
	return h.usecase.AddCompletedWork(ctx, minutes)
}

// Summary renders the weekly report as an aligned text table: every column
// right-justified to its widest cell, cells joined by two spaces.
func (h CLIHandler) Summary(ctx context.Context, weeks, sessionMinutes int) (string, error) {
	out, err := h.usecase.Summary(ctx, dto.SummaryInput{Weeks: weeks, MinutesPerUnit: sessionMinutes})
	if err != nil {
		return "", err
	}
	return out.Title + "\n" + formatTable(out.Rows), nil
}

func (h CLIHandler) Raw(ctx context.Context) (string, error) {
	return h.usecase.Raw(ctx)
}

func formatTable(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = fmt.Sprintf("%*s", widths[i], cell)
		}
		lines = append(lines, strings.Join(cells, "  "))
	}
	return strings.Join(lines, "\n")
}
