package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	baroutadapter "pombar/internal/modules/bar/adapter/out"
	bardomain "pombar/internal/modules/bar/domain"
	barservice "pombar/internal/modules/bar/service"
	recordinadapter "pombar/internal/modules/record/adapter/in"
	recordoutadapter "pombar/internal/modules/record/adapter/out"
	recordservice "pombar/internal/modules/record/service"
	recordusecase "pombar/internal/modules/record/usecase"
	timeroutadapter "pombar/internal/modules/timer/adapter/out"
	timerdomain "pombar/internal/modules/timer/domain"
	timerusecase "pombar/internal/modules/timer/usecase"
	"pombar/internal/platform/clock"
	"pombar/internal/platform/config"
	uiapp "pombar/internal/ui/app"
)

type App struct {
	RecordCLI recordinadapter.CLIHandler
	Timer     *timerusecase.Interactor
	Bar       *barservice.Publisher
	BarType   bardomain.Type

	notifier *baroutadapter.DesktopNotifier
}

func New(settings config.Settings) (*App, error) {
	clk := clock.SystemClock{}

	barType, err := bardomain.ParseType(settings.BarType)
	if err != nil {
		return nil, err
	}

	recordUC := recordusecase.NewInteractor(recordservice.NewRecordService(
		clk,
		recordoutadapter.NewFileRecordStore(settings.RecordPath),
	))

	plan := timerdomain.Plan{
		WorkSeconds:      settings.WorkMinutes * 60,
		BreakSeconds:     settings.BreakMinutes * 60,
		LongBreakSeconds: settings.LongBreakMinutes * 60,
		WorkCommand:      settings.WorkCommand,
		BreakCommand:     settings.BreakCommand,
	}

	app := &App{
		RecordCLI: recordinadapter.NewCLIHandler(recordUC),
		Timer:     timerusecase.NewInteractor(plan, settings.StartSession, recordUC, timeroutadapter.NewExecRunner()),
		Bar:       barservice.NewPublisher(baroutadapter.NewNamedPipeWriter(barType)),
		BarType:   barType,
	}

	if settings.Notify {
		notifier, err := baroutadapter.NewDesktopNotifier()
		if err != nil {
			return nil, fmt.Errorf("desktop notifications: %w", err)
		}
		app.notifier = notifier
	}
	return app, nil
}

// Close releases long-lived connections held by the app.
func (a *App) Close() {
	if a.notifier != nil {
		_ = a.notifier.Close()
	}
}

// RunTUI runs the interactive session loop. The tea.Program owns the
// terminal for its whole lifetime: raw mode and the hidden cursor are
// restored on every exit path, fatal errors included.
func RunTUI(app *App) error {
	var notifier uiapp.Notifier
	if app.notifier != nil {
		notifier = app.notifier
	}
	model := uiapp.NewModel(app.Timer, app.Bar, notifier)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(uiapp.Model); ok {
		return m.Err()
	}
	return nil
}
