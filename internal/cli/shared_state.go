package cli

import (
	"time"

	"github.com/alexanderramin/timetable/internal/component"
	"github.com/alexanderramin/timetable/internal/config"
	"github.com/alexanderramin/timetable/internal/nav"
	"github.com/alexanderramin/timetable/internal/notify"
)

// SharedState holds context shared across all pages via pointer.
// It carries no page data: each page owns its components outright.
type SharedState struct {
	App *App

	Sidebar *nav.Sidebar

	// Toasts collects notifications until the app model shows them.
	Toasts   *notify.Buffer
	Notifier notify.Notifier
	Observer component.UseCaseObserver

	ToastDuration time.Duration

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	cfg := app.Config
	if cfg == nil {
		cfg = defaultConfig()
	}

	sidebar := nav.NewSidebar()
	_ = sidebar.Navigate(cfg.UI.StartPage)
	sidebar.SetCollapsed(cfg.UI.Collapsed)

	toasts := notify.NewBuffer()
	return &SharedState{
		App:           app,
		Sidebar:       sidebar,
		Toasts:        toasts,
		Notifier:      notify.Multi(toasts, notify.NewLogNotifier(app.Logger)),
		Observer:      component.NewLogUseCaseObserver(app.Logger),
		ToastDuration: cfg.UI.ToastDuration(),
	}
}

func defaultConfig() *config.Config {
	return &config.Config{
		UI:  config.UIConfig{StartPage: nav.PathDashboard, ToastSeconds: 4},
		Log: config.LogConfig{Level: "info", Format: "json"},
	}
}

// componentOptions wires a component to the shared notifier and observer.
func (s *SharedState) componentOptions() []component.Option {
	return []component.Option{
		component.WithNotifier(s.Notifier),
		component.WithObserver(s.Observer),
	}
}

// ContentWidth returns the width left for the page beside the sidebar.
func (s *SharedState) ContentWidth() int {
	w := s.Width - s.Sidebar.Width() - 2
	if w < 20 {
		return 20
	}
	return w
}

// ContentHeight returns the available height for page content,
// accounting for header (2 lines: title + separator) and
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
