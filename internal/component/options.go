// Package component holds the stateful pieces behind the timetable pages:
// the add-course form and dialog, and the availability constraints section.
// Each component owns its state outright and reports outcomes through an
// injected notify.Notifier.
package component

import "github.com/alexanderramin/timetable/internal/notify"

type options struct {
	notifier notify.Notifier
	observer UseCaseObserver
}

// Option configures a component.
type Option func(*options)

// WithNotifier sets where user-facing notifications go.
func WithNotifier(n notify.Notifier) Option {
	return func(o *options) { o.notifier = n }
}

// WithObserver sets the telemetry sink for component actions.
func WithObserver(obs UseCaseObserver) Option {
	return func(o *options) { o.observer = obs }
}

func buildOptions(opts []Option) options {
	o := options{notifier: notify.Nop{}, observer: NoopUseCaseObserver{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.notifier == nil {
		o.notifier = notify.Nop{}
	}
	if o.observer == nil {
		o.observer = NoopUseCaseObserver{}
	}
	return o
}
