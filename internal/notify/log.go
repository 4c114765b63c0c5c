package notify

import "go.uber.org/zap"

// LogNotifier records every notification in the application log.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier returns a LogNotifier writing to logger. A nil logger is
// replaced with a no-op logger.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogNotifier{logger: logger.Named("notify")}
}

func (l *LogNotifier) Notify(n Notification) {
	fields := []zap.Field{
		zap.String("title", n.Title),
		zap.String("description", n.Description),
		zap.Stringer("severity", n.Severity),
	}
	if n.Severity == SeverityDestructive {
		l.logger.Warn("notification", fields...)
		return
	}
	l.logger.Info("notification", fields...)
}
