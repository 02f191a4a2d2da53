package engine

import "log/slog"

// Notifier is the user-facing notification side channel. Every dispatch
// outcome surfaces here with the name of the attempted operation; quota
// rejections additionally trigger the upgrade prompt. Implementations must
// be safe for concurrent use: completions fire from background goroutines.
type Notifier interface {
	Success(op, message string)
	Warn(op, message string)
	Error(op, message string)

	// PromptUpgrade asks the shell to open its plan-upgrade surface.
	PromptUpgrade()
}

// LogNotifier is the default Notifier; it forwards everything to slog.
// Serving shells replace it with a toast/banner implementation.
type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Success(op, message string) {
	n.logger.Info("operation succeeded", "op", op, "message", message)
}

func (n *LogNotifier) Warn(op, message string) {
	n.logger.Warn("operation rejected", "op", op, "message", message)
}

func (n *LogNotifier) Error(op, message string) {
	n.logger.Error("operation failed", "op", op, "message", message)
}

func (n *LogNotifier) PromptUpgrade() {
	n.logger.Info("upgrade prompt triggered")
}
