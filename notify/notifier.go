package notify

import (
	"github.com/FanaticExplorer/EmojiesParser/logger"
)

type Notifier interface {
	Alert(msg string)

	Release() // Release the notifier resources
}

// LogNotifier is the default Notifier which
// simply writes the alerts to the main log file.
type LogNotifier struct{}

func (n *LogNotifier) Alert(msg string) {
	logger.MainLogger.Info(msg)
}

func (n *LogNotifier) Release() {}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}
