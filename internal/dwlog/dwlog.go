// Package dwlog provides the beacon's two logging surfaces: a
// structured operational logger for humans, and a daily CSV transmit
// log for tracking what was actually put on the air.
package dwlog

import (
	"os"

	"github.com/charmbracelet/log"
)

// New builds the operational logger, writing leveled, timestamped lines
// to stderr.
func New() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		ReportCaller:    false,
		TimeFormat:      "15:04:05",
		Prefix:          "aprsbeacon",
	})
	logger.SetLevel(log.InfoLevel)
	return logger
}
