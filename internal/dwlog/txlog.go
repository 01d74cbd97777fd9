package dwlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lestrrat-go/strftime"
)

// TxLog appends one CSV line per transmitted frame to a daily file named
// by a strftime pattern, rotating automatically at midnight.
type TxLog struct {
	dir     string
	pattern *strftime.Strftime

	openDay string
	file    *os.File
}

// NewTxLog prepares a TxLog writing under dir, naming each day's file
// aprs-tx-YYYY-MM-DD.csv.
func NewTxLog(dir string) (*TxLog, error) {
	pattern, err := strftime.New("aprs-tx-%Y-%m-%d.csv")
	if err != nil {
		return nil, fmt.Errorf("dwlog: compile tx-log filename pattern: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("dwlog: create log directory %s: %w", dir, err)
	}
	return &TxLog{dir: dir, pattern: pattern}, nil
}

// Append writes one CSV row: timestamp, source callsign, and frame
// length, rotating to a new day's file as needed.
func (t *TxLog) Append(now time.Time, callsign string, frameLen int) error {
	if err := t.rotate(now); err != nil {
		return err
	}
	_, err := fmt.Fprintf(t.file, "%s,%s,%d\n", now.UTC().Format(time.RFC3339), callsign, frameLen)
	if err != nil {
		return fmt.Errorf("dwlog: write tx log row: %w", err)
	}
	return nil
}

func (t *TxLog) rotate(now time.Time) error {
	day := now.UTC().Format("2006-01-02")
	if day == t.openDay && t.file != nil {
		return nil
	}

	name := t.pattern.FormatString(now.UTC())
	f, err := os.OpenFile(filepath.Join(t.dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("dwlog: open tx log %s: %w", name, err)
	}

	if t.file != nil {
		_ = t.file.Close()
	}
	t.file = f
	t.openDay = day
	return nil
}

// Close closes the currently open log file, if any.
func (t *TxLog) Close() error {
	if t.file == nil {
		return nil
	}
	return t.file.Close()
}
