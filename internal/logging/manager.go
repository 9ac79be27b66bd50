package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Graylog2/go-gelf/gelf"
	"github.com/OCAP2/missionbuilder/internal/config"
	"github.com/rs/zerolog"
)

// ParseLevel converts a string log level to a zerolog level. Unknown values map to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToUpper(level) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New builds a logger writing colored console output to console and plain
// console output to file. Either writer may be nil. Extra writers (e.g. Graylog)
// receive the raw JSON events.
func New(level string, console, file io.Writer, extra ...io.Writer) zerolog.Logger {
	var writers []io.Writer
	if console != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: time.RFC3339,
		})
	}
	if file != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        file,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
	}
	for _, w := range extra {
		if w != nil {
			writers = append(writers, w)
		}
	}
	if len(writers) == 0 {
		return zerolog.Nop()
	}

	return zerolog.New(zerolog.MultiLevelWriter(writers...)).
		Level(ParseLevel(level)).
		With().Timestamp().Logger()
}

// Manager owns the log outputs opened by Setup.
type Manager struct {
	Logger   zerolog.Logger
	FilePath string

	file    *os.File
	graylog *gelf.Writer
}

// Setup opens the session log file under cfg.LogsDir and, when enabled, a
// Graylog GELF writer, and returns a Manager logging to them and to console.
func Setup(cfg config.LoggingConfig, appName string, sessionStart time.Time, console io.Writer) (*Manager, error) {
	m := &Manager{}

	if cfg.LogsDir != "" {
		if err := os.MkdirAll(cfg.LogsDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create logs directory: %w", err)
		}
		m.FilePath = logFilePath(cfg.LogsDir, appName, sessionStart)
		f, err := os.OpenFile(m.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		m.file = f
	}

	var extra []io.Writer
	if cfg.GraylogEnabled {
		gw, err := gelf.NewWriter(cfg.GraylogAddress)
		if err != nil {
			m.Close()
			return nil, fmt.Errorf("failed to connect to graylog at %s: %w", cfg.GraylogAddress, err)
		}
		m.graylog = gw
		extra = append(extra, gw)
	}

	var file io.Writer
	if m.file != nil {
		file = m.file
	}
	m.Logger = New(cfg.Level, console, file, extra...)
	m.Logger.Info().Str("loglevel", m.Logger.GetLevel().String()).Msg("Logging set up")
	return m, nil
}

// Close closes the log file and the Graylog connection.
func (m *Manager) Close() error {
	var errs []error
	if m.graylog != nil {
		errs = append(errs, m.graylog.Close())
	}
	if m.file != nil {
		errs = append(errs, m.file.Close())
	}
	return errors.Join(errs...)
}

// logFilePath names one log file per session: <logsDir>/<appName>.<start>.log
func logFilePath(logsDir, appName string, sessionStart time.Time) string {
	return filepath.Join(logsDir, fmt.Sprintf("%s.%s.log", appName, sessionStart.Format("20060102_150405")))
}
