// Package logging owns the process logger. It is configured once; later
// configuration attempts are ignored with a warning.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	"github.com/hari-data/hari/internal/apperrors"
	"github.com/hari-data/hari/internal/yamlutil"
)

const (
	DefaultAppName = "hari"
	DefaultLevel   = "info"
)

// Options configure the logger. Empty fields are taken from the YAML file at
// ConfigPath (keys app_name and log_level) and then from the defaults.
type Options struct {
	AppName    string
	Level      string
	ConfigPath string
}

type Manager struct {
	fs         billy.Filesystem
	out        io.Writer
	logger     zerolog.Logger
	configured bool
}

// NewManager returns an unconfigured manager writing to out. Until Configure
// succeeds its logger writes at info level without an app name.
func NewManager(fsys billy.Filesystem, out io.Writer) *Manager {
	return &Manager{
		fs:     fsys,
		out:    out,
		logger: zerolog.New(out).Level(zerolog.InfoLevel).With().Timestamp().Logger(),
	}
}

func (m *Manager) Logger() zerolog.Logger {
	return m.logger
}

func (m *Manager) Configured() bool {
	return m.configured
}

func (m *Manager) Configure(opts Options) error {
	if m.configured {
		m.logger.Warn().Msg("Logger is already configured. Ignoring the new configuration.")
		return nil
	}

	if opts.ConfigPath != "" {
		values, err := yamlutil.ReadMap(m.fs, opts.ConfigPath)
		if err != nil {
			return err
		}
		if opts.AppName == "" {
			opts.AppName = stringValue(values["app_name"])
		}
		if opts.Level == "" {
			opts.Level = stringValue(values["log_level"])
		}
	}
	if opts.AppName == "" {
		opts.AppName = DefaultAppName
	}
	if opts.Level == "" {
		opts.Level = DefaultLevel
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return err
	}

	m.logger = zerolog.New(m.out).Level(level).With().Timestamp().Str("app", opts.AppName).Logger()
	m.configured = true
	m.logger.Debug().Msgf("Logger configured with app name %q and log level %q.", opts.AppName, strings.ToUpper(opts.Level))
	return nil
}

// ParseLevel accepts zerolog level names and the WARNING and CRITICAL
// spellings used in existing config files, in any case.
func ParseLevel(name string) (zerolog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "warning":
		return zerolog.WarnLevel, nil
	case "critical":
		return zerolog.FatalLevel, nil
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(name)))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.NoLevel, apperrors.Validation("unknown log level %q", name)
	}
	return level, nil
}

func stringValue(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
