package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	"github.com/hari-data/hari/internal/apperrors"
)

const (
	KeyAppName  = "spark.app.name"
	KeyMaster   = "spark.master"
	KeyJars     = "spark.jars"
	KeyLogLevel = "spark.log.level"

	DefaultLocalMaster = "local[*]"
)

type Env string

const (
	EnvLocal   Env = "local"
	EnvCluster Env = "cluster"
)

func ParseEnv(s string) (Env, error) {
	switch env := Env(strings.ToLower(s)); env {
	case EnvLocal, EnvCluster:
		return env, nil
	default:
		return "", apperrors.Validation("unknown session environment %q, want local or cluster", s)
	}
}

// ResolveJars returns the comma separated, sorted paths of the .jar files
// directly under dir. An empty dir yields "".
func ResolveJars(fsys billy.Filesystem, dir string) (string, error) {
	if dir == "" {
		return "", nil
	}

	entries, err := fsys.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", apperrors.ErrFileNotFound, dir)
		}
		return "", fmt.Errorf("failed to list jars in %s: %w", dir, err)
	}

	var jars []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".jar") {
			continue
		}
		jars = append(jars, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(jars)
	return strings.Join(jars, ","), nil
}

type Setting struct {
	Key   string
	Value string
}

// Session is a resolved set of engine options.
type Session struct {
	Env      Env
	settings map[string]string
}

// New resolves cfg and extras into a session. Extras override the options
// derived from cfg.
func New(env Env, cfg Config, jars string, extras map[string]string) *Session {
	settings := map[string]string{
		KeyAppName: cfg.AppName,
		KeyMaster:  cfg.MasterURL,
	}
	if jars != "" {
		settings[KeyJars] = jars
	}
	if cfg.LogLevel != "" {
		settings[KeyLogLevel] = strings.ToUpper(cfg.LogLevel)
	}
	for k, v := range extras {
		settings[k] = v
	}
	return &Session{Env: env, settings: settings}
}

func (s *Session) Get(key string) (string, bool) {
	v, ok := s.settings[key]
	return v, ok
}

func (s *Session) AppName() string {
	return s.settings[KeyAppName]
}

func (s *Session) Master() string {
	return s.settings[KeyMaster]
}

// Settings returns the app name, master, jars and log level first, then the
// remaining options sorted by key.
func (s *Session) Settings() []Setting {
	fixed := []string{KeyAppName, KeyMaster, KeyJars, KeyLogLevel}
	isFixed := map[string]bool{}
	var out []Setting
	for _, key := range fixed {
		isFixed[key] = true
		if v, ok := s.settings[key]; ok {
			out = append(out, Setting{Key: key, Value: v})
		}
	}

	var rest []string
	for key := range s.settings {
		if !isFixed[key] {
			rest = append(rest, key)
		}
	}
	sort.Strings(rest)
	for _, key := range rest {
		out = append(out, Setting{Key: key, Value: s.settings[key]})
	}
	return out
}

// SubmitArgs renders the session as spark-submit arguments.
func (s *Session) SubmitArgs() []string {
	var args []string
	for _, setting := range s.Settings() {
		switch setting.Key {
		case KeyAppName:
			args = append(args, "--name", setting.Value)
		case KeyMaster:
			args = append(args, "--master", setting.Value)
		case KeyJars:
			args = append(args, "--jars", setting.Value)
		default:
			args = append(args, "--conf", setting.Key+"="+setting.Value)
		}
	}
	return args
}

// Manager configures a single session per process.
type Manager struct {
	fs      billy.Filesystem
	logger  zerolog.Logger
	session *Session
}

type ManagerOption func(*Manager)

func WithLogger(logger zerolog.Logger) ManagerOption {
	return func(m *Manager) {
		m.logger = logger
	}
}

func NewManager(fsys billy.Filesystem, opts ...ManagerOption) *Manager {
	m := &Manager{
		fs:     fsys,
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Configure builds the session from configPath and extras. Once a session
// exists, later calls log a warning and return it unchanged.
func (m *Manager) Configure(env Env, configPath string, extras map[string]string) (*Session, error) {
	if m.session != nil {
		m.logger.Warn().Msg("Session is already configured. Ignoring the new configuration.")
		return m.session, nil
	}

	cfg, err := LoadConfig(m.fs, configPath)
	if err != nil {
		return nil, err
	}

	switch env {
	case EnvLocal:
		if cfg.MasterURL == "" {
			cfg.MasterURL = DefaultLocalMaster
		}
	case EnvCluster:
		if cfg.MasterURL == "" {
			return nil, apperrors.Validation("master_url is required for cluster sessions")
		}
	default:
		return nil, apperrors.Validation("unknown session environment %q, want local or cluster", env)
	}

	jars, err := ResolveJars(m.fs, cfg.JarsPath)
	if err != nil {
		return nil, err
	}

	m.session = New(env, cfg, jars, extras)
	m.logger.Info().
		Str("env", string(env)).
		Str("app", m.session.AppName()).
		Str("master", m.session.Master()).
		Msg("session configured")
	return m.session, nil
}

// Session returns the configured session, if any.
func (m *Manager) Session() (*Session, bool) {
	return m.session, m.session != nil
}
