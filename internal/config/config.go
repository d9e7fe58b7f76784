package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"path/filepath"
	"sort"
	"strings"

	"github.com/subosito/gotenv"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/astralhpi/ticktick-mcp/internal/environ"
)

const (
	// DefaultDir is used when no configuration directory is given.
	DefaultDir = "~/.config/ticktick-mcp"
	// SettingsFileName is the settings file looked up inside the configuration directory.
	SettingsFileName = ".env"

	dirPerm = 0o755
)

// Options holds the operator-supplied inputs of a load.
type Options struct {
	// Dir is the configuration directory; empty means DefaultDir.
	Dir string
}

// Config is the result of a successful load.
type Config struct {
	Dir            string
	SettingsPath   string
	SettingsLoaded bool
	Credentials    Credentials
}

// Option configures a Loader.
type Option func(*Loader)

// WithHomeDir overrides how the current user's home directory is found.
func WithHomeDir(fn func() (string, error)) Option {
	return func(l *Loader) {
		l.homeDir = fn
	}
}

// Loader runs the startup configuration sequence against an environment.
type Loader struct {
	env     environ.Environment
	logger  *zap.Logger
	homeDir func() (string, error)
}

// NewLoader creates a Loader that merges settings into env.
func NewLoader(env environ.Environment, logger *zap.Logger, opts ...Option) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	l := &Loader{
		env:     env,
		logger:  logger,
		homeDir: os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves the configuration directory, merges its settings file into
// the environment and reads the credentials. On error the returned Config is
// the zero value.
func (l *Loader) Load(opts Options) (Config, error) {
	dir, err := l.ResolveDir(opts.Dir)
	if err != nil {
		return Config{}, err
	}

	settingsPath := filepath.Join(dir, SettingsFileName)
	loaded, err := l.LoadSettings(settingsPath)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Dir:            dir,
		SettingsPath:   settingsPath,
		SettingsLoaded: loaded,
		Credentials:    ReadCredentials(l.env),
	}, nil
}

// ResolveDir expands home-directory shorthand in path, makes it absolute and
// creates it along with any missing parents.
func (l *Loader) ResolveDir(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = DefaultDir
	}

	expanded, err := l.expandHome(path)
	if err != nil {
		return "", &LoadError{Kind: ErrConfigDir, Path: path, Err: err}
	}

	dir, err := filepath.Abs(expanded)
	if err != nil {
		return "", &LoadError{Kind: ErrConfigDir, Path: expanded, Err: err}
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", &LoadError{Kind: ErrConfigDir, Path: dir, Err: err}
	}

	l.logger.Info("ensured configuration directory exists", zap.String("dir", dir))
	return dir, nil
}

// LoadSettings merges the settings file at path into the environment,
// overriding existing variables. It reports whether a file was applied. A
// missing file is not an error.
func (l *Loader) LoadSettings(path string) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		l.logger.Warn("no settings file found; continuing with existing environment variables",
			zap.String("path", path),
			zap.Strings("expected", CredentialVars))
		return false, nil
	case err != nil:
		return false, &LoadError{Kind: ErrSettingsFile, Path: path, Err: err}
	case !info.Mode().IsRegular():
		l.logger.Warn("settings path is not a regular file; continuing with existing environment variables",
			zap.String("path", path),
			zap.Stringer("mode", info.Mode()))
		return false, nil
	}

	entries, err := readSettings(path)
	if err != nil {
		return false, &LoadError{Kind: ErrSettingsFile, Path: path, Err: err}
	}

	if err := l.apply(entries); err != nil {
		return false, &LoadError{Kind: ErrSettingsFile, Path: path, Err: err}
	}

	if len(entries) == 0 {
		l.logger.Warn("settings file has no entries", zap.String("path", path))
	} else {
		l.logger.Info("loaded environment variables from settings file",
			zap.String("path", path),
			zap.Int("entries", len(entries)))
	}
	return true, nil
}

// readSettings parses the whole file before anything is applied so a
// malformed file leaves the environment untouched.
func readSettings(path string) (gotenv.Env, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	entries, err := gotenv.StrictParse(f)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}
	return entries, nil
}

func (l *Loader) apply(entries gotenv.Env) error {
	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var err error
	for _, k := range keys {
		if setErr := l.env.Set(k, entries[k]); setErr != nil {
			err = multierr.Append(err, fmt.Errorf("set %s: %w", k, setErr))
		}
	}
	return err
}

// expandHome replaces a leading "~" or "~name" with the matching home directory.
func (l *Loader) expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	name, rest, _ := strings.Cut(filepath.ToSlash(path[1:]), "/")

	var home string
	if name == "" {
		h, err := l.homeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		home = h
	} else {
		u, err := user.Lookup(name)
		if err != nil {
			return "", fmt.Errorf("resolve home directory of %q: %w", name, err)
		}
		home = u.HomeDir
	}

	return filepath.Join(home, filepath.FromSlash(rest)), nil
}
