package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"quill/internal/config"
	"quill/internal/dict"
	"quill/internal/driver"
	"quill/internal/linting"
	"quill/internal/linting/curated"
)

// env is the resolved configuration shared by subcommands: the project file
// with persistent flags applied on top.
type env struct {
	cfg      *config.Config
	log      *logrus.Logger
	color    bool
	quiet    bool
	timings  bool
	maxLints int
}

// loadEnv discovers the project config starting at target (a file or
// directory) unless --config names one explicitly.
func loadEnv(cmd *cobra.Command, target string) (*env, error) {
	flags := cmd.Root().PersistentFlags()

	logLevel, err := flags.GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	log, err := newLogger(logLevel)
	if err != nil {
		return nil, err
	}

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	var cfg *config.Config
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		if target == "" || target == "-" {
			target = "."
		}
		cfg, err = config.LoadOrDefault(target)
	}
	if err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		log.WithField("path", cfg.Path).Debug("loaded config")
	}

	e := &env{cfg: cfg, log: log}
	if e.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if e.timings, err = flags.GetBool("timings"); err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}

	e.maxLints = cfg.Output.MaxLints
	if maxLints, err := flags.GetInt("max-lints"); err != nil {
		return nil, fmt.Errorf("failed to get max-lints flag: %w", err)
	} else if maxLints >= 0 {
		e.maxLints = maxLints
	}

	colorMode := cfg.Output.Color
	if flags.Changed("color") {
		if colorMode, err = flags.GetString("color"); err != nil {
			return nil, fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if e.color, err = resolveColor(colorMode, stdoutFile(cmd)); err != nil {
		return nil, err
	}
	color.NoColor = !e.color
	return e, nil
}

func newLogger(level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return log, nil
}

func resolveColor(mode string, out *os.File) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "on", "always":
		return true, nil
	case "off", "never":
		return false, nil
	case "", "auto":
		return out != nil && os.Getenv("NO_COLOR") == "" && isTerminal(out), nil
	default:
		return false, fmt.Errorf("invalid color mode %q (expected auto|on|off)", mode)
	}
}

// dictionary builds the curated dictionary plus the configured word lists.
func (e *env) dictionary() (dict.Dictionary, error) {
	return e.cfg.BuildDictionary()
}

// lintGroup builds the curated group with the config's rule settings applied.
func (e *env) lintGroup(d dict.Dictionary) (*linting.LintGroup, error) {
	g := curated.LintGroup(d)
	if err := e.cfg.ApplyRules(g); err != nil {
		return nil, err
	}
	return g, nil
}

// driverOptions assembles driver.Options from the config, opening the cache
// unless disabled.
func (e *env) driverOptions(jobs int, useCache bool) (driver.Options, error) {
	d, err := e.dictionary()
	if err != nil {
		return driver.Options{}, err
	}
	g, err := e.lintGroup(d)
	if err != nil {
		return driver.Options{}, err
	}
	if jobs <= 0 {
		jobs = e.cfg.Lint.Parallel
	}
	opts := driver.Options{
		Group:     g,
		Dict:      d,
		Jobs:      jobs,
		Exclude:   e.cfg.Lint.Exclude,
		CacheSalt: e.cfg.CacheSalt(),
		Log:       e.log,
	}
	if useCache && e.cfg.Cache.Enabled {
		dir := e.cfg.Cache.Dir
		if dir != "" && !filepath.IsAbs(dir) {
			dir = filepath.Join(e.cfg.Dir(), dir)
		}
		disk, err := driver.OpenDiskCache(dir, "quill")
		if err != nil {
			// без кэша работаем дальше
			e.log.WithError(err).Warn("disk cache unavailable")
		}
		cache, err := driver.NewCache(e.cfg.Cache.MemoryEntries, disk)
		if err != nil {
			return driver.Options{}, err
		}
		opts.Cache = cache
	}
	return opts, nil
}

// stdoutFile returns the command's output when it is a real file.
func stdoutFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}
	return nil
}
