package driver

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"quill/internal/dict"
	"quill/internal/document"
	"quill/internal/linting"
	"quill/internal/observ"
	"quill/internal/parsers"
	"quill/internal/source"
)

// Options configures a lint run.
type Options struct {
	// Group is the rule set to run. Required.
	Group *linting.LintGroup
	// Dict resolves word metadata; nil means the curated dictionary.
	Dict dict.Dictionary
	// Parser forces a parser; empty picks one by file extension.
	Parser parsers.Name
	// Jobs bounds file-level parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// Cache stores results per content digest; nil disables caching.
	Cache *Cache
	// CacheSalt distinguishes results produced under different dictionaries.
	CacheSalt string
	// Exclude holds glob patterns matched against base names while walking.
	Exclude []string
	Sink    ProgressSink
	// OnPhase observes run-level phase boundaries (discover, load, lint).
	OnPhase PhaseObserver
	Log     *logrus.Logger
}

// Result is the outcome of linting one file.
type Result struct {
	Path   string
	FileID source.FileID
	Lints  []linting.Lint
	Cached bool
	Err    error
}

// Run aggregates the results of one invocation.
type Run struct {
	FileSet *source.FileSet
	Results []Result
	Timing  observ.Report
	Cache   CacheStats
}

// LintCount returns the total number of lints across files.
func (r *Run) LintCount() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Lints)
	}
	return n
}

// Failed reports whether any file could not be linted.
func (r *Run) Failed() bool {
	for _, res := range r.Results {
		if res.Err != nil {
			return true
		}
	}
	return false
}

func (o *Options) validate() error {
	if o.Group == nil {
		return fmt.Errorf("driver: Options.Group is nil")
	}
	if o.Parser != "" {
		if _, ok := parsers.ByName(o.Parser); !ok {
			return errUnknownParser(o.Parser)
		}
	}
	return nil
}

func errUnknownParser(name parsers.Name) error {
	return fmt.Errorf("driver: unknown parser %q (want one of %v)", name, parsers.Names())
}

func (o *Options) dictionary() dict.Dictionary {
	if o.Dict == nil {
		return dict.Curated()
	}
	return o.Dict
}

func (o *Options) logger() *logrus.Logger {
	if o.Log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Log = l
	}
	return o.Log
}

func (o *Options) parserFor(path string) (parsers.Parser, parsers.Name) {
	name := o.Parser
	if name == "" {
		name = parsers.NameForPath(path)
	}
	p, ok := parsers.ByName(name)
	if !ok {
		return parsers.PlainEnglish{}, parsers.NamePlain
	}
	return p, name
}

// LintFile lints a single file.
func LintFile(ctx context.Context, path string, opts Options) (*Run, error) {
	return LintPaths(ctx, []string{path}, opts)
}

// LintText lints in-memory content registered under name (stdin, editors).
func LintText(ctx context.Context, name string, content []byte, opts Options) (*Run, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	timer := newPhaseTimer(opts.OnPhase)
	fs := source.NewFileSet()
	idx := timer.Begin("load")
	id := fs.AddVirtual(name, content)
	timer.End(idx, "")

	idx = timer.Begin("lint")
	res := lintOne(ctx, fs, id, &opts, RulesFingerprint(opts.Group), timer.Timer)
	timer.End(idx, "1 file")
	return &Run{
		FileSet: fs,
		Results: []Result{res},
		Timing:  timer.Report(),
		Cache:   opts.Cache.Stats(),
	}, nil
}

// lintOne lints a loaded file, consulting the cache first. rules is the
// group's fingerprint, computed once per run; per-file stage times go to
// stages.
func lintOne(ctx context.Context, fs *source.FileSet, id source.FileID, opts *Options, rules string, stages *observ.Timer) Result {
	file := fs.Get(id)
	res := Result{Path: file.Path, FileID: id}
	log := opts.logger().WithField("file", file.Path)
	started := time.Now()

	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	parser, parserName := opts.parserFor(file.Path)
	key := combineDigest(file.Hash, string(parserName), opts.CacheSalt, rules)
	if opts.Cache != nil {
		lints, ok, err := opts.Cache.Get(key)
		if err != nil {
			log.WithError(err).Warn("cache read failed")
		}
		if ok {
			res.Lints = lints
			res.Cached = true
			stages.Observe("cache", time.Since(started))
			log.WithField("lints", len(lints)).Debug("cache hit")
			emit(opts.Sink, Event{File: file.Path, Stage: StageLint, Status: StatusCached, Lints: len(lints), Elapsed: time.Since(started)})
			return res
		}
	}

	emit(opts.Sink, Event{File: file.Path, Stage: StageParse, Status: StatusWorking})
	parseStart := time.Now()
	doc := document.NewFromRunes(file.Text, parser, opts.dictionary())
	stages.Observe("parse", time.Since(parseStart))

	emit(opts.Sink, Event{File: file.Path, Stage: StageLint, Status: StatusWorking})
	rulesStart := time.Now()
	res.Lints = opts.Group.Lint(doc)
	linting.SortLintsBySpan(res.Lints)
	stages.Observe("rules", time.Since(rulesStart))

	if opts.Cache != nil {
		if err := opts.Cache.Put(key, file.Path, res.Lints); err != nil {
			log.WithError(err).Warn("cache write failed")
		}
	}
	log.WithFields(logrus.Fields{
		"parser": parserName,
		"lints":  len(res.Lints),
		"took":   time.Since(started),
	}).Debug("linted")
	emit(opts.Sink, Event{File: file.Path, Stage: StageLint, Status: StatusDone, Lints: len(res.Lints), Elapsed: time.Since(started)})
	return res
}
