package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"quill/internal/parsers"
	"quill/internal/source"
)

// ListFiles returns the sorted, de-duplicated files to lint for paths.
// Files named explicitly are kept whatever their extension; directories
// are walked for supported extensions, skipping excluded names.
func ListFiles(paths []string, exclude []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(p string) {
		// тот же вид, что у source.File.Path, чтобы события совпадали со списком
		p = filepath.ToSlash(filepath.Clean(p))
		if !seen[p] {
			seen[p] = true
			files = append(files, p)
		}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if path != root && excluded(d.Name(), exclude) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.IsDir() && parsers.Supported(path) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

func excluded(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := filepath.Match(p, name); err == nil && ok {
			return true
		}
	}
	return false
}

// LintDir lints every supported file under dir in parallel.
func LintDir(ctx context.Context, dir string, opts Options) (*Run, error) {
	return LintPaths(ctx, []string{dir}, opts)
}

// LintPaths lints files and directories in parallel. Per-file failures are
// reported in Result.Err; the returned error is for setup failures and
// cancellation.
func LintPaths(ctx context.Context, paths []string, opts Options) (*Run, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	log := opts.logger()
	timer := newPhaseTimer(opts.OnPhase)

	idx := timer.Begin("discover")
	files, err := ListFiles(paths, opts.Exclude)
	timer.End(idx, fmt.Sprintf("%d files", len(files)))
	if err != nil {
		return nil, err
	}

	base := "."
	if len(paths) == 1 {
		if info, statErr := os.Stat(paths[0]); statErr == nil && info.IsDir() {
			base = paths[0]
		}
	}
	fileSet := source.NewFileSetWithBase(base)
	run := &Run{FileSet: fileSet, Results: make([]Result, len(files))}
	if len(files) == 0 {
		run.Timing = timer.Report()
		return run, nil
	}

	// Загружаем файлы последовательно: FileSet не потокобезопасен на запись.
	idx = timer.Begin("load")
	fileIDs := make([]source.FileID, len(files))
	loadErrors := make(map[int]error)
	for i, path := range files {
		emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusQueued})
		id, err := fileSet.Load(path)
		if err != nil {
			loadErrors[i] = err
			continue
		}
		fileIDs[i] = id
	}
	timer.End(idx, "")

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	idx = timer.Begin("lint")
	rules := RulesFingerprint(opts.Group)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			if err := gctx.Err(); err != nil {
				return err
			}
			if loadErr, failed := loadErrors[i]; failed {
				log.WithError(loadErr).WithField("file", path).Warn("failed to load file")
				run.Results[i] = Result{Path: path, Err: fmt.Errorf("load %s: %w", path, loadErr)}
				emit(opts.Sink, Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErr})
				return nil
			}
			// индекс i уникален, мьютекс не нужен
			run.Results[i] = lintOne(gctx, fileSet, fileIDs[i], &opts, rules, timer.Timer)
			return nil
		})
	}
	waitErr := g.Wait()
	timer.End(idx, fmt.Sprintf("%d files, jobs=%d", len(files), jobs))

	run.Timing = timer.Report()
	run.Cache = opts.Cache.Stats()
	if waitErr != nil {
		if errors.Is(waitErr, context.Canceled) || errors.Is(waitErr, context.DeadlineExceeded) {
			log.WithError(waitErr).Debug("lint run cancelled")
		}
		return run, waitErr
	}
	return run, nil
}
