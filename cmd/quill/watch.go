package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"quill/internal/parsers"
)

const watchDebounce = 200 * time.Millisecond

// runWatch lints args once, then re-lints changed files until ctx ends.
func runWatch(ctx context.Context, out io.Writer, req *lintRequest, args []string) error {
	log := req.env.log
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	for _, root := range args {
		if err := addWatchTree(watcher, root, req.opts.Exclude); err != nil {
			return fmt.Errorf("watch %s: %w", root, err)
		}
	}

	relint := func(paths []string) {
		run, err := req.lint(ctx, nil, paths)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				log.WithError(err).Error("lint failed")
			}
			return
		}
		if err := req.render(out, run, paths); err != nil {
			log.WithError(err).Error("render failed")
		}
	}
	relint(args)
	log.WithField("paths", args).Info("watching for changes")

	pending := map[string]bool{}
	debounce := time.NewTimer(watchDebounce)
	debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// новые каталоги тоже отслеживаем
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := addWatchTree(watcher, event.Name, req.opts.Exclude); err != nil {
						log.WithError(err).Warn("cannot watch new directory")
					}
					continue
				}
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !parsers.Supported(event.Name) && !slices.Contains(args, event.Name) {
				continue
			}
			log.WithField("file", event.Name).Debug("changed")
			pending[event.Name] = true
			debounce.Reset(watchDebounce)

		case <-debounce.C:
			var changed []string
			for p := range pending {
				if _, err := os.Stat(p); err == nil {
					changed = append(changed, p)
				}
			}
			clear(pending)
			if len(changed) == 0 {
				continue
			}
			slices.Sort(changed)
			fmt.Fprintf(out, "\n[watch] %s changed\n", plural(len(changed), "file"))
			relint(changed)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watcher error")
		}
	}
}

// addWatchTree adds root and its non-excluded subdirectories to the watcher.
// A file root is watched through its directory.
func addWatchTree(watcher *fsnotify.Watcher, root string, exclude []string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(root))
	}
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != root && matchesAny(d.Name(), exclude) {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
}

func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
