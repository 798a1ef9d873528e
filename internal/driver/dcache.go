package driver

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"quill/internal/linting"
	"quill/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты линтинга по Digest на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload stores the lints produced for one content digest.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16
	Path   string
	Lints  []CachedLint
}

// CachedLint is the msgpack form of linting.Lint.
type CachedLint struct {
	Start, End  uint32
	Kind        uint8
	Priority    uint8
	Message     string
	Rule        string
	Suggestions []CachedSuggestion
}

// CachedSuggestion is the msgpack form of linting.Suggestion.
type CachedSuggestion struct {
	Kind     uint8
	Text     string
	Template string
}

// OpenDiskCache opens a cache in dir, or in the user cache directory under
// app when dir is empty.
func OpenDiskCache(dir, app string) (*DiskCache, error) {
	if dir == "" {
		base := os.Getenv("XDG_CACHE_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			base = filepath.Join(home, ".cache")
		}
		dir = filepath.Join(base, app)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string { return c.dir }

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := key.String()
	// Подкаталог по первым двум символам, чтобы не раздувать один каталог.
	return filepath.Join(c.dir, "lints", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *DiskPayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		// после Rename временного файла уже нет
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	payload.Schema = diskCacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload. Payloads of another schema count as misses.
func (c *DiskCache) Get(key Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("decode cache entry %s: %w", key, err)
	}
	if out.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// тривиально: переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

func lintsToPayload(path string, lints []linting.Lint) *DiskPayload {
	payload := &DiskPayload{
		Schema: diskCacheSchemaVersion,
		Path:   path,
		Lints:  make([]CachedLint, len(lints)),
	}
	for i, l := range lints {
		cl := CachedLint{
			Start:    l.Span.Start,
			End:      l.Span.End,
			Kind:     uint8(l.Kind),
			Priority: uint8(l.Priority),
			Message:  l.Message,
			Rule:     l.Rule,
		}
		for _, s := range l.Suggestions {
			cl.Suggestions = append(cl.Suggestions, CachedSuggestion{
				Kind:     uint8(s.Kind),
				Text:     s.Text,
				Template: s.Template,
			})
		}
		payload.Lints[i] = cl
	}
	return payload
}

func payloadToLints(payload *DiskPayload) []linting.Lint {
	if payload == nil || payload.Schema != diskCacheSchemaVersion {
		return nil
	}
	lints := make([]linting.Lint, len(payload.Lints))
	for i, cl := range payload.Lints {
		l := linting.Lint{
			Span:     source.Span{Start: cl.Start, End: cl.End},
			Kind:     linting.LintKind(cl.Kind),
			Priority: linting.Priority(cl.Priority),
			Message:  cl.Message,
			Rule:     cl.Rule,
		}
		for _, s := range cl.Suggestions {
			l.Suggestions = append(l.Suggestions, linting.Suggestion{
				Kind:     linting.SuggestionKind(s.Kind),
				Text:     s.Text,
				Template: s.Template,
			})
		}
		lints[i] = l
	}
	return lints
}
