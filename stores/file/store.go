// Package file persists the counter as a single pretty-printed JSON document.
package file

import (
	"context"
	"math"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/weegigs/wee-counter/counter"
)

// Path is the location of the counter document.
type Path string

type StoreOption func(store *Store)

func Logger(log *zerolog.Logger) StoreOption {
	return func(store *Store) {
		store.log = log
	}
}

type Store struct {
	path string
	log  *zerolog.Logger
}

// document mirrors the file layout. Count is decoded loosely so that any
// malformed value can be reported and treated as zero.
type document struct {
	Count *float64 `json:"count"`
}

// Open returns a store for path, creating the file with a zero count if it
// does not exist yet.
func Open(ctx context.Context, path Path, options ...StoreOption) (*Store, error) {
	store := &Store{path: string(path)}
	for _, option := range options {
		option(store)
	}
	if store.log == nil {
		store.log = &log.Logger
	}

	_, err := os.Stat(store.path)
	switch {
	case err == nil:
		return store, nil
	case errors.Is(err, os.ErrNotExist):
		if err := store.Write(ctx, counter.Counter{}); err != nil {
			return nil, errors.Wrapf(err, "failed to create counter file %s", store.path)
		}
		store.log.Info().Str("path", store.path).Msg("created counter file")
		return store, nil
	default:
		return nil, errors.Wrapf(err, "failed to inspect counter file %s", store.path)
	}
}

func (s *Store) Path() string {
	return s.path
}

// Read never fails. A missing, unreadable or malformed file reads as zero; a
// missing file is recreated.
func (s *Store) Read(ctx context.Context) (counter.Counter, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := s.Write(ctx, counter.Counter{}); err != nil {
				s.log.Warn().Err(err).Str("path", s.path).Msg("failed to recreate counter file")
			}
		} else {
			s.log.Warn().Err(err).Str("path", s.path).Msg("failed to read counter file")
		}
		return counter.Counter{}, nil
	}

	var doc document
	if err := json.UnmarshalContext(ctx, content, &doc); err != nil {
		s.log.Warn().Err(err).Str("path", s.path).Msg("malformed counter file")
		return counter.Counter{}, nil
	}

	count, ok := wholeCount(doc.Count)
	if !ok {
		s.log.Warn().Str("path", s.path).Msg("counter file has no usable count")
		return counter.Counter{}, nil
	}

	return counter.Counter{Count: count}, nil
}

func wholeCount(value *float64) (int, bool) {
	if value == nil {
		return 0, false
	}

	v := *value
	if v < 0 || v != math.Trunc(v) || v >= float64(math.MaxInt) {
		return 0, false
	}

	return int(v), true
}

// Write replaces the file through a temporary sibling so readers never see a
// partially written document.
func (s *Store) Write(_ context.Context, state counter.Counter) error {
	content, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to encode counter")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+"-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temporary counter file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return errors.Wrap(err, "failed to write counter")
	}

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return errors.Wrap(err, "failed to set counter file mode")
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close counter file")
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return errors.Wrapf(err, "failed to replace counter file %s", s.path)
	}

	return nil
}
