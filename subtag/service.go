/*
Copyright 2026 BCP47 Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package subtag

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-logr/logr"
	gocache "github.com/patrickmn/go-cache"
)

// Errors signalled by Service refresh operations.
var (
	// ErrNotNewer reports that a fetched registry's file date is not
	// strictly newer than the dataset currently held; the refresh is a
	// no-op and the existing dataset is retained.
	ErrNotNewer = errors.New("registry file date is not newer than the current dataset")
	// ErrRegistryErrors reports that a fetched registry parsed with
	// errors, which disqualifies it from automatic adoption.
	ErrRegistryErrors = errors.New("registry parsed with errors")
)

const (
	classifyCacheTTL     = 5 * time.Minute
	classifyCacheCleanup = 10 * time.Minute
)

// Service owns the process-wide dataset. It publishes an Index built either
// from a persisted snapshot or from a freshly fetched registry, and gates
// refreshes so a new dataset is adopted only when it is strictly newer and
// parsed cleanly. The published Index is replaced wholesale, never patched:
// readers always observe a fully populated table set.
//
// Classify and the composer operations read the published Index and may run
// concurrently with each other and with a refresh in progress.
type Service struct {
	store   Store
	fetcher Fetcher
	log     logr.Logger

	// refreshMu serializes refreshes: the date comparison and the swap
	// must not interleave between two concurrent refreshes.
	refreshMu sync.Mutex

	mu       sync.RWMutex
	index    *Index
	fileDate time.Time

	classifyCache *gocache.Cache
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger used by load and refresh
// operations. The default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(s *Service) { s.log = log }
}

// NewService creates a Service backed by the given snapshot store and
// registry fetcher. Either may be nil: a nil store skips persistence, a nil
// fetcher makes Refresh fail. The Service starts with an empty dataset;
// call Load or Refresh to populate it.
func NewService(store Store, fetcher Fetcher, opts ...Option) *Service {
	s := &Service{
		store:         store,
		fetcher:       fetcher,
		log:           logr.Discard(),
		index:         NewIndex(nil),
		classifyCache: gocache.New(classifyCacheTTL, classifyCacheCleanup),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Index returns the currently published Index. The returned value is an
// immutable snapshot: it stays valid and consistent even if a refresh
// publishes a newer Index afterwards.
func (s *Service) Index() *Index {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index
}

// FileDate returns the registry file date of the published dataset, or the
// zero time when nothing has been loaded.
func (s *Service) FileDate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fileDate
}

// Load populates the dataset from the snapshot store. Unlike a refresh, a
// snapshot is adopted unconditionally: a caller may prefer a known-imperfect
// cached dataset over an empty one while a refresh runs in the background.
func (s *Service) Load() error {
	if s.store == nil {
		return errors.New("no snapshot store configured")
	}
	records, fileDate, err := s.store.Load()
	if err != nil {
		return fmt.Errorf("loading snapshot: %w", err)
	}
	s.publish(NewIndex(records), fileDate)
	s.log.Info("snapshot loaded", "records", len(records), "fileDate", fileDate.Format(dateLayout))
	return nil
}

// Refresh fetches the registry, parses it, and adopts the result if and
// only if its file date is strictly newer than the current dataset's and
// the parse reported zero errors. On adoption the new dataset is written
// back through the store. ErrNotNewer and ErrRegistryErrors identify the
// two rejection outcomes; the existing dataset is retained in both cases.
func (s *Service) Refresh(ctx context.Context) error {
	if s.fetcher == nil {
		return errors.New("no registry fetcher configured")
	}

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	body, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}
	defer body.Close()

	result, err := ParseRegistry(body)
	if err != nil {
		return fmt.Errorf("parsing registry: %w", err)
	}

	if !result.FileDate.After(s.FileDate()) {
		s.log.V(1).Info("registry not newer, keeping current dataset",
			"fetched", result.FileDate.Format(dateLayout),
			"current", s.FileDate().Format(dateLayout))
		return ErrNotNewer
	}
	if !result.NoErrors() {
		for line, flags := range result.Errors {
			s.log.Info("registry parse error", "line", line, "error", flags.String())
		}
		return fmt.Errorf("%w: %d malformed lines", ErrRegistryErrors, len(result.Errors))
	}

	index := NewIndex(result.Records)
	s.publish(index, result.FileDate)
	s.log.Info("registry refreshed",
		"records", len(result.Records), "fileDate", result.FileDate.Format(dateLayout))

	if s.store != nil {
		if err := s.store.Save(index.UniqueRecords(), result.FileDate); err != nil {
			return fmt.Errorf("saving snapshot: %w", err)
		}
	}
	return nil
}

// RefreshAsync runs Refresh off the caller's flow of control and delivers
// its single terminal outcome on the returned channel. The channel is
// buffered; the result may be ignored.
func (s *Service) RefreshAsync(ctx context.Context) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- s.Refresh(ctx)
	}()
	return done
}

// publish atomically swaps in a fully built index and invalidates cached
// classifications.
func (s *Service) publish(index *Index, fileDate time.Time) {
	s.mu.Lock()
	s.index = index
	s.fileDate = fileDate
	s.mu.Unlock()
	s.classifyCache.Flush()
}

// Classify classifies a tag against the published Index, caching results
// for repeated queries. The cache is flushed whenever a new dataset is
// published.
func (s *Service) Classify(tag string) []TagSegment {
	if cached, ok := s.classifyCache.Get(tag); ok {
		return cached.([]TagSegment)
	}
	segments := s.Index().Classify(tag)
	s.classifyCache.Set(tag, segments, gocache.DefaultExpiration)
	return segments
}
