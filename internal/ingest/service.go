// Package ingest orchestrates an ingestion run: the five record kinds are
// loaded independently and in parallel, assembled into a dataset, cached, and
// persisted. A failure in one kind never blocks the others; only a bundle with
// zero usable sources is surfaced as an error.
package ingest

import (
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"lindash/internal/cache"
	"lindash/internal/export"
	"lindash/internal/models"
	"lindash/internal/snapshot"
)

// ErrNoSources is returned when none of the five source files exist in the
// uploaded bundle. This is the one structural failure the caller must see.
var ErrNoSources = errors.New("no usable source files found in export bundle")

// currentKey is the cache slot of the active dataset.
const currentKey = "current"

// Service loads export bundles and tracks the current dataset. The current
// export identifier lives in the snapshot store, not in process globals, so
// repeated ingestions stay independent.
type Service struct {
	logger zerolog.Logger
	cache  *cache.Cache
	store  *snapshot.Store // may be nil when the store failed to open
	ttl    time.Duration
}

// New creates an ingestion service. store may be nil; the service then serves
// from memory only.
func New(logger zerolog.Logger, store *snapshot.Store, ttl time.Duration) *Service {
	return &Service{
		logger: logger,
		cache:  cache.New(),
		store:  store,
		ttl:    ttl,
	}
}

// Load parses all five record kinds from an extracted export directory. The
// kinds are mutually independent and load concurrently.
func (s *Service) Load(dir, exportID string) (*models.Dataset, error) {
	n := len(export.Schemas)
	collections := make([][]models.Record, n)
	diags := make([]export.Diagnostics, n)

	var wg sync.WaitGroup
	for i, schema := range export.Schemas {
		wg.Add(1)
		go func(i int, schema export.Schema) {
			defer wg.Done()
			collections[i], diags[i] = export.Load(dir, schema)
		}(i, schema)
	}
	wg.Wait()

	missing := 0
	for _, d := range diags {
		if d.SourceMissing {
			missing++
			s.logger.Warn().Str("kind", d.Kind).Msg("Source file missing, continuing with empty collection")
			continue
		}
		if d.HeaderNotFound {
			s.logger.Warn().Str("kind", d.Kind).Msg("No header row found, content discarded")
		}
		s.logger.Info().
			Str("kind", d.Kind).
			Int("records", d.RowsParsed).
			Int("dropped", d.RowsDropped).
			Msg("Source loaded")
	}
	if missing == n {
		return nil, ErrNoSources
	}

	d := &models.Dataset{ExportID: exportID}
	for i, schema := range export.Schemas {
		switch schema.Kind {
		case models.KindInvitations:
			d.Invitations = collections[i]
		case models.KindJobs:
			d.Jobs = collections[i]
		case models.KindMessages:
			d.Messages = collections[i]
		case models.KindRichMedia:
			d.RichMedia = collections[i]
		case models.KindConnections:
			d.Connections = collections[i]
		}
	}

	return d, nil
}

// Ingest runs a full ingestion: load, cache, persist. The snapshot write is
// best-effort; a store failure downgrades to memory-only serving.
func (s *Service) Ingest(dir, exportID string) (*models.Dataset, error) {
	d, err := s.Load(dir, exportID)
	if err != nil {
		return nil, err
	}

	s.cache.Set(currentKey, d, s.ttl)

	if s.store != nil {
		if err := s.store.Save(d); err != nil {
			s.logger.Warn().Err(err).Msg("Failed to persist snapshot, serving from memory only")
		}
	}

	return d, nil
}

// Current returns the active dataset: cached if fresh, otherwise rehydrated
// from the snapshot store. Returns nil when nothing was ever ingested.
func (s *Service) Current() *models.Dataset {
	if d, ok := s.cache.Get(currentKey); ok {
		return d
	}

	if s.store == nil {
		return nil
	}

	d, err := s.store.Current()
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to read snapshot")
		return nil
	}
	if d == nil {
		return nil
	}

	s.cache.Set(currentKey, d, s.ttl)
	s.logger.Info().Str("export_id", d.ExportID).Msg("Rehydrated dataset from snapshot")
	return d
}
