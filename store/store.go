// Package store keeps the last known snapshot of each stocktake in an
// in-process bigcache instance. Entries are JSON encoded, so statuses are
// persisted as their canonical tokens and strictly re-validated on read.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/allegro/bigcache/v3"

	"github.com/grasp-labs/ds-go-katana-models/middleware/interfaces"
	"github.com/grasp-labs/ds-go-katana-models/models"
)

var (
	ErrNotFound = errors.New("stocktake not found")
	ErrInvalid  = errors.New("invalid stocktake")
)

const keyPrefix = "stocktake:"

type Store struct {
	cache  *bigcache.BigCache
	logger interfaces.Logger
}

func New(cache *bigcache.BigCache, logger interfaces.Logger) *Store {
	return &Store{cache: cache, logger: logger}
}

// NewFromConfig uses the shared API cache of the service config.
func NewFromConfig(cfg interfaces.Config, logger interfaces.Logger) (*Store, error) {
	cache := cfg.APICache()
	if cache == nil {
		return nil, fmt.Errorf("store: config %q has no API cache", cfg.Name())
	}
	return New(cache, logger), nil
}

func key(id int64) string {
	return keyPrefix + strconv.FormatInt(id, 10)
}

// Put validates and stores a snapshot, replacing any previous one.
func (s *Store) Put(ctx context.Context, st models.Stocktake) error {
	if errs := st.Validate(); len(errs) > 0 {
		return fmt.Errorf("%w %d: %w", ErrInvalid, st.ID, models.JoinValidationErrors(errs))
	}

	data, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encoding stocktake %d: %w", st.ID, err)
	}

	if err := s.cache.Set(key(st.ID), data); err != nil {
		s.logger.Error(ctx, "Failed to cache stocktake %d: %v", st.ID, err)
		return fmt.Errorf("caching stocktake %d: %w", st.ID, err)
	}
	return nil
}

// Get returns the snapshot for id. A stored entry carrying an unknown
// status token fails with models.ErrInvalidEnumValue.
func (s *Store) Get(ctx context.Context, id int64) (models.Stocktake, error) {
	data, err := s.cache.Get(key(id))
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return models.Stocktake{}, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return models.Stocktake{}, fmt.Errorf("reading stocktake %d: %w", id, err)
	}

	return s.decode(ctx, data)
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	err := s.cache.Delete(key(id))
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return fmt.Errorf("deleting stocktake %d: %w", id, err)
	}
	return nil
}

// List returns all snapshots ordered by id, optionally restricted to one
// status.
func (s *Store) List(ctx context.Context, status *models.StocktakeStatus) ([]models.Stocktake, error) {
	var all []models.Stocktake

	it := s.cache.Iterator()
	for it.SetNext() {
		entry, err := it.Value()
		if err != nil {
			return nil, fmt.Errorf("iterating stocktakes: %w", err)
		}
		if !strings.HasPrefix(entry.Key(), keyPrefix) {
			continue
		}

		st, err := s.decode(ctx, entry.Value())
		if err != nil {
			return nil, err
		}
		all = append(all, st)
	}

	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	if status == nil {
		return all, nil
	}
	return models.StocktakeList{Data: all}.Filter(*status), nil
}

func (s *Store) decode(ctx context.Context, data []byte) (models.Stocktake, error) {
	var st models.Stocktake
	if err := json.Unmarshal(data, &st); err != nil {
		s.logger.Error(ctx, "Corrupt stocktake entry: %v", err)
		return models.Stocktake{}, fmt.Errorf("decoding stocktake: %w", err)
	}
	return st, nil
}
