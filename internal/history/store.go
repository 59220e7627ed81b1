package history

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"sync"
	"time"

	"github.com/Simplici0/stroycalc/internal/materials"
)

const (
	// Key is the well-known key the serialized history lives under.
	Key = "calculation_history"

	// DefaultCapacity is the maximum number of records kept.
	DefaultCapacity = 50

	formatVersion = 1
)

// ErrPersistence marks a failed or corrupt read or write of the backing
// storage. The calculation that produced a record is unaffected by it.
var ErrPersistence = errors.New("history persistence failed")

// Backend stores the serialized history as one opaque value.
// Load returns nil data when nothing has been saved.
type Backend interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Remove(ctx context.Context) error
}

// Store is a bounded, newest-first log of calculations. All operations on a
// Store are serialized, so concurrent Appends never lose records or exceed
// the capacity.
type Store struct {
	backend  Backend
	capacity int
	now      func() time.Time
	ids      *idSource

	mu sync.Mutex
}

// Option configures a Store.
type Option func(*Store)

// WithCapacity overrides DefaultCapacity. Non-positive values are ignored.
func WithCapacity(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		capacity: DefaultCapacity,
		now:      time.Now,
		ids:      newIDSource(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// envelope is the persisted layout. Version 1 is the only one written.
type envelope struct {
	Version int      `json:"version"`
	Records []Record `json:"records"`
}

// Append records a calculation at the head of the history and evicts the
// oldest records beyond capacity. On error nothing is recorded; a corrupt
// stored history is reported rather than overwritten.
func (s *Store) Append(ctx context.Context, category materials.Category, input, result map[string]any) (Record, error) {
	if _, err := materials.ParseCategory(string(category)); err != nil {
		return Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load(ctx)
	if err != nil {
		return Record{}, err
	}

	now := s.now().UTC()
	id, err := s.ids.next(now)
	if err != nil {
		return Record{}, fmt.Errorf("%w: generate id: %w", ErrPersistence, err)
	}
	rec := Record{
		ID:        id,
		Category:  category,
		Timestamp: now,
		Input:     maps.Clone(input),
		Result:    maps.Clone(result),
	}

	records = append([]Record{rec}, records...)
	if len(records) > s.capacity {
		records = records[:s.capacity]
	}
	if err := s.save(ctx, records); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// List returns every record, newest first. An empty history yields an empty
// slice. Callers that cannot surface a corrupt history should treat an
// ErrPersistence here as empty.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Clear removes every record. Clearing an empty history is not an error.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.Remove(ctx); err != nil {
		return fmt.Errorf("%w: clear: %w", ErrPersistence, err)
	}
	return nil
}

// Filter returns the records of category in their original order. An empty
// category matches everything. It never touches storage.
func Filter(records []Record, category materials.Category) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if category == "" || r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

func (s *Store) load(ctx context.Context) ([]Record, error) {
	data, err := s.backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: load: %w", ErrPersistence, err)
	}
	records, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrPersistence, err)
	}
	return records, nil
}

func (s *Store) save(ctx context.Context, records []Record) error {
	data, err := json.Marshal(envelope{Version: formatVersion, Records: records})
	if err != nil {
		return fmt.Errorf("%w: encode: %w", ErrPersistence, err)
	}
	if err := s.backend.Save(ctx, data); err != nil {
		return fmt.Errorf("%w: save: %w", ErrPersistence, err)
	}
	return nil
}

// decode accepts the versioned envelope and the bare array written by
// earlier releases.
func decode(data []byte) ([]Record, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return []Record{}, nil
	}

	if data[0] == '[' {
		var legacy []legacyRecord
		if err := json.Unmarshal(data, &legacy); err != nil {
			return nil, err
		}
		records := make([]Record, 0, len(legacy))
		for _, l := range legacy {
			records = append(records, l.record())
		}
		return records, nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Version != formatVersion {
		return nil, fmt.Errorf("unsupported history version %d", env.Version)
	}
	return orEmpty(env.Records), nil
}

// legacyRecord is the element of the bare array layout. It names the
// category "type", the input "params" and the timestamp "date".
type legacyRecord struct {
	Record
	Type   materials.Category `json:"type"`
	Params map[string]any     `json:"params"`
	Date   time.Time          `json:"date"`
}

func (l legacyRecord) record() Record {
	r := l.Record
	if r.Category == "" {
		r.Category = l.Type
	}
	if r.Input == nil {
		r.Input = l.Params
	}
	if r.Timestamp.IsZero() {
		r.Timestamp = l.Date
	}
	return r
}

func orEmpty(records []Record) []Record {
	if records == nil {
		return []Record{}
	}
	return records
}
