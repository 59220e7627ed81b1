package history

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Simplici0/stroycalc/internal/db"
	"github.com/Simplici0/stroycalc/internal/materials"
	"github.com/Simplici0/stroycalc/internal/migrations"
)

// memBackend is an in-memory Backend with injectable failures.
type memBackend struct {
	mu      sync.Mutex
	data    []byte
	loadErr error
	saveErr error
}

func (m *memBackend) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.data, nil
}

func (m *memBackend) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *memBackend) Remove(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}

func fixedClock() func() time.Time {
	t0 := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	n := 0
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		n++
		return t0.Add(time.Duration(n) * time.Second)
	}
}

func appendN(t *testing.T, s *Store, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		_, err := s.Append(context.Background(), materials.Brick, map[string]any{"n": i}, map[string]any{"quantity": i})
		require.NoError(t, err)
	}
}

func TestAppendCapsAtFiftyNewestFirst(t *testing.T) {
	s := New(&memBackend{}, WithClock(fixedClock()))
	appendN(t, s, 51)

	records, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, DefaultCapacity)

	// Record 1 was evicted; 51 is first.
	assert.EqualValues(t, 51, records[0].Input["n"])
	assert.EqualValues(t, 2, records[len(records)-1].Input["n"])
	for i := 1; i < len(records); i++ {
		assert.True(t, records[i-1].Timestamp.After(records[i].Timestamp))
	}
}

func TestAppendReturnsStoredRecord(t *testing.T) {
	s := New(&memBackend{})
	rec, err := s.Append(context.Background(), materials.Tile, map[string]any{"area": 12.0}, map[string]any{"tilesNeeded": 169})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, materials.Tile, rec.Category)
	assert.False(t, rec.Timestamp.IsZero())

	records, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)
	assert.EqualValues(t, 169, records[0].Result["tilesNeeded"])
}

func TestAppendRejectsUnknownCategory(t *testing.T) {
	backend := &memBackend{}
	_, err := New(backend).Append(context.Background(), "glass", nil, nil)
	assert.ErrorIs(t, err, materials.ErrUnknownCategory)
	assert.Nil(t, backend.data)
}

func TestIDsAreTimeOrdered(t *testing.T) {
	same := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := New(&memBackend{}, WithClock(func() time.Time { return same }))
	ctx := context.Background()

	first, err := s.Append(ctx, materials.Paint, nil, nil)
	require.NoError(t, err)
	second, err := s.Append(ctx, materials.Paint, nil, nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Less(t, first.ID, second.ID)
}

func TestClearIsIdempotent(t *testing.T) {
	s := New(&memBackend{})
	appendN(t, s, 3)

	ctx := context.Background()
	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))

	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.NotNil(t, records)
}

func TestFilter(t *testing.T) {
	s := New(&memBackend{}, WithClock(fixedClock()))
	ctx := context.Background()
	for _, c := range []materials.Category{materials.Brick, materials.Tile, materials.Brick, materials.Mortar} {
		_, err := s.Append(ctx, c, nil, nil)
		require.NoError(t, err)
	}
	records, err := s.List(ctx)
	require.NoError(t, err)

	bricks := Filter(records, materials.Brick)
	require.Len(t, bricks, 2)
	assert.Equal(t, records[1].ID, bricks[0].ID)
	assert.Equal(t, records[3].ID, bricks[1].ID)

	assert.Empty(t, Filter(records, materials.Concrete))
	assert.Len(t, Filter(records, ""), 4)

	// Filtering never touches storage.
	after, err := s.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, records, after)
}

func TestCorruptHistory(t *testing.T) {
	backend := &memBackend{data: []byte(`{"version":1,"records":[{"id":`)}
	s := New(backend)
	ctx := context.Background()

	_, err := s.List(ctx)
	assert.ErrorIs(t, err, ErrPersistence)

	_, err = s.Append(ctx, materials.Brick, nil, nil)
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Equal(t, `{"version":1,"records":[{"id":`, string(backend.data), "corrupt data must not be overwritten")

	require.NoError(t, s.Clear(ctx))
	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestUnsupportedVersion(t *testing.T) {
	s := New(&memBackend{data: []byte(`{"version":2,"records":[]}`)})
	_, err := s.List(context.Background())
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestLegacyArrayIsDecoded(t *testing.T) {
	legacy := `[
		{"id":"1714564800000","type":"tile","params":{"area":"12"},"result":{"tilesNeeded":169},"date":"2024-05-01T12:00:00.000Z"},
		{"id":"1714564700000","type":"brick","params":{"area":"20"},"result":{"quantity":1020},"date":"2024-05-01T11:58:20.000Z"}
	]`
	backend := &memBackend{data: []byte(legacy)}
	s := New(backend)
	ctx := context.Background()

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "1714564800000", records[0].ID)
	assert.Equal(t, materials.Tile, records[0].Category)
	assert.Equal(t, "12", records[0].Input["area"])
	assert.Equal(t, 2024, records[0].Timestamp.Year())

	// The next append upgrades the layout to the versioned envelope.
	_, err = s.Append(ctx, materials.Mortar, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, string(backend.data), `"version":1`)

	records, err = s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, materials.Brick, records[2].Category)
}

func TestFailedSaveRecordsNothing(t *testing.T) {
	backend := &memBackend{}
	s := New(backend)
	ctx := context.Background()
	appendN(t, s, 2)

	backend.saveErr = errors.New("disk full")
	_, err := s.Append(ctx, materials.Brick, nil, nil)
	require.ErrorIs(t, err, ErrPersistence)
	assert.ErrorContains(t, err, "disk full")

	backend.saveErr = nil
	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestFailedLoad(t *testing.T) {
	s := New(&memBackend{loadErr: errors.New("unavailable")})
	_, err := s.List(context.Background())
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestConcurrentAppendsKeepCap(t *testing.T) {
	s := New(&memBackend{})
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 80; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := s.Append(ctx, materials.Concrete, map[string]any{"i": i}, nil)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	records, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, DefaultCapacity)

	seen := make(map[string]bool, len(records))
	for _, r := range records {
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
}

func TestWithCapacity(t *testing.T) {
	s := New(&memBackend{}, WithCapacity(3), WithCapacity(0))
	appendN(t, s, 5)
	records, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, records, 3)
}

func TestFileBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "history.json")
	s := New(NewFileBackend(path), WithClock(fixedClock()))
	ctx := context.Background()

	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	appendN(t, s, 3)

	reopened := New(NewFileBackend(path))
	records, err = reopened.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.EqualValues(t, 3, records[0].Input["n"])

	require.NoError(t, reopened.Clear(ctx))
	require.NoError(t, reopened.Clear(ctx))
	assert.NoFileExists(t, path)
}

func TestSQLiteBackend(t *testing.T) {
	ctx := context.Background()
	database, err := db.Open(ctx, filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer database.Close()
	require.NoError(t, migrations.Up(ctx, database, zerolog.Nop()))

	s := New(NewSQLiteBackend(database), WithClock(fixedClock()))
	records, err := s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	appendN(t, s, 51)

	var n int
	require.NoError(t, database.QueryRowContext(ctx, `SELECT COUNT(*) FROM kv_store WHERE key = ?`, Key).Scan(&n))
	assert.Equal(t, 1, n)

	records, err = New(NewSQLiteBackend(database)).List(ctx)
	require.NoError(t, err)
	assert.Len(t, records, DefaultCapacity)

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx))
	records, err = s.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}
