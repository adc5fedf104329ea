package input

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/advent/pkg/puzzle"
)

// stubFetcher serves canned inputs and counts calls per day.
type stubFetcher struct {
	inputs map[puzzle.Day]string
	err    error
	gate   chan struct{} // when set, Fetch blocks until closed

	mu    sync.Mutex
	calls map[puzzle.Day]int
}

func newStubFetcher(inputs map[puzzle.Day]string) *stubFetcher {
	return &stubFetcher{inputs: inputs, calls: make(map[puzzle.Day]int)}
}

func (f *stubFetcher) Fetch(ctx context.Context, day puzzle.Day) (string, error) {
	f.mu.Lock()
	f.calls[day]++
	f.mu.Unlock()
	if f.gate != nil {
		select {
		case <-f.gate:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if f.err != nil {
		return "", f.err
	}
	return f.inputs[day], nil
}

func (f *stubFetcher) count(day puzzle.Day) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[day]
}

// countingStore wraps a store and counts reads.
type countingStore struct {
	Store
	gets atomic.Int32
}

func (s *countingStore) Get(ctx context.Context, day puzzle.Day) (string, bool, error) {
	s.gets.Add(1)
	return s.Store.Get(ctx, day)
}

type failingPutStore struct {
	Store
}

func (failingPutStore) Put(_ context.Context, day puzzle.Day, _ string) error {
	return &IOError{Day: day, Op: "write cache", Err: errors.New("disk full")}
}

func TestProvider_CacheHitSkipsNetwork(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day1.in"), []byte("cached"), 0o644))
	fetcher := newStubFetcher(nil)
	p := NewProvider(NewFileStore(dir), fetcher, nil)

	text, err := p.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "cached", text)
	assert.Zero(t, fetcher.count(1))
}

func TestProvider_MissFetchesAndPersists(t *testing.T) {
	dir := t.TempDir()
	fetcher := newStubFetcher(map[puzzle.Day]string{2: "7 6 4 2 1\n"})
	p := NewProvider(NewFileStore(dir), fetcher, nil)

	text, err := p.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "7 6 4 2 1\n", text)

	onDisk, err := os.ReadFile(filepath.Join(dir, "day2.in"))
	require.NoError(t, err)
	assert.Equal(t, text, string(onDisk), "fetched input reads back identically")

	// A new run reads from the cache without touching the network.
	again, err := NewProvider(NewFileStore(dir), fetcher, nil).Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, text, again)
	assert.Equal(t, 1, fetcher.count(2))
}

func TestProvider_MemoizesWithinRun(t *testing.T) {
	store := &countingStore{Store: NewFileStore(t.TempDir())}
	fetcher := newStubFetcher(map[puzzle.Day]string{3: "mul(2,4)"})
	p := NewProvider(store, fetcher, nil)
	ctx := context.Background()

	for range 5 {
		text, err := p.Get(ctx, 3)
		require.NoError(t, err)
		assert.Equal(t, "mul(2,4)", text)
	}
	assert.Equal(t, 1, fetcher.count(3))
	assert.Equal(t, int32(1), store.gets.Load())
}

func TestProvider_ConcurrentCallersShareOneFetch(t *testing.T) {
	fetcher := newStubFetcher(map[puzzle.Day]string{4: "XMAS"})
	fetcher.gate = make(chan struct{})
	p := NewProvider(NewFileStore(t.TempDir()), fetcher, nil)

	var wg sync.WaitGroup
	results := make([]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text, err := p.Get(context.Background(), 4)
			assert.NoError(t, err)
			results[i] = text
		}(i)
	}
	close(fetcher.gate)
	wg.Wait()

	assert.Equal(t, 1, fetcher.count(4))
	for _, r := range results {
		assert.Equal(t, "XMAS", r)
	}
}

func TestProvider_CancelledCallerDoesNotFailOthers(t *testing.T) {
	fetcher := newStubFetcher(map[puzzle.Day]string{5: "47|53"})
	fetcher.gate = make(chan struct{})
	p := NewProvider(NewFileStore(t.TempDir()), fetcher, nil)

	other := make(chan error, 1)
	var text string
	go func() {
		var err error
		text, err = p.Get(context.Background(), 5)
		other <- err
	}()
	require.Eventually(t, func() bool { return fetcher.count(5) == 1 }, 5*time.Second, 5*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Get(ctx, 5)
	assert.ErrorIs(t, err, context.Canceled)

	close(fetcher.gate)
	select {
	case err := <-other:
		require.NoError(t, err)
		assert.Equal(t, "47|53", text)
	case <-time.After(5 * time.Second):
		t.Fatal("live caller never received the shared load")
	}
	assert.Equal(t, 1, fetcher.count(5))
}

func TestProvider_FirstCallerCancelledLoadStillCompletes(t *testing.T) {
	fetcher := newStubFetcher(map[puzzle.Day]string{6: "....#"})
	fetcher.gate = make(chan struct{})
	p := NewProvider(NewFileStore(t.TempDir()), fetcher, nil)

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := p.Get(ctx, 6)
		first <- err
	}()
	require.Eventually(t, func() bool { return fetcher.count(6) == 1 }, 5*time.Second, 5*time.Millisecond)

	second := make(chan error, 1)
	var text string
	go func() {
		var err error
		text, err = p.Get(context.Background(), 6)
		second <- err
	}()

	cancel()
	assert.ErrorIs(t, <-first, context.Canceled)

	close(fetcher.gate)
	require.NoError(t, <-second)
	assert.Equal(t, "....#", text)
	assert.Equal(t, 1, fetcher.count(6))
}

func TestProvider_ErrorsPropagate(t *testing.T) {
	t.Run("fetch failure is not cached", func(t *testing.T) {
		fetcher := newStubFetcher(nil)
		fetcher.err = &AuthError{Day: 5, Op: "fetch input", Status: 400}
		dir := t.TempDir()
		p := NewProvider(NewFileStore(dir), fetcher, nil)

		_, err := p.Get(context.Background(), 5)
		require.Error(t, err)
		assert.True(t, IsAuth(err))
		assert.NoFileExists(t, filepath.Join(dir, "day5.in"))

		fetcher.err = nil
		fetcher.inputs = map[puzzle.Day]string{5: "ok"}
		text, err := p.Get(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, "ok", text)
	})

	t.Run("cache write failure", func(t *testing.T) {
		fetcher := newStubFetcher(map[puzzle.Day]string{6: "data"})
		p := NewProvider(failingPutStore{NewFileStore(t.TempDir())}, fetcher, nil)

		_, err := p.Get(context.Background(), 6)
		require.Error(t, err)
		assert.True(t, IsIO(err))
	})

	t.Run("cache read failure stops before fetching", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "input")
		require.NoError(t, os.WriteFile(path, nil, 0o644))
		fetcher := newStubFetcher(map[puzzle.Day]string{7: "data"})
		p := NewProvider(NewFileStore(path), fetcher, nil)

		_, err := p.Get(context.Background(), 7)
		require.Error(t, err)
		assert.True(t, IsIO(err))
		assert.Zero(t, fetcher.count(7))
	})
}

func TestProvider_Cached(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "day1.in"), []byte("x"), 0o644))
	p := NewProvider(NewFileStore(dir), newStubFetcher(nil), nil)
	ctx := context.Background()

	ok, err := p.Cached(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.Cached(ctx, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}
