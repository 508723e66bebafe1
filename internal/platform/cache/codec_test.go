package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Symbol string
	Price  float64
	When   time.Time
	Beta   *float64
}

func TestCodec_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewCodec(NewMemoryStore(10))

	beta := 1.1
	in := sample{Symbol: "AHLA.DE", Price: 91.2, When: time.Date(2024, 3, 1, 14, 30, 0, 0, time.UTC), Beta: &beta}
	c.Save(ctx, "k", in, time.Minute)

	var out sample
	require.True(t, c.Load(ctx, "k", &out))
	assert.Equal(t, in.Symbol, out.Symbol)
	assert.Equal(t, in.Price, out.Price)
	assert.True(t, in.When.Equal(out.When))
	require.NotNil(t, out.Beta)
	assert.Equal(t, beta, *out.Beta)
}

func TestCodec_CorruptedEntryIsDeleted(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore(10)
	require.NoError(t, store.Set(ctx, "k", []byte{0xc1}, time.Minute))

	c := NewCodec(store)
	var out sample
	assert.False(t, c.Load(ctx, "k", &out))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)
}

func TestCodec_NilIsNoop(t *testing.T) {
	var c *Codec
	c.Save(context.Background(), "k", 1, time.Minute)
	var v int
	assert.False(t, c.Load(context.Background(), "k", &v))
	assert.Nil(t, c.Store())

	assert.False(t, NewCodec(nil).Load(context.Background(), "k", &v))
}

func TestFetch(t *testing.T) {
	ctx := context.Background()

	t.Run("loads once then serves from cache", func(t *testing.T) {
		c := NewCodec(NewMemoryStore(10))
		calls := 0
		load := func(context.Context) ([]string, error) {
			calls++
			return []string{"AHLA.DE"}, nil
		}

		for range 3 {
			v, err := Fetch(ctx, c, "k", time.Minute, load)
			require.NoError(t, err)
			assert.Equal(t, []string{"AHLA.DE"}, v)
		}
		assert.Equal(t, 1, calls)
	})

	t.Run("errors are not cached", func(t *testing.T) {
		c := NewCodec(NewMemoryStore(10))
		calls := 0
		load := func(context.Context) (int, error) {
			calls++
			if calls == 1 {
				return 0, errors.New("yahoo http 500")
			}
			return 42, nil
		}

		_, err := Fetch(ctx, c, "k", time.Minute, load)
		require.Error(t, err)
		v, err := Fetch(ctx, c, "k", time.Minute, load)
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	})

	t.Run("concurrent misses share one load", func(t *testing.T) {
		c := NewCodec(NewMemoryStore(10))
		var calls atomic.Int32
		release := make(chan struct{})
		load := func(context.Context) (int, error) {
			calls.Add(1)
			<-release
			return 7, nil
		}

		var wg sync.WaitGroup
		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := Fetch(ctx, c, "k", time.Minute, load)
				assert.NoError(t, err)
				assert.Equal(t, 7, v)
			}()
		}
		// 最初のロードが始まるまで待ってから解放する
		require.Eventually(t, func() bool { return calls.Load() >= 1 }, time.Second, time.Millisecond)
		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("a cancelled caller does not fail callers sharing the load", func(t *testing.T) {
		c := NewCodec(NewMemoryStore(10))
		started, release := make(chan struct{}), make(chan struct{})
		load := func(ctx context.Context) (int, error) {
			close(started)
			<-release
			if err := ctx.Err(); err != nil {
				return 0, err
			}
			return 7, nil
		}

		ctxA, cancelA := context.WithCancel(ctx)
		errA := make(chan error, 1)
		go func() {
			_, err := Fetch(ctxA, c, "k", time.Minute, load)
			errA <- err
		}()
		<-started

		type result struct {
			v   int
			err error
		}
		resB := make(chan result, 1)
		go func() {
			v, err := Fetch(ctx, c, "k", time.Minute, load)
			resB <- result{v, err}
		}()
		time.Sleep(20 * time.Millisecond)

		cancelA()
		assert.ErrorIs(t, <-errA, context.Canceled)
		close(release)

		b := <-resB
		require.NoError(t, b.err)
		assert.Equal(t, 7, b.v)

		// 共有ロードの結果はキャンセル後もキャッシュされる
		var cached int
		assert.True(t, c.Load(ctx, "k", &cached))
		assert.Equal(t, 7, cached)
	})

	t.Run("nil codec always loads", func(t *testing.T) {
		calls := 0
		load := func(context.Context) (int, error) { calls++; return 1, nil }
		_, _ = Fetch(ctx, nil, "k", time.Minute, load)
		_, _ = Fetch(ctx, nil, "k", time.Minute, load)
		assert.Equal(t, 2, calls)
	})
}
