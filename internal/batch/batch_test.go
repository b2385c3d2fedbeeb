package batch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_IsolatesFailures(t *testing.T) {
	boom := errors.New("boom")
	items := []string{"a", "bad", "c", "panic", "e"}

	results := Run(context.Background(), items, 2, func(ctx context.Context, item string) error {
		switch item {
		case "bad":
			return boom
		case "panic":
			panic("kaputt")
		}
		return nil
	})

	require.Len(t, results, len(items))
	for i, r := range results {
		assert.Equal(t, items[i], r.Item)
	}

	assert.NoError(t, results[0].Err)
	assert.ErrorIs(t, results[1].Err, boom)
	assert.NoError(t, results[2].Err)
	assert.ErrorContains(t, results[3].Err, "kaputt")
	assert.NoError(t, results[4].Err)

	failed := Failed(results)
	require.Len(t, failed, 2)
	assert.Equal(t, "bad", failed[0].Item)
	assert.Equal(t, "panic", failed[1].Item)
}

func TestRun_LimitsWorkers(t *testing.T) {
	var inFlight, peak int32
	items := make([]string, 32)

	Run(context.Background(), items, 3, func(ctx context.Context, item string) error {
		n := atomic.AddInt32(&inFlight, 1)
		for {
			p := atomic.LoadInt32(&peak)
			if n <= p || atomic.CompareAndSwapInt32(&peak, p, n) {
				break
			}
		}
		atomic.AddInt32(&inFlight, -1)
		return nil
	})

	assert.LessOrEqual(t, atomic.LoadInt32(&peak), int32(3))
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls int32
	results := Run(ctx, []string{"a", "b"}, 1, func(ctx context.Context, item string) error {
		atomic.AddInt32(&calls, 1)
		return nil
	})

	assert.Zero(t, atomic.LoadInt32(&calls))
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestRun_DefaultWorkers(t *testing.T) {
	results := Run(context.Background(), []string{"x"}, 0, func(ctx context.Context, item string) error {
		return nil
	})
	require.Len(t, results, 1)
	assert.NoError(t, results[0].Err)
	assert.Empty(t, Failed(results))
}

func TestEach(t *testing.T) {
	boom := errors.New("boom")
	seen := make([]int32, 4)

	errs := Each(context.Background(), len(seen), 3, func(ctx context.Context, i int) error {
		atomic.AddInt32(&seen[i], 1)
		if i == 2 {
			return boom
		}
		return nil
	})

	require.Len(t, errs, 4)
	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.ErrorIs(t, errs[2], boom)
	assert.NoError(t, errs[3])
	assert.Equal(t, []int32{1, 1, 1, 1}, seen)
}
