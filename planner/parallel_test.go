package planner_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/valvenet/planner"
)

func TestParallel_MatchesSerial(t *testing.T) {
	o := sampleOracle(t)
	ctx := context.Background()

	for _, workers := range []int{2, 4, 16} {
		single, err := planner.OptimizeSingle(ctx, o, "AA", 30, planner.WithWorkers(workers))
		require.NoError(t, err)
		assert.Equal(t, sampleSingle30, single.Value, "workers %d", workers)
		assert.True(t, single.Complete)
		requireValidSchedule(t, o, 30, single)

		dual, err := planner.OptimizeDual(ctx, o, "AA", 26, planner.WithWorkers(workers))
		require.NoError(t, err)
		assert.Equal(t, sampleDual26, dual.Value, "workers %d", workers)
		requireValidSchedule(t, o, 26, dual)
	}
}

func TestParallel_CountsSameNodesAsSerial(t *testing.T) {
	o := sampleOracle(t)
	ctx := context.Background()
	plain := []planner.Option{planner.WithUpperBound(false), planner.WithoutSeed()}

	serial, err := planner.OptimizeSingle(ctx, o, "AA", 30, plain...)
	require.NoError(t, err)
	split, err := planner.OptimizeSingle(ctx, o, "AA", 30, append(plain, planner.WithWorkers(4))...)
	require.NoError(t, err)
	assert.Equal(t, serial.Nodes, split.Nodes)

	serial, err = planner.OptimizeDual(ctx, o, "AA", 14, plain...)
	require.NoError(t, err)
	split, err = planner.OptimizeDual(ctx, o, "AA", 14, append(plain, planner.WithWorkers(4))...)
	require.NoError(t, err)
	assert.Equal(t, serial.Nodes, split.Nodes)
}

func TestParallel_OnImproveIsSerializedAndMonotonic(t *testing.T) {
	o := sampleOracle(t)
	var (
		mu     sync.Mutex
		values []int
	)
	res, err := planner.OptimizeDual(context.Background(), o, "AA", 26,
		planner.WithWorkers(8), planner.WithoutSeed(),
		planner.WithOnImprove(func(v int, _ []string) {
			mu.Lock()
			defer mu.Unlock()
			values = append(values, v)
		}))
	require.NoError(t, err)

	require.NotEmpty(t, values)
	for i := 1; i < len(values); i++ {
		assert.Greater(t, values[i], values[i-1])
	}
	assert.Equal(t, res.Value, values[len(values)-1])
}

func TestParallel_Interrupted(t *testing.T) {
	o := sampleOracle(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	res, err := planner.OptimizeSingle(ctx, o, "AA", 30, planner.WithWorkers(4), planner.WithoutSeed(),
		planner.WithOnImprove(func(int, []string) { cancel() }))
	require.ErrorIs(t, err, planner.ErrInterrupted)
	assert.False(t, res.Complete)
	requireValidSchedule(t, o, 30, res)
}

func TestParallel_NothingAffordable(t *testing.T) {
	o := sampleOracle(t)

	res, err := planner.OptimizeDual(context.Background(), o, "AA", 1, planner.WithWorkers(4))
	require.NoError(t, err)
	assert.Zero(t, res.Value)
	assert.True(t, res.Complete)
}
