package status

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

func TestMetricMap_GetReturnsCachedPointer(t *testing.T) {
	reg := NewRegistry()

	a := reg.Ints.Get("unit.shots")
	b := reg.Ints.Get("unit.shots")
	require.Same(t, a, b)

	a.Add(3)
	assert.Equal(t, int64(3), b.Load())
	assert.True(t, reg.Ints.Has("unit.shots"))
	assert.False(t, reg.Ints.Has("unit.missing"))
}

func TestMetricMap_RangeSorted(t *testing.T) {
	reg := NewRegistry()
	reg.Ints.Get("b")
	reg.Ints.Get("a")
	reg.Ints.Get("c")

	var keys []string
	reg.Ints.Range(func(key string, _ *atomic.Int64) {
		keys = append(keys, key)
	})
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestRegistry_Snapshot(t *testing.T) {
	reg := NewRegistry()
	reg.Ints.Get("contact.hits").Store(4)
	reg.Bools.Get("engine.strict").Store(true)
	reg.Bools.Get("engine.paused")

	snap := reg.Snapshot()
	assert.Equal(t, map[string]int64{
		"contact.hits":  4,
		"engine.strict": 1,
		"engine.paused": 0,
	}, snap)
	assert.Equal(t, 3, reg.TotalCount())
}

func TestBridge_NoopMeter(t *testing.T) {
	reg := NewRegistry()
	reg.Ints.Get("engine.ticks").Store(1)

	b, err := NewBridge(reg, noop.Meter{})
	require.NoError(t, err)
	assert.NoError(t, b.Close())
}

func TestMetricMap_KeysSorted(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	assert.Empty(t, m.Keys())

	m.Get("spawn.units")
	m.Get("contact.hits")
	m.Get("spawn.units")
	assert.Equal(t, []string{"contact.hits", "spawn.units"}, m.Keys())
	assert.Equal(t, 2, m.Count())
}

func TestMetricMap_SnapshotIntoMerges(t *testing.T) {
	m := NewMetricMap[atomic.Int64]()
	m.Get("bullet.live").Store(7)

	out := map[string]int64{"existing": 1}
	m.SnapshotInto(out, func(v *atomic.Int64) int64 { return v.Load() * 2 })
	assert.Equal(t, map[string]int64{"existing": 1, "bullet.live": 14}, out)
}
