package status

import "sync/atomic"

// Registry is the central metrics facade
// Systems cache pointers during init; Update loops write directly to atomics
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count()
}

// Snapshot copies every metric, bools reported as 0 or 1
func (r *Registry) Snapshot() map[string]int64 {
	out := make(map[string]int64, r.TotalCount())
	r.Ints.SnapshotInto(out, loadInt)
	r.Bools.SnapshotInto(out, loadBool)
	return out
}

func loadInt(v *atomic.Int64) int64 { return v.Load() }

func loadBool(v *atomic.Bool) int64 {
	if v.Load() {
		return 1
	}
	return 0
}
