package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the engine and gameplay systems
const (
	KeyTicks        = "engine.ticks"
	KeyFrames       = "engine.frames"
	KeyDroppedSteps = "engine.dropped_steps"
	KeyMode         = "session.mode"
	KeyCollisions   = "physics.collisions"
	KeyBodies       = "physics.bodies"
	KeyPoints       = "pong.points"
	KeyBallsSpawned = "pong.balls_spawned"
	KeyBallSpeed    = "pong.ball_speed"
	KeyMuted        = "audio.muted"
)

// Registry is the central metrics facade
// Systems cache pointers during construction; update loops write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// Line formats the named metrics as "key=value" pairs for the debug status line
// Keys are looked up in every map; unknown keys are skipped
func (r *Registry) Line(keys ...string) string {
	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		short := key[strings.LastIndexByte(key, '.')+1:]
		if v, ok := r.Ints.Lookup(key); ok {
			parts = append(parts, fmt.Sprintf("%s=%d", short, v.Load()))
		} else if v, ok := r.Floats.Lookup(key); ok {
			parts = append(parts, fmt.Sprintf("%s=%.1f", short, v.Get()))
		} else if v, ok := r.Strings.Lookup(key); ok {
			parts = append(parts, fmt.Sprintf("%s=%s", short, v.Load()))
		} else if v, ok := r.Bools.Lookup(key); ok {
			parts = append(parts, fmt.Sprintf("%s=%t", short, v.Load()))
		}
	}
	return strings.Join(parts, " ")
}

// Dump returns every registered metric as "key=value", grouped by type and sorted by key
func (r *Registry) Dump() []string {
	out := make([]string, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) { out = append(out, fmt.Sprintf("%s=%d", k, v.Load())) })
	r.Floats.Range(func(k string, v *AtomicFloat) { out = append(out, fmt.Sprintf("%s=%.2f", k, v.Get())) })
	r.Strings.Range(func(k string, v *AtomicString) { out = append(out, fmt.Sprintf("%s=%s", k, v.Load())) })
	r.Bools.Range(func(k string, v *atomic.Bool) { out = append(out, fmt.Sprintf("%s=%t", k, v.Load())) })
	return out
}
