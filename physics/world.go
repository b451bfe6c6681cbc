package physics

import (
	"math"

	"github.com/lixenwraith/vi-pong/event"
	"github.com/lixenwraith/vi-pong/vmath"
)

// maxStepTravel bounds how far a dynamic body moves between overlap checks
const maxStepTravel = 4.0

type pairKey struct {
	a, b BodyID
}

func makePair(x, y BodyID) pairKey {
	if x > y {
		x, y = y, x
	}
	return pairKey{x, y}
}

// World owns bodies, integrates them and reports contact edges
// Not safe for concurrent use; stepped from the fixed tick only
type World struct {
	bodies map[BodyID]*Body
	order  []BodyID
	nextID BodyID

	active    []pairKey
	activeSet map[pairKey]struct{}

	collisions *event.CollisionQueue
	impact     map[BodyID]vmath.Vec2

	// touched holds pairs resolved during the current step
	touched map[pairKey]struct{}
}

// NewWorld creates an empty world emitting contact edges into collisions
func NewWorld(collisions *event.CollisionQueue) *World {
	return &World{
		bodies:     make(map[BodyID]*Body),
		activeSet:  make(map[pairKey]struct{}),
		collisions: collisions,
		impact:     make(map[BodyID]vmath.Vec2),
		touched:    make(map[pairKey]struct{}),
	}
}

// Add inserts a body and returns its handle; the ID field of def is ignored
func (w *World) Add(def Body) BodyID {
	w.nextID++
	b := def
	b.ID = w.nextID
	b.translation = vmath.Vec2{}
	w.bodies[b.ID] = &b
	w.order = append(w.order, b.ID)
	return b.ID
}

// Remove deletes a body; contacts involving it are dropped without stop events
func (w *World) Remove(id BodyID) bool {
	if _, ok := w.bodies[id]; !ok {
		return false
	}
	delete(w.bodies, id)

	for i, oid := range w.order {
		if oid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}

	kept := w.active[:0]
	for _, p := range w.active {
		if p.a == id || p.b == id {
			delete(w.activeSet, p)
			continue
		}
		kept = append(kept, p)
	}
	w.active = kept
	return true
}

// Body returns the live body for id
func (w *World) Body(id BodyID) (*Body, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

// Len returns the number of bodies
func (w *World) Len() int {
	return len(w.order)
}

// ForEach visits bodies in insertion order
func (w *World) ForEach(fn func(b *Body)) {
	for _, id := range w.order {
		fn(w.bodies[id])
	}
}

// SetTranslation queues the kinematic move for the next Step, replacing any earlier request
func (w *World) SetTranslation(id BodyID, t vmath.Vec2) {
	if b, ok := w.bodies[id]; ok && b.Kind == BodyKinematic {
		b.translation = t
	}
}

// SetVelocity overwrites a dynamic body's velocity
func (w *World) SetVelocity(id BodyID, v vmath.Vec2) {
	if b, ok := w.bodies[id]; ok {
		b.Vel = v
	}
}

// Step advances the world by dt seconds
// Kinematic moves are applied first, then dynamic bodies integrate and bounce, then contact edges are emitted
func (w *World) Step(dt float64) {
	for _, id := range w.order {
		b := w.bodies[id]
		if b.Kind != BodyKinematic || b.translation == (vmath.Vec2{}) {
			continue
		}
		b.Pos = vmath.V2Add(b.Pos, b.translation)
		b.translation = vmath.Vec2{}
		w.blockKinematic(b)
	}

	clear(w.impact)
	clear(w.touched)
	for _, id := range w.order {
		b := w.bodies[id]
		if b.Kind != BodyDynamic {
			continue
		}
		w.impact[id] = b.Vel

		// Substeps keep fast bodies from skipping through thin walls
		steps := max(1, int(math.Ceil(vmath.V2Mag(b.Vel)*dt/maxStepTravel)))
		sub := dt / float64(steps)
		for range steps {
			b.Pos = vmath.V2Add(b.Pos, vmath.V2Scale(b.Vel, sub))
			w.resolveDynamic(b)
		}
	}

	w.updateContacts()
}

// blockKinematic keeps a kinematic body out of fixed solids
func (w *World) blockKinematic(b *Body) {
	for _, id := range w.order {
		o := w.bodies[id]
		if o.Kind != BodyFixed || o.Sensor || b.Sensor {
			continue
		}
		n, d := penetration(b, o)
		if d > 0 {
			b.Pos = vmath.V2Add(b.Pos, vmath.V2Scale(n, d))
		}
	}
}

// resolveDynamic pushes a dynamic body out of non-dynamic solids and reflects its velocity
func (w *World) resolveDynamic(b *Body) {
	if b.Sensor {
		return
	}
	for _, id := range w.order {
		o := w.bodies[id]
		if o.ID == b.ID || o.Sensor || o.Kind == BodyDynamic {
			continue
		}
		n, d := penetration(b, o)
		if d <= 0 {
			continue
		}
		b.Pos = vmath.V2Add(b.Pos, vmath.V2Scale(n, d))
		w.touched[makePair(b.ID, o.ID)] = struct{}{}

		vn := vmath.V2Dot(b.Vel, n)
		if vn >= 0 {
			continue
		}
		e := (b.Restitution + o.Restitution) / 2
		f := vmath.Clamp((b.Friction+o.Friction)/2, 0, 1)
		normal := vmath.V2Scale(n, vn)
		tangent := vmath.V2Sub(b.Vel, normal)
		b.Vel = vmath.V2Sub(vmath.V2Scale(tangent, 1-f), vmath.V2Scale(normal, e))
	}
}

func (w *World) updateContacts() {
	current := make(map[pairKey]struct{}, len(w.activeSet))
	var started []pairKey

	for i, ida := range w.order {
		a := w.bodies[ida]
		for _, idb := range w.order[i+1:] {
			b := w.bodies[idb]
			if a.Kind == BodyFixed && b.Kind == BodyFixed {
				continue
			}
			p := makePair(ida, idb)
			if _, hit := w.touched[p]; !hit {
				if _, d := penetration(a, b); d < -contactSkin {
					continue
				}
			}
			current[p] = struct{}{}
			if _, was := w.activeSet[p]; !was {
				started = append(started, p)
			}
		}
	}

	kept := w.active[:0]
	for _, p := range w.active {
		if _, still := current[p]; still {
			kept = append(kept, p)
			continue
		}
		w.emit(p, event.CollisionStopped)
	}
	w.active = kept

	for _, p := range started {
		w.active = append(w.active, p)
		w.emit(p, event.CollisionStarted)
	}
	w.activeSet = current
}

func (w *World) emit(p pairKey, phase event.CollisionPhase) {
	if w.collisions == nil {
		return
	}
	a, b := w.bodies[p.a], w.bodies[p.b]
	c := event.Collision{A: p.a, B: p.b, Phase: phase, Sensor: a.Sensor || b.Sensor}
	if v, ok := w.impact[p.a]; ok {
		c.ImpactVel = v
	} else if v, ok := w.impact[p.b]; ok {
		c.ImpactVel = v
	}
	w.collisions.Push(c)
}
