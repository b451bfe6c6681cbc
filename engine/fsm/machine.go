package fsm

import (
	"fmt"
	"slices"
	"time"
)

// NewMachine creates a new FSM instance
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		nodes: make(map[StateID]*Node[T]),
	}
}

// Init enters the configured initial state, running OnEnter from Root down to the leaf
func (m *Machine[T]) Init(ctx T) error {
	if m.started {
		return fmt.Errorf("FSM already initialized")
	}
	leafID := m.resolveLeaf(m.InitialStateID)
	node, ok := m.nodes[leafID]
	if !ok {
		return fmt.Errorf("initial state ID %d not found", m.InitialStateID)
	}

	m.activeStateID = leafID
	m.activePath = slices.Clone(node.Path)
	m.timeInState = 0
	m.pending = StateNone
	m.started = true

	for _, id := range m.activePath {
		m.runActions(ctx, m.nodes[id].OnEnter)
	}
	return nil
}

// Request queues a transition applied by the next ApplyPending; the last request wins
func (m *Machine[T]) Request(target StateID) {
	m.pending = target
}

// Pending returns the queued target, StateNone when nothing is queued
func (m *Machine[T]) Pending() StateID {
	return m.pending
}

// ApplyPending performs the queued transition, if any
// Returns true if the active state changed
func (m *Machine[T]) ApplyPending(ctx T) bool {
	target := m.pending
	if target == StateNone {
		return false
	}
	m.pending = StateNone
	return m.transition(ctx, target)
}

// Update advances time in state, runs the leaf's OnUpdate and evaluates tick transitions, bubbling up
func (m *Machine[T]) Update(ctx T, dt time.Duration) {
	if !m.started {
		return
	}
	m.timeInState += dt

	m.runActions(ctx, m.nodes[m.activeStateID].OnUpdate)
	m.bubble(ctx, 0)
}

// HandleEvent routes an external event from the leaf up to Root
// A matching transition is requested, not applied; returns true if one matched
func (m *Machine[T]) HandleEvent(ctx T, ev EventID) bool {
	if !m.started || ev == 0 {
		return false
	}
	return m.bubble(ctx, ev)
}

func (m *Machine[T]) bubble(ctx T, ev EventID) bool {
	currID := m.activeStateID
	for currID != StateNone {
		node := m.nodes[currID]
		for _, trans := range node.Transitions {
			if trans.Event != ev {
				continue
			}
			if trans.Guard == nil || trans.Guard(ctx) {
				m.Request(trans.TargetID)
				return true
			}
		}
		currID = node.ParentID
	}
	return false
}

// transition performs a state change through the lowest common ancestor
// Targeting the active leaf or any of its ancestors is a no-op
func (m *Machine[T]) transition(ctx T, targetID StateID) bool {
	if !m.started || m.IsActive(targetID) {
		return false
	}

	leafID := m.resolveLeaf(targetID)
	targetNode, ok := m.nodes[leafID]
	if !ok {
		panic(fmt.Sprintf("FSM: Attempted transition to unknown state ID %d", targetID))
	}

	// Find LCA
	lcaIndex := -1
	currentPath := m.activePath
	targetPath := targetNode.Path

	minLen := min(len(currentPath), len(targetPath))
	for i := 0; i < minLen; i++ {
		if currentPath[i] != targetPath[i] {
			break
		}
		lcaIndex = i
	}

	// Exit Phase: walk UP from current leaf to LCA (exclusive)
	for i := len(currentPath) - 1; i > lcaIndex; i-- {
		m.runActions(ctx, m.nodes[currentPath[i]].OnExit)
	}

	// Commit before entering so enter actions observe the new state
	m.activeStateID = leafID
	m.timeInState = 0
	m.activePath = append(m.activePath[:0], targetPath...)

	// Enter Phase: walk DOWN from LCA (exclusive) to target leaf
	for i := lcaIndex + 1; i < len(targetPath); i++ {
		m.runActions(ctx, m.nodes[targetPath[i]].OnEnter)
	}
	return true
}

// resolveLeaf follows InitialChild links down from id
func (m *Machine[T]) resolveLeaf(id StateID) StateID {
	for {
		node, ok := m.nodes[id]
		if !ok || node.InitialChild == StateNone {
			return id
		}
		id = node.InitialChild
	}
}

func (m *Machine[T]) runActions(ctx T, actions []Action[T]) {
	for _, action := range actions {
		action.Func(ctx, action.Args)
	}
}

// Reset exits every active state and re-enters the initial state
func (m *Machine[T]) Reset(ctx T) error {
	if m.started {
		for i := len(m.activePath) - 1; i >= 0; i-- {
			m.runActions(ctx, m.nodes[m.activePath[i]].OnExit)
		}
	}
	m.started = false
	m.activeStateID = StateNone
	m.activePath = m.activePath[:0]
	return m.Init(ctx)
}

// ActiveStateID returns the active leaf
func (m *Machine[T]) ActiveStateID() StateID {
	return m.activeStateID
}

// IsActive reports whether id is the active leaf or one of its ancestors
func (m *Machine[T]) IsActive(id StateID) bool {
	return slices.Contains(m.activePath, id)
}

// StateName returns the name of a node, empty if unknown
func (m *Machine[T]) StateName(id StateID) string {
	if node, ok := m.nodes[id]; ok {
		return node.Name
	}
	return ""
}

// TimeInState returns time accumulated by Update since the last transition
func (m *Machine[T]) TimeInState() time.Duration {
	return m.timeInState
}
