package input

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Bindings is the control mapping table: logical action to physical keys
// An action with no keys is valid and never reports held or pressed
type Bindings struct {
	keys [actionCount][]Key
}

// DefaultBindings returns the built-in controls
func DefaultBindings() *Bindings {
	b := &Bindings{}
	b.keys[ActionUp] = []Key{SpecialKey(tcell.KeyUp), RuneKey('w')}
	b.keys[ActionDown] = []Key{SpecialKey(tcell.KeyDown), RuneKey('s')}
	b.keys[ActionMenu] = []Key{SpecialKey(tcell.KeyEscape), RuneKey('p')}
	return b
}

// Keys returns the keys bound to an action, nil when unset
func (b *Bindings) Keys(a Action) []Key {
	if a >= actionCount {
		return nil
	}
	return b.keys[a]
}

// Bound reports whether k triggers a
func (b *Bindings) Bound(a Action, k Key) bool {
	return slices.Contains(b.Keys(a), k)
}

// Remap clears every key of a, then binds k; other actions keep their keys
func (b *Bindings) Remap(a Action, k Key) {
	if a >= actionCount {
		return
	}
	b.keys[a] = []Key{k}
}

// Bind adds k to a if not already present
func (b *Bindings) Bind(a Action, k Key) {
	if a >= actionCount || b.Bound(a, k) {
		return
	}
	b.keys[a] = append(b.keys[a], k)
}

// Unbind removes every key of a
func (b *Bindings) Unbind(a Action) {
	if a >= actionCount {
		return
	}
	b.keys[a] = nil
}

// Label joins the key names of a, empty when unset
func (b *Bindings) Label(a Action) string {
	keys := b.Keys(a)
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

// Clone returns an independent copy
func (b *Bindings) Clone() *Bindings {
	c := &Bindings{}
	for i := range b.keys {
		c.keys[i] = slices.Clone(b.keys[i])
	}
	return c
}

// LoadBindings parses action name to key name lists into a sparse override table
// Only actions present in raw are returned; an empty list unbinds the action
func LoadBindings(raw map[string][]string) (map[Action][]Key, error) {
	result := make(map[Action][]Key, len(raw))

	for actionName, keyNames := range raw {
		a, err := ParseAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[controls] %w", err)
		}

		keys := make([]Key, 0, len(keyNames))
		for _, name := range keyNames {
			k, err := ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("[controls] %s: %w", actionName, err)
			}
			if !slices.Contains(keys, k) {
				keys = append(keys, k)
			}
		}
		result[a] = keys
	}

	return result, nil
}

// MergeBindings returns a copy of base with every action in override replaced
func MergeBindings(base *Bindings, override map[Action][]Key) *Bindings {
	result := base.Clone()
	for a, keys := range override {
		if a >= actionCount {
			continue
		}
		result.keys[a] = slices.Clone(keys)
	}
	return result
}
