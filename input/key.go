package input

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Key identifies a physical key: a tcell special key, or KeyRune plus the character
type Key struct {
	Code tcell.Key
	Rune rune
}

// RuneKey returns the key for a printable character
func RuneKey(r rune) Key {
	return Key{Code: tcell.KeyRune, Rune: r}
}

// SpecialKey returns the key for a non-printable tcell key
func SpecialKey(code tcell.Key) Key {
	return Key{Code: code}
}

// KeyFromEvent extracts the physical key of a terminal key event
func KeyFromEvent(ev *tcell.EventKey) Key {
	if ev.Key() == tcell.KeyRune {
		return RuneKey(ev.Rune())
	}
	return SpecialKey(ev.Key())
}

// Rune aliases for keys that read badly as a bare character
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// Special key aliases not present in tcell.KeyNames
var keyAliases = map[string]tcell.Key{
	"escape": tcell.KeyEscape,
	"return": tcell.KeyEnter,
}

// String returns the display name, the inverse of ParseKey
func (k Key) String() string {
	if k.Code == tcell.KeyRune {
		for name, r := range runeAliases {
			if r == k.Rune {
				return name
			}
		}
		return string(k.Rune)
	}
	if name, ok := tcell.KeyNames[k.Code]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", int(k.Code))
}

// ParseKey resolves a key name: a single character, a rune alias, or a tcell key name such as "Up" or "Esc"
func ParseKey(name string) (Key, error) {
	trimmed := strings.TrimSpace(name)
	if runes := []rune(trimmed); len(runes) == 1 {
		return RuneKey(runes[0]), nil
	}

	lower := strings.ToLower(trimmed)
	if r, ok := runeAliases[lower]; ok {
		return RuneKey(r), nil
	}
	if code, ok := keyAliases[lower]; ok {
		return SpecialKey(code), nil
	}
	for code, keyName := range tcell.KeyNames {
		if strings.ToLower(keyName) == lower {
			return SpecialKey(code), nil
		}
	}
	return Key{}, fmt.Errorf("unknown key name: %q", name)
}
