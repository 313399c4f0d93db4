package input

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyByName = map[string]int32{
	"w":            rl.KeyW,
	"a":            rl.KeyA,
	"s":            rl.KeyS,
	"d":            rl.KeyD,
	"q":            rl.KeyQ,
	"e":            rl.KeyE,
	"up":           rl.KeyUp,
	"down":         rl.KeyDown,
	"left":         rl.KeyLeft,
	"right":        rl.KeyRight,
	"space":        rl.KeySpace,
	"leftshift":    rl.KeyLeftShift,
	"rightshift":   rl.KeyRightShift,
	"leftcontrol":  rl.KeyLeftControl,
	"rightcontrol": rl.KeyRightControl,
	"leftalt":      rl.KeyLeftAlt,
	"rightalt":     rl.KeyRightAlt,
}

// ParseKey maps a key name such as "LeftShift" to its raylib key code.
// Names are case-insensitive.
func ParseKey(name string) (int32, error) {
	if k, ok := keyByName[strings.ToLower(name)]; ok {
		return k, nil
	}
	return 0, errors.Errorf("unknown key %q (valid: %s)", name, strings.Join(KeyNames(), ", "))
}

// ParseKeys parses a list of key names.
func ParseKeys(names []string) ([]int32, error) {
	keys := make([]int32, 0, len(names))
	for _, n := range names {
		k, err := ParseKey(n)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

func KeyNames() []string {
	names := make([]string, 0, len(keyByName))
	for n := range keyByName {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// KeyName returns the canonical name of a key code, or "" if it has none.
func KeyName(key int32) string {
	for n, k := range keyByName {
		if k == key {
			return n
		}
	}
	return ""
}
