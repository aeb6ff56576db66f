package builder

import (
	"slices"
	"strings"

	"github.com/resurgence-tools/edjb/internal/catalog"
)

// CommandToken joins a server variable and its value the way the voting
// file expects them: "<key> <value>".
func CommandToken(key, value string) string {
	return key + " " + value
}

// SplitCommand splits a command token into its key and value.
func SplitCommand(token string) (key, value string) {
	key, value, _ = strings.Cut(token, " ")
	return key, value
}

// SetCommand returns a copy of cmds with the key set to value. Each key
// appears at most once: an existing token is replaced in place, a new one
// is appended, and catalog.UnsetValue removes the key.
func SetCommand(cmds []string, key, value string) []string {
	out := slices.Clone(cmds)
	if out == nil {
		out = []string{}
	}
	idx := slices.IndexFunc(out, func(tok string) bool {
		k, _ := SplitCommand(tok)
		return k == key
	})

	switch {
	case idx == -1 && value == catalog.UnsetValue:
		return out
	case idx == -1:
		return append(out, CommandToken(key, value))
	case value == catalog.UnsetValue:
		return slices.Delete(out, idx, idx+1)
	default:
		out[idx] = CommandToken(key, value)
		return out
	}
}

// CommandValue returns the value set for key, or catalog.UnsetValue.
func CommandValue(cmds []string, key string) string {
	for _, tok := range cmds {
		if k, v := SplitCommand(tok); k == key {
			return v
		}
	}
	return catalog.UnsetValue
}
