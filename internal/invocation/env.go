package invocation

import (
	"maps"
	"slices"
	"strings"
)

// Env maps environment variable names to values.
type Env map[string]string

// EnvFromList builds an Env from KEY=VALUE entries such as os.Environ().
// Entries without '=' are skipped; later duplicates win.
func EnvFromList(entries []string) Env {
	env := make(Env, len(entries))
	for _, entry := range entries {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}

// Clone returns a copy of env.
func (e Env) Clone() Env {
	if e == nil {
		return Env{}
	}
	return maps.Clone(e)
}

// Overlay returns a copy of e with every entry of overlay applied on top.
func (e Env) Overlay(overlay Env) Env {
	out := e.Clone()
	maps.Copy(out, overlay)
	return out
}

// Keys returns the variable names in sorted order.
func (e Env) Keys() []string {
	return slices.Sorted(maps.Keys(e))
}

// List renders the environment as sorted KEY=VALUE entries.
func (e Env) List() []string {
	keys := e.Keys()
	out := make([]string, 0, len(keys))
	for _, key := range keys {
		out = append(out, key+"="+e[key])
	}
	return out
}
