package query

import "strings"

// keySep cannot appear in a key part, so joined keys compare structurally.
const keySep = "\x00"

// Key identifies a cached read. Keys are comparable and built from ordered
// parts, e.g. NewKey("blogs") and NewKey("blogs", id).
type Key struct {
	path string
}

func NewKey(parts ...string) Key {
	clean := make([]string, len(parts))
	for i, p := range parts {
		clean[i] = strings.ReplaceAll(p, keySep, "")
	}
	return Key{path: strings.Join(clean, keySep)}
}

func (k Key) Parts() []string {
	if k.path == "" {
		return nil
	}
	return strings.Split(k.path, keySep)
}

func (k Key) String() string {
	return "[" + strings.Join(k.Parts(), " ") + "]"
}

// HasPrefix reports whether k starts with every part of prefix.
func (k Key) HasPrefix(prefix Key) bool {
	if prefix.path == "" {
		return true
	}
	return k.path == prefix.path || strings.HasPrefix(k.path, prefix.path+keySep)
}

// Predicate selects cache entries by key.
type Predicate func(Key) bool

func Exact(k Key) Predicate {
	return func(other Key) bool { return other == k }
}

func Prefix(k Key) Predicate {
	return func(other Key) bool { return other.HasPrefix(k) }
}
