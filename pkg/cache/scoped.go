package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation.
// Results written by one format version are then never read by another.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "v1:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// CharacterKey generates a prefixed key for a single character result.
func (k *ScopedKeyer) CharacterKey(partition, counts []int) string {
	return k.prefix + k.inner.CharacterKey(partition, counts)
}

// TableKey generates a prefixed key for a character table.
func (k *ScopedKeyer) TableKey(n int) string {
	return k.prefix + k.inner.TableKey(n)
}
