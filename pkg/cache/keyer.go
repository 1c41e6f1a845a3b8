package cache

import "strconv"

// Keyer derives cache keys from computation requests.
type Keyer interface {
	// CharacterKey returns the key for one (partition, cycle counts) result.
	CharacterKey(partition, counts []int) string

	// TableKey returns the key for the character table of S_n.
	TableKey(n int) string
}

// DefaultKeyer hashes request contents into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// CharacterKey generates a key of the form "character:<sha256>".
func (k *DefaultKeyer) CharacterKey(partition, counts []int) string {
	return hashKey("character", partition, counts)
}

// TableKey generates a key of the form "table:<n>".
func (k *DefaultKeyer) TableKey(n int) string {
	return "table:" + strconv.Itoa(n)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
