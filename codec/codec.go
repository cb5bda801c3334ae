// Package codec centralizes the encoding of persisted mining results.
//
// Codec selection is a compatibility boundary: snapshots written with
// one codec can only be read back with the same codec, which is why the
// snapshot header records the codec name.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = Gob{}

// ByName returns a built-in codec by its stable name. Snapshot loading
// uses this to resolve the codec recorded in the header.
func ByName(name string) (Codec, bool) {
	switch name {
	case "gob":
		return Gob{}, true
	case "json":
		return JSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
