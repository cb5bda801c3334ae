package codec

import "encoding/json"

// JSON encodes values with encoding/json. Use it when snapshots must be
// readable outside Go; note that JSON cannot represent every item type
// gob can (e.g. map keys other than strings).
type JSON struct{}

// Marshal implements Codec.
func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal implements Codec.
func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Name implements Codec.
func (JSON) Name() string { return "json" }
