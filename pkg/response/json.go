package response

import (
	"encoding/json"
	"fmt"
)

// NewJSON builds a response that streams a JSON-serializable value,
// encoded to bytes at construction time with encoding/json (deterministic:
// map keys are sorted). A serialization failure surfaces here, before any
// response behavior begins.
//
// Beyond the serialization step this is the bytes variant.
func NewJSON(v any, filename string, opts ...Option) (*Response, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding json content: %w", err)
	}
	return NewBytes(data, filename, opts...), nil
}
