package ecfg

import (
	"encoding/json"
	"errors"

	"github.com/muurk/ecfg/internal/base85"
)

// EncodeDocument serializes a configuration map to its on-disk form:
// UTF-8 JSON, additionally wrapped in base85 text when encoded is true.
func EncodeDocument(m map[string]any, encoded bool) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, &CodecError{Op: "json", Err: err}
	}
	if encoded {
		data = base85.Encode(data)
	}
	return data, nil
}

// DecodeDocument reverses EncodeDocument: base85-decodes first when
// encoded is true, then JSON-decodes into a map. The JSON top level must
// be an object.
func DecodeDocument(data []byte, encoded bool) (map[string]any, error) {
	return decodeDocument("", data, encoded)
}

func encodeDocument(path string, m map[string]any, encoded bool) ([]byte, error) {
	data, err := EncodeDocument(m, encoded)
	if err != nil {
		var ce *CodecError
		if errors.As(err, &ce) {
			ce.Path = path
		}
		return nil, err
	}
	return data, nil
}

func decodeDocument(path string, data []byte, encoded bool) (map[string]any, error) {
	if encoded {
		raw, err := base85.Decode(data)
		if err != nil {
			return nil, &CodecError{Path: path, Op: "base85", Err: err}
		}
		data = raw
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &CodecError{Path: path, Op: "json", Err: err}
	}
	if m == nil {
		return nil, &CodecError{Path: path, Op: "json", Err: errors.New("top-level value is not a JSON object")}
	}
	return m, nil
}
