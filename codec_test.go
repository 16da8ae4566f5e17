package ecfg

import (
	"bytes"
	"reflect"
	"testing"
)

func TestDocumentRoundTrip(t *testing.T) {
	in := map[string]any{
		"key":    "value",
		"n":      float64(1),
		"flag":   true,
		"null":   nil,
		"nested": map[string]any{"list": []any{"a", float64(2)}},
	}

	for _, encoded := range []bool{false, true} {
		data, err := EncodeDocument(in, encoded)
		if err != nil {
			t.Fatalf("EncodeDocument(encoded=%v) error = %v", encoded, err)
		}
		out, err := DecodeDocument(data, encoded)
		if err != nil {
			t.Fatalf("DecodeDocument(encoded=%v) error = %v", encoded, err)
		}
		if !reflect.DeepEqual(out, in) {
			t.Errorf("round trip (encoded=%v) = %v, want %v", encoded, out, in)
		}
	}
}

func TestEncodedDocumentIsTextSafe(t *testing.T) {
	data, err := EncodeDocument(map[string]any{"key": "value"}, true)
	if err != nil {
		t.Fatalf("EncodeDocument() error = %v", err)
	}
	// The base85 alphabet contains no quote characters, so an encoded
	// document never looks like JSON.
	if bytes.ContainsAny(data, `"`) {
		t.Errorf("encoded document should not contain quotes: %q", data)
	}
}

func TestDecodePlainAsEncodedFails(t *testing.T) {
	plain, err := EncodeDocument(map[string]any{"key": "value"}, false)
	if err != nil {
		t.Fatalf("EncodeDocument() error = %v", err)
	}
	_, err = DecodeDocument(plain, true)
	if !IsCodecError(err) {
		t.Fatalf("DecodeDocument() error = %v, want CodecError", err)
	}
}

func TestDecodeMalformedJSON(t *testing.T) {
	for _, input := range []string{"not json", `[1, 2, 3]`, "null", `"just a string"`} {
		if _, err := DecodeDocument([]byte(input), false); !IsCodecError(err) {
			t.Errorf("DecodeDocument(%q) error = %v, want CodecError", input, err)
		}
	}
}
