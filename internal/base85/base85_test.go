package base85

import (
	"bytes"
	"testing"
)

// Vectors checked against Python's base64.b85encode.
var vectors = []struct {
	decoded string
	encoded string
}{
	{"", ""},
	{"hello", "Xk~0{Zv"},
	{"\x00\x00\x00\x00", "00000"},
	{"\x00", "00"},
}

func TestEncodeVectors(t *testing.T) {
	for _, v := range vectors {
		got := EncodeToString([]byte(v.decoded))
		if got != v.encoded {
			t.Errorf("Encode(%q) = %q, want %q", v.decoded, got, v.encoded)
		}
	}
}

func TestDecodeVectors(t *testing.T) {
	for _, v := range vectors {
		got, err := DecodeString(v.encoded)
		if err != nil {
			t.Fatalf("Decode(%q) error = %v", v.encoded, err)
		}
		if string(got) != v.decoded {
			t.Errorf("Decode(%q) = %q, want %q", v.encoded, got, v.decoded)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	// All byte values, plus every partial-group length
	var all []byte
	for i := 0; i < 256; i++ {
		all = append(all, byte(i))
	}

	inputs := [][]byte{all}
	for n := 1; n <= 17; n++ {
		inputs = append(inputs, all[:n])
	}

	for _, in := range inputs {
		enc := Encode(in)
		if len(enc) != EncodedLen(len(in)) {
			t.Errorf("len(Encode(%d bytes)) = %d, want %d", len(in), len(enc), EncodedLen(len(in)))
		}
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("Decode(Encode(%d bytes)) error = %v", len(in), err)
		}
		if !bytes.Equal(dec, in) {
			t.Errorf("round trip of %d bytes failed", len(in))
		}
	}
}

func TestDecodeInvalidByte(t *testing.T) {
	tests := []struct {
		input  string
		offset int64
	}{
		{`"quoted"`, 0},
		{"Xk~0 Zv", 4},
		{"Xk~0{\nv", 5},
	}

	for _, tt := range tests {
		_, err := DecodeString(tt.input)
		cie, ok := err.(CorruptInputError)
		if !ok {
			t.Fatalf("Decode(%q) error = %v, want CorruptInputError", tt.input, err)
		}
		if int64(cie) != tt.offset {
			t.Errorf("Decode(%q) error offset = %d, want %d", tt.input, int64(cie), tt.offset)
		}
	}
}

func TestDecodeOverflow(t *testing.T) {
	// A full group of the highest alphabet character exceeds 32 bits.
	if _, err := DecodeString("~~~~~"); err == nil {
		t.Error("Decode(\"~~~~~\") should fail with overflow")
	}
}

func TestDecodedLen(t *testing.T) {
	for n := 0; n <= 32; n++ {
		enc := EncodedLen(n)
		if got := DecodedLen(enc); got != n {
			t.Errorf("DecodedLen(EncodedLen(%d)) = %d, want %d", n, got, n)
		}
	}
}
