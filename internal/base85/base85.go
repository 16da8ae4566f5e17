// Package base85 implements base85 encoding using the RFC 1924 alphabet.
//
// The encoding is byte-for-byte compatible with Python's base64.b85encode
// and b85decode: input is processed in big-endian 4-byte groups, each
// emitted as 5 alphabet characters; a trailing group of n bytes is padded
// with zero bytes and emitted as n+1 characters. There is no "z" shortcut
// for zero groups and no whitespace handling.
package base85

import (
	"encoding/binary"
	"strconv"
)

const alphabet = "0123456789" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"!#$%&()*+-;<=>?@^_`{|}~"

var decodeMap = func() (m [256]byte) {
	for i := range m {
		m[i] = 0xFF
	}
	for i := 0; i < len(alphabet); i++ {
		m[alphabet[i]] = byte(i)
	}
	return m
}()

// CorruptInputError reports the offset of the first invalid byte (or the
// start of an overflowing 5-character group) in the input to Decode.
type CorruptInputError int64

// Error implements the error interface
func (e CorruptInputError) Error() string {
	return "illegal base85 data at input byte " + strconv.FormatInt(int64(e), 10)
}

// EncodedLen returns the length in bytes of the base85 encoding of an
// input buffer of length n.
func EncodedLen(n int) int {
	full := n / 4
	if rem := n % 4; rem > 0 {
		return full*5 + rem + 1
	}
	return full * 5
}

// DecodedLen returns the length in bytes of the decoded output for a
// base85 input of length n. A length of 1 mod 5 never occurs in valid
// encoder output but still decodes (to the same bytes as an empty tail),
// matching the Python implementation.
func DecodedLen(n int) int {
	pad := (5 - n%5) % 5
	return (n+pad)/5*4 - pad
}

// Encode returns the base85 encoding of src.
func Encode(src []byte) []byte {
	dst := make([]byte, 0, EncodedLen(len(src)))
	for len(src) > 0 {
		var group [4]byte
		n := copy(group[:], src)
		src = src[n:]

		v := binary.BigEndian.Uint32(group[:])
		var out [5]byte
		for i := 4; i >= 0; i-- {
			out[i] = alphabet[v%85]
			v /= 85
		}
		if n == 4 {
			dst = append(dst, out[:]...)
		} else {
			dst = append(dst, out[:n+1]...)
		}
	}
	return dst
}

// EncodeToString returns the base85 encoding of src as a string.
func EncodeToString(src []byte) string {
	return string(Encode(src))
}

// Decode returns the bytes represented by the base85 text src. A partial
// trailing group is completed with the highest alphabet character before
// decoding and the padding bytes are dropped from the result, mirroring
// Python's b85decode.
func Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}
	pad := (5 - len(src)%5) % 5
	dst := make([]byte, 0, (len(src)+pad)/5*4)
	for i := 0; i < len(src); i += 5 {
		var acc uint64
		for j := 0; j < 5; j++ {
			c := byte('~') // implicit padding for the final group
			if i+j < len(src) {
				c = src[i+j]
			}
			d := decodeMap[c]
			if d == 0xFF {
				return nil, CorruptInputError(i + j)
			}
			acc = acc*85 + uint64(d)
		}
		if acc > 0xFFFFFFFF {
			return nil, CorruptInputError(i)
		}
		var group [4]byte
		binary.BigEndian.PutUint32(group[:], uint32(acc))
		dst = append(dst, group[:]...)
	}
	return dst[:len(dst)-pad], nil
}

// DecodeString returns the bytes represented by the base85 string s.
func DecodeString(s string) ([]byte, error) {
	return Decode([]byte(s))
}
