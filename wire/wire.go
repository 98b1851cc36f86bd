// Package wire implements the record-level primitives of the options
// wire format: varints, tag keys, and length-delimited payloads.
//
// Every Consume* function reads from the front of the buffer and returns
// the number of bytes consumed. Slices returned by ConsumeBytes alias
// the input buffer; callers that outlive the buffer must copy.
package wire

import "errors"

// Type is the wire kind carried in the low bits of a tag key.
type Type uint8

const (
	Varint     Type = 0
	Fixed64    Type = 1
	Bytes      Type = 2
	StartGroup Type = 3
	EndGroup   Type = 4
	Fixed32    Type = 5
)

func (t Type) String() string {
	switch t {
	case Varint:
		return "varint"
	case Fixed64:
		return "fixed64"
	case Bytes:
		return "bytes"
	case StartGroup:
		return "start_group"
	case EndGroup:
		return "end_group"
	case Fixed32:
		return "fixed32"
	default:
		return "invalid"
	}
}

var (
	ErrTruncated       = errors.New("wire: truncated input")
	ErrMalformedVarint = errors.New("wire: varint missing terminator")
	ErrInvalidType     = errors.New("wire: invalid wire type")
	ErrZeroTag         = errors.New("wire: zero field tag")
)

// MaxVarintLen is the longest accepted varint encoding of a uint64.
const MaxVarintLen = 10

// AppendVarint appends the base-128 varint encoding of v to b.
func AppendVarint(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

// ConsumeVarint decodes a varint from the front of b.
func ConsumeVarint(b []byte) (uint64, int, error) {
	var v uint64
	var s uint
	n := min(len(b), MaxVarintLen)
	for i := 0; i < n; i++ {
		c := b[i]
		if c < 0x80 {
			if i == MaxVarintLen-1 && c > 1 {
				return 0, 0, ErrMalformedVarint // overflows uint64
			}
			return v | uint64(c)<<s, i + 1, nil
		}
		v |= uint64(c&0x7f) << s
		s += 7
	}
	if len(b) >= MaxVarintLen {
		return 0, 0, ErrMalformedVarint
	}
	return 0, 0, ErrTruncated
}

// AppendTag appends the record key for field num with wire type t.
func AppendTag(b []byte, num uint32, t Type) []byte {
	return AppendVarint(b, uint64(num)<<3|uint64(t))
}

// ConsumeTag decodes a record key from the front of b.
func ConsumeTag(b []byte) (uint32, Type, int, error) {
	v, n, err := ConsumeVarint(b)
	if err != nil {
		return 0, 0, 0, err
	}
	num := uint32(v >> 3)
	t := Type(v & 7)
	if num == 0 {
		return 0, 0, 0, ErrZeroTag
	}
	switch t {
	case Varint, Fixed64, Bytes, Fixed32:
		return num, t, n, nil
	default:
		return 0, 0, 0, ErrInvalidType
	}
}

// AppendBytes appends v as a length-delimited payload.
func AppendBytes(b, v []byte) []byte {
	b = AppendVarint(b, uint64(len(v)))
	return append(b, v...)
}

// AppendString appends s as a length-delimited payload.
func AppendString(b []byte, s string) []byte {
	b = AppendVarint(b, uint64(len(s)))
	return append(b, s...)
}

// ConsumeBytes decodes a length-delimited payload from the front of b.
// The returned slice aliases b.
func ConsumeBytes(b []byte) ([]byte, int, error) {
	l, n, err := ConsumeVarint(b)
	if err != nil {
		return nil, 0, err
	}
	if l > uint64(len(b)-n) {
		return nil, 0, ErrTruncated
	}
	return b[n : n+int(l)], n + int(l), nil
}

// AppendFixed32 appends v in little-endian order.
func AppendFixed32(b []byte, v uint32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

// ConsumeFixed32 decodes 4 little-endian bytes from the front of b.
func ConsumeFixed32(b []byte) (uint32, int, error) {
	if len(b) < 4 {
		return 0, 0, ErrTruncated
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, 4, nil
}

// AppendFixed64 appends v in little-endian order.
func AppendFixed64(b []byte, v uint64) []byte {
	return append(b,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56))
}

// ConsumeFixed64 decodes 8 little-endian bytes from the front of b.
func ConsumeFixed64(b []byte) (uint64, int, error) {
	if len(b) < 8 {
		return 0, 0, ErrTruncated
	}
	lo := uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24
	hi := uint64(b[4]) | uint64(b[5])<<8 | uint64(b[6])<<16 | uint64(b[7])<<24
	return lo | hi<<32, 8, nil
}

// AppendBool appends v as a one-byte varint.
func AppendBool(b []byte, v bool) []byte {
	if v {
		return append(b, 1)
	}
	return append(b, 0)
}

// DecodeBool interprets a decoded varint as a boolean.
func DecodeBool(v uint64) bool { return v != 0 }

// Skip returns the length of one record payload of kind t at the front
// of b without decoding its value. Group kinds cannot be skipped.
func Skip(b []byte, t Type) (int, error) {
	switch t {
	case Varint:
		_, n, err := ConsumeVarint(b)
		return n, err
	case Fixed64:
		if len(b) < 8 {
			return 0, ErrTruncated
		}
		return 8, nil
	case Fixed32:
		if len(b) < 4 {
			return 0, ErrTruncated
		}
		return 4, nil
	case Bytes:
		_, n, err := ConsumeBytes(b)
		return n, err
	default:
		return 0, ErrInvalidType
	}
}
