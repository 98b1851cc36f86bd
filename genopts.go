package genopts

import (
	"fmt"

	"github.com/rawbytedev/genopts/wire"
)

// SafeOptions controls the codec's zero-copy behaviour.
type SafeOptions struct {
	// UnsafeStrings makes Decode return string fields and unknown
	// payloads that alias the input buffer instead of copying. The
	// decoded Options must not be used after the buffer is released
	// or mutated; Clone lifts that restriction.
	UnsafeStrings bool
}

// Codec decodes and encodes the options message. It holds no mutable
// state, so one Codec may be shared across goroutines.
type Codec struct {
	Opts SafeOptions
}

// NewCodec returns a codec with the given safety options.
func NewCodec(o SafeOptions) *Codec {
	return &Codec{Opts: o}
}

// WireTypeMismatchError reports a known field whose record arrived with
// an incompatible wire kind. It aborts the decode.
type WireTypeMismatchError struct {
	Tag  uint32
	Want wire.Type
	Got  wire.Type
}

func (e *WireTypeMismatchError) Error() string {
	return fmt.Sprintf("genopts: field %d: wire type %s, want %s", e.Tag, e.Got, e.Want)
}

var defaultCodec = Codec{}

// Decode parses buf with a copying codec; the result does not alias buf.
func Decode(buf []byte) (*Options, error) {
	return defaultCodec.Decode(buf)
}

// Encode serializes o with the default codec.
func Encode(o *Options) ([]byte, error) {
	return defaultCodec.Encode(o)
}
