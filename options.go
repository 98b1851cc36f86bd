// Package genopts implements the wire codec for the generator options
// message that a schema compiler attaches to file, message and field
// definitions. The codec decodes the message body from its tag-based
// binary form, preserves unknown fields byte-for-byte, and keeps
// presence separate from value so consumers can tell an explicit
// setting apart from a documented default.
package genopts

import (
	"strings"

	"github.com/rawbytedev/genopts/wire"
)

// Opt carries three states for a scalar field: absent, or present with
// a value. The zero value is absent so Options literals stay short.
type Opt[T any] struct {
	val T
	set bool
}

// Some returns an Opt that is explicitly present with v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{val: v, set: true}
}

// IsSet reports whether the field was explicitly set by the producer.
func (o Opt[T]) IsSet() bool { return o.set }

// Value returns the stored value. When absent it returns the zero value.
func (o Opt[T]) Value() T { return o.val }

// Get returns the stored value along with the presence flag.
func (o Opt[T]) Get() (T, bool) { return o.val, o.set }

// Or returns the stored value when present, otherwise def.
func (o Opt[T]) Or(def T) T {
	if o.set {
		return o.val
	}
	return def
}

// UnknownField is one record whose tag is not in the field table. Raw
// holds the exact payload bytes as they appeared on the wire: the
// varint bytes for a varint record, the content (without length prefix)
// for a bytes record, and 4 or 8 bytes for the fixed kinds. Entries are
// kept in encounter order and are never coalesced.
type UnknownField struct {
	Tag  uint32
	Wire wire.Type
	Raw  []byte
}

// Options is the generator options message. Scalar fields are
// independently present or absent; absent fields encode to nothing.
// Include and Exclude keep producer order. A value produced by a
// borrowing decode aliases the input buffer; use Clone to outlive it.
type Options struct {
	MaxSize   Opt[int32]
	MaxLength Opt[int32]
	MaxCount  Opt[int32]

	IntSize Opt[IntSize]
	Type    Opt[FieldType]

	LongNames          Opt[bool]
	PackedStruct       Opt[bool]
	PackedEnum         Opt[bool]
	SkipMessage        Opt[bool]
	NoUnions           Opt[bool]
	MsgID              Opt[uint32]
	AnonymousOneof     Opt[bool]
	Proto3             Opt[bool]
	Proto3SingularMsgs Opt[bool]
	EnumToString       Opt[bool]
	FixedLength        Opt[bool]
	FixedCount         Opt[bool]
	SubmsgCallback     Opt[bool]

	MangleNames      Opt[TypenameMangling]
	CallbackDatatype Opt[string]
	CallbackFunction Opt[string]
	DescriptorSize   Opt[DescriptorSize]
	DefaultHas       Opt[bool]
	Package          Opt[string]
	TypeOverride     Opt[DescriptorType]
	SortByTag        Opt[bool]
	FallbackType     Opt[FieldType]

	Include []string
	Exclude []string

	Unknown []UnknownField
}

// Clone returns an owned deep copy. Every string and unknown payload is
// copied out, so the result stays valid after the buffer a borrowing
// decode read from is released or reused.
func (o *Options) Clone() *Options {
	if o == nil {
		return nil
	}
	c := *o
	if o.CallbackDatatype.IsSet() {
		c.CallbackDatatype = Some(strings.Clone(o.CallbackDatatype.Value()))
	}
	if o.CallbackFunction.IsSet() {
		c.CallbackFunction = Some(strings.Clone(o.CallbackFunction.Value()))
	}
	if o.Package.IsSet() {
		c.Package = Some(strings.Clone(o.Package.Value()))
	}
	c.Include = cloneStrings(o.Include)
	c.Exclude = cloneStrings(o.Exclude)
	if o.Unknown != nil {
		c.Unknown = make([]UnknownField, len(o.Unknown))
		for i, u := range o.Unknown {
			c.Unknown[i] = UnknownField{
				Tag:  u.Tag,
				Wire: u.Wire,
				Raw:  append([]byte(nil), u.Raw...),
			}
		}
	}
	return &c
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	for i, v := range s {
		out[i] = strings.Clone(v)
	}
	return out
}
