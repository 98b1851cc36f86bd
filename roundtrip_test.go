package genopts

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawbytedev/genopts/wire"
)

func fullOptions() *Options {
	return &Options{
		MaxSize:   Some(int32(64)),
		MaxLength: Some(int32(-5)),
		MaxCount:  Some(int32(10)),

		IntSize: Some(IntSize16),
		Type:    Some(FieldTypePointer),

		LongNames:          Some(false),
		PackedStruct:       Some(true),
		PackedEnum:         Some(false),
		SkipMessage:        Some(true),
		NoUnions:           Some(false),
		MsgID:              Some(uint32(4001)),
		AnonymousOneof:     Some(true),
		Proto3:             Some(true),
		Proto3SingularMsgs: Some(false),
		EnumToString:       Some(true),
		FixedLength:        Some(false),
		FixedCount:         Some(true),
		SubmsgCallback:     Some(false),

		MangleNames:      Some(MangleFlatten),
		CallbackDatatype: Some("my_callback_t"),
		CallbackFunction: Some(""),
		DescriptorSize:   Some(DescriptorSize4),
		DefaultHas:       Some(true),
		Package:          Some("acme.sensors"),
		TypeOverride:     Some(TypeSint32),
		SortByTag:        Some(false),
		FallbackType:     Some(FieldType(42)), // unrecognized survives too

		Include: []string{"a.h", "b.h"},
		Exclude: []string{"legacy.h"},

		Unknown: []UnknownField{
			{Tag: 99, Wire: wire.Varint, Raw: wire.AppendVarint(nil, 12345)},
			{Tag: 500, Wire: wire.Bytes, Raw: []byte("opaque")},
			{Tag: 77, Wire: wire.Fixed32, Raw: []byte{1, 2, 3, 4}},
		},
	}
}

func TestRoundTripFull(t *testing.T) {
	m := fullOptions()
	buf, err := Encode(m)
	require.NoError(t, err)
	got, err := Decode(buf)
	require.NoError(t, err)
	require.Equal(t, m, got)
}

func TestRoundTripEmpty(t *testing.T) {
	buf, err := Encode(&Options{})
	require.NoError(t, err)
	assert.Empty(t, buf)
}

func TestPresenceIndependentOfDefault(t *testing.T) {
	// long_names defaults to true; an explicit true still encodes a
	// record and decodes as present.
	m := &Options{
		LongNames:        Some(true),
		SortByTag:        Some(true),
		CallbackDatatype: Some(DefaultCallbackDatatype),
		PackedStruct:     Some(false),
	}
	buf, err := Encode(m)
	require.NoError(t, err)
	require.NotEmpty(t, buf)

	got, err := Decode(buf)
	require.NoError(t, err)
	require.True(t, got.LongNames.IsSet())
	assert.True(t, got.LongNames.Value())
	require.True(t, got.SortByTag.IsSet())
	require.True(t, got.CallbackDatatype.IsSet())
	assert.Equal(t, DefaultCallbackDatatype, got.CallbackDatatype.Value())
	require.True(t, got.PackedStruct.IsSet())
	assert.False(t, got.PackedStruct.Value())
}

func TestEncodeAppend(t *testing.T) {
	prefix := []byte{0xde, 0xad}
	buf, err := defaultCodec.EncodeAppend(prefix, &Options{MaxSize: Some(int32(8))})
	require.NoError(t, err)
	assert.Equal(t, prefix, buf[:2])
	got, err := Decode(buf[2:])
	require.NoError(t, err)
	assert.Equal(t, int32(8), got.MaxSize.Value())
}

func TestEncodeRejectsBadUnknownKind(t *testing.T) {
	m := &Options{Unknown: []UnknownField{{Tag: 9, Wire: wire.StartGroup}}}
	_, err := Encode(m)
	require.ErrorIs(t, err, wire.ErrInvalidType)
}

func TestRoundTripQuick(t *testing.T) {
	condition := func(maxSize int32, msgid uint32, longNames bool, pkg string, include []string) bool {
		m := &Options{
			MaxSize:   Some(maxSize),
			MsgID:     Some(msgid),
			LongNames: Some(longNames),
			Package:   Some(pkg),
			Include:   include,
		}
		buf, err := Encode(m)
		require.NoError(t, err)
		got, err := Decode(buf)
		require.NoError(t, err)
		if len(include) == 0 {
			got.Include = include // nil vs empty slice
		}
		return assert.ObjectsAreEqual(m, got)
	}
	require.NoError(t, quick.Check(condition, &quick.Config{}))
}

func FuzzDecode(f *testing.F) {
	f.Add([]byte{})
	seed, _ := Encode(fullOptions())
	f.Add(seed)
	f.Add([]byte{0x08, 0x40})       // max_size = 64
	f.Add([]byte{0x22, 0x03, 'a', '.', 'h'}) // long_names as bytes: mismatch
	f.Fuzz(func(t *testing.T, data []byte) {
		o, err := Decode(data)
		if err != nil {
			return
		}
		// whatever decodes must re-encode to an equivalent value
		buf, err := Encode(o)
		require.NoError(t, err)
		again, err := Decode(buf)
		require.NoError(t, err)
		require.Equal(t, o, again)
	})
}

func BenchmarkEncode(b *testing.B) {
	m := fullOptions()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Encode(m)
	}
}

func BenchmarkDecode(b *testing.B) {
	buf, _ := Encode(fullOptions())
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = Decode(buf)
	}
}

func BenchmarkDecodeBorrowed(b *testing.B) {
	buf, _ := Encode(fullOptions())
	c := NewCodec(SafeOptions{UnsafeStrings: true})
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = c.Decode(buf)
	}
}
