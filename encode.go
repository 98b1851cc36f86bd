package genopts

import "github.com/rawbytedev/genopts/wire"

// Encode serializes o. Exactly one record is written per present
// scalar, one per repeated element in stored order, and one per
// unknown field reproducing its payload byte-for-byte. Absent fields
// write nothing, even when a stored value equals a documented default.
func (c *Codec) Encode(o *Options) ([]byte, error) {
	return c.EncodeAppend(nil, o)
}

// EncodeAppend appends the encoding of o to b and returns the result.
func (c *Codec) EncodeAppend(b []byte, o *Options) ([]byte, error) {
	b = appendInt32(b, tagMaxSize, o.MaxSize)
	b = appendInt32(b, tagMaxCount, o.MaxCount)
	b = appendEnum(b, tagType, o.Type)
	b = appendBool(b, tagLongNames, o.LongNames)
	b = appendBool(b, tagPackedStruct, o.PackedStruct)
	b = appendBool(b, tagSkipMessage, o.SkipMessage)
	b = appendEnum(b, tagIntSize, o.IntSize)
	b = appendBool(b, tagNoUnions, o.NoUnions)
	if v, ok := o.MsgID.Get(); ok {
		b = wire.AppendTag(b, tagMsgID, wire.Varint)
		b = wire.AppendVarint(b, uint64(v))
	}
	b = appendBool(b, tagPackedEnum, o.PackedEnum)
	b = appendBool(b, tagAnonymousOneof, o.AnonymousOneof)
	b = appendBool(b, tagProto3, o.Proto3)
	b = appendBool(b, tagEnumToString, o.EnumToString)
	b = appendInt32(b, tagMaxLength, o.MaxLength)
	b = appendBool(b, tagFixedLength, o.FixedLength)
	b = appendBool(b, tagFixedCount, o.FixedCount)
	b = appendEnum(b, tagMangleNames, o.MangleNames)
	b = appendString(b, tagCallbackDatatype, o.CallbackDatatype)
	b = appendString(b, tagCallbackFunction, o.CallbackFunction)
	b = appendEnum(b, tagDescriptorSize, o.DescriptorSize)
	b = appendBool(b, tagProto3SingularMsgs, o.Proto3SingularMsgs)
	b = appendBool(b, tagSubmsgCallback, o.SubmsgCallback)
	b = appendBool(b, tagDefaultHas, o.DefaultHas)
	for _, s := range o.Include {
		b = wire.AppendTag(b, tagInclude, wire.Bytes)
		b = wire.AppendString(b, s)
	}
	b = appendString(b, tagPackage, o.Package)
	for _, s := range o.Exclude {
		b = wire.AppendTag(b, tagExclude, wire.Bytes)
		b = wire.AppendString(b, s)
	}
	b = appendEnum(b, tagTypeOverride, o.TypeOverride)
	b = appendBool(b, tagSortByTag, o.SortByTag)
	b = appendEnum(b, tagFallbackType, o.FallbackType)

	for _, u := range o.Unknown {
		switch u.Wire {
		case wire.Bytes:
			b = wire.AppendTag(b, u.Tag, u.Wire)
			b = wire.AppendBytes(b, u.Raw)
		case wire.Varint, wire.Fixed32, wire.Fixed64:
			b = wire.AppendTag(b, u.Tag, u.Wire)
			b = append(b, u.Raw...)
		default:
			return nil, wire.ErrInvalidType
		}
	}
	return b, nil
}

func appendInt32(b []byte, tag uint32, o Opt[int32]) []byte {
	if v, ok := o.Get(); ok {
		b = wire.AppendTag(b, tag, wire.Varint)
		b = wire.AppendVarint(b, uint64(int64(v))) // sign-extended
	}
	return b
}

func appendBool(b []byte, tag uint32, o Opt[bool]) []byte {
	if v, ok := o.Get(); ok {
		b = wire.AppendTag(b, tag, wire.Varint)
		b = wire.AppendBool(b, v)
	}
	return b
}

func appendString(b []byte, tag uint32, o Opt[string]) []byte {
	if v, ok := o.Get(); ok {
		b = wire.AppendTag(b, tag, wire.Bytes)
		b = wire.AppendString(b, v)
	}
	return b
}

func appendEnum[E ~int32](b []byte, tag uint32, o Opt[E]) []byte {
	if v, ok := o.Get(); ok {
		b = wire.AppendTag(b, tag, wire.Varint)
		b = wire.AppendVarint(b, uint64(int64(v)))
	}
	return b
}
