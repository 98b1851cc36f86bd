package genopts

import (
	"unsafe"

	"github.com/rawbytedev/genopts/wire"
)

// Decode parses one options message body. Records are applied in wire
// order: a repeated scalar tag overwrites (last occurrence wins),
// repeated string tags append, and unrecognized tags are retained
// verbatim in o.Unknown. The only fatal conditions are structural
// (truncation, malformed varints, bad tag keys) and wire-kind
// mismatches on known fields; nothing partial is returned on error.
//
// With Opts.UnsafeStrings the result borrows from buf: strings alias
// buf via unsafe.String and unknown payloads are subslices of buf.
func (c *Codec) Decode(buf []byte) (*Options, error) {
	d := dec{b: buf, borrow: c.Opts.UnsafeStrings}
	o := &Options{}
	for len(d.b) > 0 {
		num, typ, n, err := wire.ConsumeTag(d.b)
		if err != nil {
			return nil, err
		}
		d.b = d.b[n:]
		if err := d.apply(o, num, typ); err != nil {
			return nil, err
		}
	}
	return o, nil
}

type dec struct {
	b      []byte
	borrow bool
}

func (d *dec) apply(o *Options, num uint32, typ wire.Type) error {
	switch num {
	case tagMaxSize:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.MaxSize = Some(int32(v))
	case tagMaxCount:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.MaxCount = Some(int32(v))
	case tagMaxLength:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.MaxLength = Some(int32(v))
	case tagType:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.Type = Some(FieldType(v))
	case tagIntSize:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.IntSize = Some(IntSize(v))
	case tagLongNames:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.LongNames = Some(wire.DecodeBool(v))
	case tagPackedStruct:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.PackedStruct = Some(wire.DecodeBool(v))
	case tagPackedEnum:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.PackedEnum = Some(wire.DecodeBool(v))
	case tagSkipMessage:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.SkipMessage = Some(wire.DecodeBool(v))
	case tagNoUnions:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.NoUnions = Some(wire.DecodeBool(v))
	case tagMsgID:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.MsgID = Some(uint32(v))
	case tagAnonymousOneof:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.AnonymousOneof = Some(wire.DecodeBool(v))
	case tagProto3:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.Proto3 = Some(wire.DecodeBool(v))
	case tagProto3SingularMsgs:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.Proto3SingularMsgs = Some(wire.DecodeBool(v))
	case tagEnumToString:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.EnumToString = Some(wire.DecodeBool(v))
	case tagFixedLength:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.FixedLength = Some(wire.DecodeBool(v))
	case tagFixedCount:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.FixedCount = Some(wire.DecodeBool(v))
	case tagSubmsgCallback:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.SubmsgCallback = Some(wire.DecodeBool(v))
	case tagMangleNames:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.MangleNames = Some(TypenameMangling(v))
	case tagCallbackDatatype:
		s, err := d.str(num, typ)
		if err != nil {
			return err
		}
		o.CallbackDatatype = Some(s)
	case tagCallbackFunction:
		s, err := d.str(num, typ)
		if err != nil {
			return err
		}
		o.CallbackFunction = Some(s)
	case tagDescriptorSize:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.DescriptorSize = Some(DescriptorSize(v))
	case tagDefaultHas:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.DefaultHas = Some(wire.DecodeBool(v))
	case tagPackage:
		s, err := d.str(num, typ)
		if err != nil {
			return err
		}
		o.Package = Some(s)
	case tagTypeOverride:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.TypeOverride = Some(DescriptorType(v))
	case tagSortByTag:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.SortByTag = Some(wire.DecodeBool(v))
	case tagFallbackType:
		v, err := d.varint(num, typ)
		if err != nil {
			return err
		}
		o.FallbackType = Some(FieldType(v))
	case tagInclude:
		s, err := d.str(num, typ)
		if err != nil {
			return err
		}
		o.Include = append(o.Include, s)
	case tagExclude:
		s, err := d.str(num, typ)
		if err != nil {
			return err
		}
		o.Exclude = append(o.Exclude, s)
	default:
		return d.unknown(o, num, typ)
	}
	return nil
}

// varint consumes a varint-kind record value after checking the wire
// kind against the field table.
func (d *dec) varint(num uint32, typ wire.Type) (uint64, error) {
	if typ != wire.Varint {
		return 0, &WireTypeMismatchError{Tag: num, Want: wire.Varint, Got: typ}
	}
	v, n, err := wire.ConsumeVarint(d.b)
	if err != nil {
		return 0, err
	}
	d.b = d.b[n:]
	return v, nil
}

// str consumes a length-delimited record value after checking the wire
// kind. In borrow mode the string aliases the input buffer.
func (d *dec) str(num uint32, typ wire.Type) (string, error) {
	if typ != wire.Bytes {
		return "", &WireTypeMismatchError{Tag: num, Want: wire.Bytes, Got: typ}
	}
	p, n, err := wire.ConsumeBytes(d.b)
	if err != nil {
		return "", err
	}
	d.b = d.b[n:]
	if len(p) == 0 {
		return "", nil
	}
	if d.borrow {
		return unsafe.String(&p[0], len(p)), nil
	}
	return string(p), nil
}

// unknown captures one unrecognized record, payload byte-for-byte.
func (d *dec) unknown(o *Options, num uint32, typ wire.Type) error {
	var raw []byte
	switch typ {
	case wire.Bytes:
		p, n, err := wire.ConsumeBytes(d.b)
		if err != nil {
			return err
		}
		raw = p
		d.b = d.b[n:]
	default:
		n, err := wire.Skip(d.b, typ)
		if err != nil {
			return err
		}
		raw = d.b[:n]
		d.b = d.b[n:]
	}
	if !d.borrow {
		raw = append([]byte(nil), raw...)
	}
	o.Unknown = append(o.Unknown, UnknownField{Tag: num, Wire: typ, Raw: raw})
	return nil
}
